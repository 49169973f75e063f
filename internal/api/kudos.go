package kudos

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	model "github.com/glkeru/employeehub/internal/models"
	services "github.com/glkeru/employeehub/internal/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

type Services struct {
	Auth     *services.AuthService
	Kudos    *services.KudosService
	Rewards  *services.RewardService
	Users    *services.UserService
	Projects *services.ProjectService
}

type KudosHandler struct {
	router *mux.Router
	srv    Services
	logger *zap.Logger
}

type SendRequest struct {
	ReceiverID int64  `json:"receiverId"`
	Amount     int64  `json:"amount"`
	Message    string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RoleRequest struct {
	Role model.Role `json:"role"`
}

type AuthResponse struct {
	Token     string        `json:"token"`
	Type      string        `json:"type"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      model.Account `json:"user"`
}

type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

func NewHandler(srv Services, logger *zap.Logger) *KudosHandler {
	router := mux.NewRouter()
	handler := &KudosHandler{router, srv, logger}
	router.Use(handler.MiddlewareMetrics)
	router.NotFoundHandler = http.HandlerFunc(handler.NotFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowedHandler)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/auth/register", handler.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.LoginHandler).Methods(http.MethodPost)

	api := router.NewRoute().Subrouter()
	api.Use(handler.MiddlewareAuth)
	api.HandleFunc("/auth/me", handler.MeHandler).Methods(http.MethodGet)

	api.HandleFunc("/kudos/send", handler.SendHandler).Methods(http.MethodPost)
	api.HandleFunc("/kudos/feed", handler.FeedHandler).Methods(http.MethodGet)
	api.HandleFunc("/kudos/leaderboard", handler.LeaderboardHandler).Methods(http.MethodGet)

	api.HandleFunc("/rewards", handler.RewardsHandler).Methods(http.MethodGet)
	api.HandleFunc("/rewards/{id:[0-9]+}/redeem", handler.RedeemHandler).Methods(http.MethodPost)

	api.HandleFunc("/users", handler.UsersHandler).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", handler.UserHandler).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/role", handler.UpdateRoleHandler).Methods(http.MethodPatch)

	api.HandleFunc("/roles", handler.RolesHandler).Methods(http.MethodGet)
	api.HandleFunc("/roles", handler.CreateRoleHandler).Methods(http.MethodPost)
	api.HandleFunc("/roles", handler.DeleteRoleHandler).Methods(http.MethodDelete)

	api.HandleFunc("/projects", handler.ProjectsHandler).Methods(http.MethodGet)
	api.HandleFunc("/projects", handler.CreateProjectHandler).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id:[0-9]+}", handler.UpdateProjectHandler).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id:[0-9]+}", handler.DeleteProjectHandler).Methods(http.MethodDelete)

	return handler
}

func (h *KudosHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *KudosHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// auth

func (h *KudosHandler) RegisterHandler(w http.ResponseWriter, req *http.Request) {
	in := services.RegisterInput{}
	if !h.readJSON(w, req, &in) {
		return
	}
	res, err := h.srv.Auth.Register(req.Context(), in)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, authResponse(res))
}

func (h *KudosHandler) LoginHandler(w http.ResponseWriter, req *http.Request) {
	in := LoginRequest{}
	if !h.readJSON(w, req, &in) {
		return
	}
	res, err := h.srv.Auth.Login(req.Context(), in.Email, in.Password)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, authResponse(res))
}

func (h *KudosHandler) MeHandler(w http.ResponseWriter, req *http.Request) {
	caller, _ := CallerFrom(req.Context())
	res, err := h.srv.Auth.Me(req.Context(), caller)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, authResponse(res))
}

// kudos

// Отправка kudos
func (h *KudosHandler) SendHandler(w http.ResponseWriter, req *http.Request) {
	in := SendRequest{}
	if !h.readJSON(w, req, &in) {
		return
	}
	caller, _ := CallerFrom(req.Context())
	entry, err := h.srv.Kudos.Transfer(req.Context(), caller, in.ReceiverID, in.Amount, in.Message)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entry)
}

func (h *KudosHandler) FeedHandler(w http.ResponseWriter, req *http.Request) {
	page, err := queryInt(req, "page", 0)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	size, err := queryInt(req, "size", services.DefaultPageSize)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	entries, err := h.srv.Kudos.Feed(req.Context(), page, size)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

func (h *KudosHandler) LeaderboardHandler(w http.ResponseWriter, req *http.Request) {
	accounts, err := h.srv.Kudos.Leaderboard(req.Context())
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, accounts)
}

// rewards

func (h *KudosHandler) RewardsHandler(w http.ResponseWriter, req *http.Request) {
	rewards, err := h.srv.Rewards.ListRewards(req.Context())
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rewards)
}

func (h *KudosHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	caller, _ := CallerFrom(req.Context())
	redemption, err := h.srv.Rewards.Redeem(req.Context(), caller, id)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, redemption)
}

// users

func (h *KudosHandler) UsersHandler(w http.ResponseWriter, req *http.Request) {
	users, err := h.srv.Users.ListUsers(req.Context())
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *KudosHandler) UserHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	user, err := h.srv.Users.GetUser(req.Context(), id)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// Смена роли (ADMIN)
func (h *KudosHandler) UpdateRoleHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	in := RoleRequest{}
	if !h.readJSON(w, req, &in) {
		return
	}
	caller, _ := CallerFrom(req.Context())
	user, err := h.srv.Users.UpdateRole(req.Context(), caller, id, model.Role(strings.ToUpper(string(in.Role))))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *KudosHandler) RolesHandler(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, http.StatusOK, h.srv.Users.Roles())
}

func (h *KudosHandler) CreateRoleHandler(w http.ResponseWriter, req *http.Request) {
	caller, _ := CallerFrom(req.Context())
	role, err := h.srv.Users.CreateRole(caller, model.Role(req.URL.Query().Get("role")))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, role)
}

func (h *KudosHandler) DeleteRoleHandler(w http.ResponseWriter, req *http.Request) {
	caller, _ := CallerFrom(req.Context())
	err := h.srv.Users.DeleteRole(caller, model.Role(req.URL.Query().Get("role")))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// projects

func (h *KudosHandler) ProjectsHandler(w http.ResponseWriter, req *http.Request) {
	projects, err := h.srv.Projects.ListProjects(req.Context())
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, projects)
}

func (h *KudosHandler) CreateProjectHandler(w http.ResponseWriter, req *http.Request) {
	in := services.ProjectInput{}
	if !h.readJSON(w, req, &in) {
		return
	}
	caller, _ := CallerFrom(req.Context())
	project, err := h.srv.Projects.CreateProject(req.Context(), caller, in)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, project)
}

func (h *KudosHandler) UpdateProjectHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	in := services.ProjectInput{}
	if !h.readJSON(w, req, &in) {
		return
	}
	caller, _ := CallerFrom(req.Context())
	project, err := h.srv.Projects.UpdateProject(req.Context(), caller, id, in)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, project)
}

func (h *KudosHandler) DeleteProjectHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	caller, _ := CallerFrom(req.Context())
	if err := h.srv.Projects.DeleteProject(req.Context(), caller, id); err != nil {
		h.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *KudosHandler) NotFoundHandler(w http.ResponseWriter, req *http.Request) {
	h.writeStatus(w, req, http.StatusNotFound, "no route for "+req.Method+" "+req.URL.Path)
}

func (h *KudosHandler) MethodNotAllowedHandler(w http.ResponseWriter, req *http.Request) {
	h.writeStatus(w, req, http.StatusMethodNotAllowed, req.Method+" is not allowed for "+req.URL.Path)
}

// helpers

func (h *KudosHandler) readJSON(w http.ResponseWriter, req *http.Request, v any) bool {
	defer req.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodySize))
	if err != nil {
		h.writeError(w, req, model.Invalid("read body: %v", err))
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		h.writeError(w, req, model.Invalid("body is not correct"))
		return false
	}
	return true
}

func (h *KudosHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", "writeJSON", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

// ошибка сервиса -> HTTP статус по классу ошибки
func (h *KudosHandler) writeError(w http.ResponseWriter, req *http.Request, err error) {
	status, kind := statusOf(err)
	message := "internal server error"
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("service", req.URL.Path),
			zap.String("method", req.Method),
			zap.Error(err),
		)
	} else {
		message = strings.TrimSuffix(err.Error(), ": "+kind.Error())
	}
	h.writeStatus(w, req, status, message)
}

func (h *KudosHandler) writeStatus(w http.ResponseWriter, req *http.Request, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      req.URL.Path,
		Timestamp: time.Now().UTC(),
	})
}

func statusOf(err error) (int, error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, model.ErrValidation
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, model.ErrUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, model.ErrForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, model.ErrNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, model.ErrConflict
	}
	return http.StatusInternalServerError, err
}

func authResponse(res services.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     res.Token,
		Type:      "Bearer",
		ExpiresAt: res.ExpiresAt,
		User:      res.Account,
	}
}

func pathID(req *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
	if err != nil {
		return 0, model.Invalid("invalid id")
	}
	return id, nil
}

func queryInt(req *http.Request, name string, def int) (int, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.Invalid("invalid %s", name)
	}
	return v, nil
}
