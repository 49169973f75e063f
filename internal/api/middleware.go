package kudos

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	model "github.com/glkeru/employeehub/internal/models"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kudos",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP запросы по маршрутам",
	}, []string{"method", "path", "code"})

	httpErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kudos",
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "HTTP ответы с кодом 4xx и 5xx",
	}, []string{"method", "path", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kudos",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Время обработки HTTP запроса",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Метрики и debug-лог каждого запроса
func (h *KudosHandler) MiddlewareMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(started)

		path := routePath(r)
		code := strconv.Itoa(rec.status)
		httpRequests.WithLabelValues(r.Method, path, code).Inc()
		httpDuration.WithLabelValues(r.Method, path).Observe(elapsed.Seconds())
		if rec.status >= http.StatusBadRequest {
			httpErrors.WithLabelValues(r.Method, path, code).Inc()
		}
		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed),
		)
	})
}

// шаблон маршрута, чтобы id не раздували метки
func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type callerKey struct{}

func WithCaller(ctx context.Context, caller model.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFrom(ctx context.Context) (model.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(model.Caller)
	return caller, ok
}

// Проверка Bearer токена
func (h *KudosHandler) MiddlewareAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			h.writeError(w, r, model.ErrUnauthorized)
			return
		}
		caller, err := h.srv.Auth.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}
