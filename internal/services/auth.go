package kudos

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/glkeru/employeehub/internal/auth"
	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"go.uber.org/zap"
)

const minPasswordLength = 6

type AuthService struct {
	logger *zap.Logger
	db     interf.KudosStorage
	tokens interf.TokenManager
}

func NewAuthService(logger *zap.Logger, db interf.KudosStorage, tokens interf.TokenManager) *AuthService {
	return &AuthService{logger, db, tokens}
}

type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatarUrl"`
}

type AuthResult struct {
	Account   model.Account
	Token     string
	ExpiresAt time.Time
}

// Регистрация: роль USER, стартовый баланс
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return AuthResult{}, model.Invalid("name is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, model.Invalid("invalid email")
	}
	if len(in.Password) < minPasswordLength {
		return AuthResult{}, model.Invalid("password must be at least %d characters", minPasswordLength)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, err
	}
	account, err := s.db.CreateUser(ctx, model.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.USER,
		AvatarURL:    strings.TrimSpace(in.AvatarURL),
		KudosBalance: model.InitialBalance,
		Enabled:      true,
	})
	if err != nil {
		return AuthResult{}, err
	}
	s.logger.Info("user registered", zap.Int64("user", account.ID))
	return s.issue(account)
}

// Вход по email и паролю
func (s *AuthService) Login(ctx context.Context, email string, password string) (AuthResult, error) {
	account, err := s.db.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return AuthResult{}, model.ErrBadCredentials
		}
		return AuthResult{}, err
	}
	if !account.Enabled || !auth.CheckPassword(account.PasswordHash, password) {
		return AuthResult{}, model.ErrBadCredentials
	}
	return s.issue(account)
}

// Текущий пользователь с новым токеном
func (s *AuthService) Me(ctx context.Context, caller model.Caller) (AuthResult, error) {
	account, err := s.db.GetUser(ctx, caller.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return s.issue(account)
}

// Проверка токена для middleware. Роль берется из базы, а не из токена:
// смена роли и блокировка действуют сразу.
func (s *AuthService) Authenticate(ctx context.Context, token string) (model.Caller, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return model.Caller{}, model.ErrUnauthorized
	}
	account, err := s.db.GetUser(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Caller{}, model.ErrUnauthorized
		}
		return model.Caller{}, err
	}
	if !account.Enabled {
		return model.Caller{}, model.ErrUnauthorized
	}
	return model.Caller{ID: account.ID, Role: account.Role}, nil
}

func (s *AuthService) issue(account model.Account) (AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(account)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Account: account, Token: token, ExpiresAt: expiresAt}, nil
}
