package kudos

import (
	"errors"
	"fmt"
)

// Классы ошибок - по ним API выбирает HTTP статус
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrSelfTransfer        = fmt.Errorf("self-transfer not allowed: %w", ErrConflict)
	ErrInvalidAmount       = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrReceiverNotFound    = fmt.Errorf("receiver %w", ErrNotFound)
	ErrInsufficientBalance = fmt.Errorf("insufficient balance: %w", ErrConflict)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrRewardNotFound      = fmt.Errorf("reward %w", ErrNotFound)
	ErrProjectNotFound     = fmt.Errorf("project %w", ErrNotFound)
	ErrRedemptionNotFound  = fmt.Errorf("redemption %w", ErrNotFound)
	ErrRedeemMismatch      = fmt.Errorf("redeem id already used for another user or reward: %w", ErrConflict)
	ErrEmailTaken          = fmt.Errorf("email is already taken: %w", ErrConflict)
	ErrInvalidRole         = fmt.Errorf("invalid role: %w", ErrValidation)
	ErrInvalidPage         = fmt.Errorf("invalid page: %w", ErrValidation)
	ErrBadCredentials      = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	ErrAdminOnly           = fmt.Errorf("only ADMIN users can do this: %w", ErrForbidden)
	ErrRoleNotAllowed      = fmt.Errorf("role is not allowed: %w", ErrForbidden)
)

// ошибка валидации входных данных с текстом
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}
