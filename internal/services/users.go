package kudos

import (
	"context"

	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"go.uber.org/zap"
)

type UserService struct {
	logger *zap.Logger
	db     interf.KudosStorage
	cache  interf.CacheStorage
}

func NewUserService(logger *zap.Logger, db interf.KudosStorage, cache interf.CacheStorage) *UserService {
	return &UserService{logger, db, cache}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.Account, error) {
	users, err := s.db.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.Account{}
	}
	return users, nil
}

// Пользователь: сначала кэш, потом база
func (s *UserService) GetUser(ctx context.Context, id int64) (model.Account, error) {
	if s.cache != nil {
		account, err := s.cache.GetAccount(ctx, id)
		if err == nil {
			return account, nil
		}
	}
	account, err := s.db.GetUser(ctx, id)
	if err != nil {
		return model.Account{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetAccount(ctx, account)
	}
	return account, nil
}

// Смена роли - только ADMIN
func (s *UserService) UpdateRole(ctx context.Context, caller model.Caller, userId int64, role model.Role) (model.Account, error) {
	if !caller.IsAdmin() {
		return model.Account{}, model.ErrAdminOnly
	}
	if !role.Valid() {
		return model.Account{}, model.ErrInvalidRole
	}
	account, err := s.db.UpdateRole(ctx, userId, role)
	if err != nil {
		return model.Account{}, err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateAccount(ctx, userId); err != nil {
			s.logger.Error("User service", zap.String("service", "UpdateRole"), zap.Error(err))
		}
	}
	s.logger.Info("role updated",
		zap.Int64("admin", caller.ID),
		zap.Int64("user", userId),
		zap.String("role", string(role)),
	)
	return account, nil
}

func (s *UserService) Roles() []model.Role {
	return model.Roles()
}

// Роли фиксированы, создание и удаление только проверяют права и имя роли
func (s *UserService) CreateRole(caller model.Caller, role model.Role) (model.Role, error) {
	if !caller.IsAdmin() {
		return "", model.ErrAdminOnly
	}
	if !role.Valid() {
		return "", model.ErrInvalidRole
	}
	return role, nil
}

func (s *UserService) DeleteRole(caller model.Caller, role model.Role) error {
	if !caller.IsAdmin() {
		return model.ErrAdminOnly
	}
	if !role.Valid() {
		return model.ErrInvalidRole
	}
	return nil
}
