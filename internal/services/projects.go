package kudos

import (
	"context"
	"errors"
	"sort"
	"strings"

	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"go.uber.org/zap"
)

type ProjectService struct {
	logger *zap.Logger
	db     interf.KudosStorage
}

func NewProjectService(logger *zap.Logger, db interf.KudosStorage) *ProjectService {
	return &ProjectService{logger, db}
}

type ProjectInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MemberIds   []int64 `json:"memberIds"`
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.db.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

// Создание проекта, владелец - caller
func (s *ProjectService) CreateProject(ctx context.Context, caller model.Caller, in ProjectInput) (model.Project, error) {
	if !caller.Role.Valid() {
		return model.Project{}, model.ErrRoleNotAllowed
	}
	name, members, err := s.prepare(ctx, in)
	if err != nil {
		return model.Project{}, err
	}
	project := model.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Owner:       model.Account{ID: caller.ID},
	}
	return s.db.CreateProject(ctx, project, members)
}

// Обновление: поля и участники заменяются целиком
func (s *ProjectService) UpdateProject(ctx context.Context, caller model.Caller, id int64, in ProjectInput) (model.Project, error) {
	if !caller.Role.Valid() {
		return model.Project{}, model.ErrRoleNotAllowed
	}
	project, err := s.db.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	name, members, err := s.prepare(ctx, in)
	if err != nil {
		return model.Project{}, err
	}
	project.Name = name
	project.Description = strings.TrimSpace(in.Description)
	return s.db.UpdateProject(ctx, project, members)
}

// Удаление - только ADMIN
func (s *ProjectService) DeleteProject(ctx context.Context, caller model.Caller, id int64) error {
	if !caller.IsAdmin() {
		return model.ErrAdminOnly
	}
	err := s.db.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.Int64("project", id), zap.Int64("admin", caller.ID))
	return nil
}

// проверка имени и участников
func (s *ProjectService) prepare(ctx context.Context, in ProjectInput) (string, []int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", nil, model.Invalid("project name is required")
	}

	seen := make(map[int64]struct{}, len(in.MemberIds))
	members := make([]int64, 0, len(in.MemberIds))
	for _, id := range in.MemberIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		_, err := s.db.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return "", nil, model.ErrUserNotFound
			}
			return "", nil, err
		}
		members = append(members, id)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return name, members, nil
}
