package kudos

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	model "github.com/glkeru/employeehub/internal/models"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func projectSelect() sq.SelectBuilder {
	columns := append([]string{"p.id", "p.name", "p.description", "p.created_at", "p.updated_at"}, accountColumns...)
	return psql.Select(columns...).
		From("projects p").
		Join("users u ON u.id = p.owner_id")
}

func (p *KudosDB) ListProjects(ctx context.Context) ([]model.Project, error) {
	sql, args, err := projectSelect().OrderBy("p.id").ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	projects, err := p.queryProjects(ctx, p.pool, sql, args)
	if err != nil {
		return nil, err
	}
	if err := p.loadMembers(ctx, p.pool, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (p *KudosDB) GetProject(ctx context.Context, id int64) (model.Project, error) {
	return p.getProject(ctx, p.pool, id)
}

func (p *KudosDB) getProject(ctx context.Context, q querier, id int64) (model.Project, error) {
	sql, args, err := projectSelect().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Project{}, err
	}
	projects, err := p.queryProjects(ctx, q, sql, args)
	if err != nil {
		return model.Project{}, err
	}
	if len(projects) == 0 {
		return model.Project{}, model.ErrProjectNotFound
	}
	if err := p.loadMembers(ctx, q, projects); err != nil {
		return model.Project{}, err
	}
	return projects[0], nil
}

// Создание проекта вместе с участниками
func (p *KudosDB) CreateProject(ctx context.Context, project model.Project, memberIds []int64) (created model.Project, err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Project{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	sql, args, err := psql.Insert("projects").
		Columns("name", "description", "owner_id").
		Values(project.Name, nullText(project.Description), project.Owner.ID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Project{}, err
	}
	err = tx.QueryRow(ctx, sql, args...).Scan(&project.ID)
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return model.Project{}, model.ErrUserNotFound
		}
		p.sqlError(err, sql, args)
		return model.Project{}, err
	}

	if err = p.insertMembers(ctx, tx, project.ID, memberIds); err != nil {
		return model.Project{}, err
	}
	created, err = p.getProject(ctx, tx, project.ID)
	if err != nil {
		return model.Project{}, err
	}
	return commitProject(ctx, tx, created)
}

// Обновление проекта, участники заменяются целиком
func (p *KudosDB) UpdateProject(ctx context.Context, project model.Project, memberIds []int64) (updated model.Project, err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Project{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	sql, args, err := psql.Update("projects").
		Set("name", project.Name).
		Set("description", nullText(project.Description)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Project{}, err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Project{}, err
	}
	if tag.RowsAffected() == 0 {
		err = model.ErrProjectNotFound
		return model.Project{}, err
	}

	sql, args, err = psql.Delete("project_members").Where(sq.Eq{"project_id": project.ID}).ToSql()
	if err != nil {
		return model.Project{}, err
	}
	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		p.sqlError(err, sql, args)
		return model.Project{}, err
	}
	if err = p.insertMembers(ctx, tx, project.ID, memberIds); err != nil {
		return model.Project{}, err
	}
	updated, err = p.getProject(ctx, tx, project.ID)
	if err != nil {
		return model.Project{}, err
	}
	return commitProject(ctx, tx, updated)
}

// проект возвращается только после успешного commit
func commitProject(ctx context.Context, tx pgx.Tx, project model.Project) (model.Project, error) {
	if err := tx.Commit(ctx); err != nil {
		return model.Project{}, err
	}
	return project, nil
}

func (p *KudosDB) DeleteProject(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("projects").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return err
	}
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		p.sqlError(err, sql, args)
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func (p *KudosDB) insertMembers(ctx context.Context, tx pgx.Tx, projectId int64, memberIds []int64) error {
	if len(memberIds) == 0 {
		return nil
	}
	insert := psql.Insert("project_members").Columns("project_id", "user_id")
	for _, id := range memberIds {
		insert = insert.Values(projectId, id)
	}
	sql, args, err := insert.ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		if pgCode(err) == foreignKeyViolation {
			return model.ErrUserNotFound
		}
		p.sqlError(err, sql, args)
		return err
	}
	return nil
}

func (p *KudosDB) queryProjects(ctx context.Context, q querier, sql string, args []any) ([]model.Project, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var pr model.Project
		var description, avatar pgtype.Text
		var role string
		o := &pr.Owner
		err := rows.Scan(&pr.ID, &pr.Name, &description, &pr.CreatedAt, &pr.UpdatedAt,
			&o.ID, &o.Name, &o.Email, &o.PasswordHash, &role, &avatar,
			&o.KudosBalance, &o.KudosReceived, &o.StreakCount, &o.Enabled, &o.CreatedAt)
		if err != nil {
			return nil, err
		}
		pr.Description = description.String
		o.Role = model.Role(role)
		o.AvatarURL = avatar.String
		pr.Members = []model.Account{}
		projects = append(projects, pr)
	}
	return projects, rows.Err()
}

// участники для набора проектов одним запросом
func (p *KudosDB) loadMembers(ctx context.Context, q querier, projects []model.Project) error {
	if len(projects) == 0 {
		return nil
	}
	index := make(map[int64]int, len(projects))
	ids := make([]int64, 0, len(projects))
	for i, pr := range projects {
		index[pr.ID] = i
		ids = append(ids, pr.ID)
	}

	sql, args, err := psql.Select("pm.project_id, " + strings.Join(accountColumns, ", ")).
		From("project_members pm").
		Join("users u ON u.id = pm.user_id").
		Where(sq.Eq{"pm.project_id": ids}).
		OrderBy("pm.project_id", "u.id").
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		p.sqlError(err, sql, args)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var projectId int64
		var a model.Account
		var role string
		var avatar pgtype.Text
		err := rows.Scan(&projectId, &a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &avatar,
			&a.KudosBalance, &a.KudosReceived, &a.StreakCount, &a.Enabled, &a.CreatedAt)
		if err != nil {
			return err
		}
		a.Role = model.Role(role)
		a.AvatarURL = avatar.String
		i := index[projectId]
		projects[i].Members = append(projects[i].Members, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("Load members error", zap.Error(err))
		return err
	}
	return nil
}
