package kudos

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"u.id", "u.name", "u.email", "u.password", "u.role", "u.avatar_url",
	"u.kudos_balance", "u.kudos_received", "u.streak_count", "u.enabled", "u.created_at",
}

// общий интерфейс pool и tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type KudosDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewKudosDB(ctx context.Context, logger *zap.Logger, dsn string) (*KudosDB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &KudosDB{pool, logger}, nil
}

func (p *KudosDB) Close() {
	p.pool.Close()
}

// Создать таблицы, если их нет
func (p *KudosDB) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	if err != nil {
		p.logger.Error("Migration error", zap.Error(err))
		return err
	}
	return nil
}

func (p *KudosDB) WithTx(ctx context.Context, fn func(tx interf.LedgerTx) error) (err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = fn(&ledgerTx{tx: tx, logger: p.logger})
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Лента: новые записи первыми, при равном времени - больший id
func (p *KudosDB) Feed(ctx context.Context, offset int, limit int) ([]model.KudosEntry, error) {
	sql, args, err := kudosSelect().
		OrderBy("k.created_at DESC", "k.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	return queryKudos(ctx, p.pool, sql, args)
}

// Рейтинг: по убыванию полученных kudos, при равенстве - по id
func (p *KudosDB) TopByKudosReceived(ctx context.Context, limit int) ([]model.Account, error) {
	sql, args, err := psql.Select(accountColumns...).
		From("users u").
		OrderBy("u.kudos_received DESC", "u.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	return queryAccounts(ctx, p.pool, sql, args)
}

func (p *KudosDB) GetUser(ctx context.Context, id int64) (model.Account, error) {
	return p.getUser(ctx, sq.Eq{"u.id": id})
}

func (p *KudosDB) GetUserByEmail(ctx context.Context, email string) (model.Account, error) {
	return p.getUser(ctx, sq.Eq{"u.email": email})
}

func (p *KudosDB) getUser(ctx context.Context, where sq.Eq) (model.Account, error) {
	sql, args, err := psql.Select(accountColumns...).From("users u").Where(where).ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Account{}, err
	}
	account, err := scanAccount(p.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrUserNotFound
		}
		p.sqlError(err, sql, args)
		return model.Account{}, err
	}
	return account, nil
}

func (p *KudosDB) ListUsers(ctx context.Context) ([]model.Account, error) {
	sql, args, err := psql.Select(accountColumns...).From("users u").OrderBy("u.id").ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	return queryAccounts(ctx, p.pool, sql, args)
}

// Регистрация пользователя. Занятый email - ErrEmailTaken
func (p *KudosDB) CreateUser(ctx context.Context, account model.Account) (model.Account, error) {
	sql, args, err := psql.Insert("users").
		Columns("name", "email", "password", "role", "avatar_url", "kudos_balance", "kudos_received", "streak_count", "enabled").
		Values(account.Name, account.Email, account.PasswordHash, string(account.Role), nullText(account.AvatarURL),
			account.KudosBalance, account.KudosReceived, account.StreakCount, account.Enabled).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Account{}, err
	}
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return model.Account{}, model.ErrEmailTaken
		}
		p.sqlError(err, sql, args)
		return model.Account{}, err
	}
	return account, nil
}

func (p *KudosDB) UpdateRole(ctx context.Context, id int64, role model.Role) (model.Account, error) {
	sql, args, err := psql.Update("users u").
		Set("role", string(role)).
		Where(sq.Eq{"u.id": id}).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return model.Account{}, err
	}
	account, err := scanAccount(p.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrUserNotFound
		}
		p.sqlError(err, sql, args)
		return model.Account{}, err
	}
	return account, nil
}

func (p *KudosDB) ListActiveRewards(ctx context.Context) ([]model.Reward, error) {
	sql, args, err := rewardSelect().
		Where(sq.Eq{"is_active": true}).
		OrderBy("kudos_cost", "id").
		ToSql()
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.sqlError(err, sql, args)
		return nil, err
	}
	defer rows.Close()

	var rewards []model.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, rows.Err()
}

func (p *KudosDB) sqlError(err error, sql string, args []any) {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}

// Операции внутри транзакции
type ledgerTx struct {
	tx     pgx.Tx
	logger *zap.Logger
}

func (t *ledgerTx) LockAccounts(ctx context.Context, ids []int64) (map[int64]model.Account, error) {
	// единый порядок блокировок исключает взаимную блокировку встречных переводов
	sql, args, err := psql.Select(accountColumns...).
		From("users u").
		Where(sq.Eq{"u.id": ids}).
		OrderBy("u.id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}
	accounts, err := queryAccounts(ctx, t.tx, sql, args)
	if err != nil {
		t.logger.Error("Lock accounts error", zap.Error(err), zap.Int64s("accounts", ids))
		return nil, err
	}
	locked := make(map[int64]model.Account, len(accounts))
	for _, a := range accounts {
		locked[a.ID] = a
	}
	return locked, nil
}

func (t *ledgerTx) SaveAccount(ctx context.Context, account model.Account) error {
	sql, args, err := psql.Update("users").
		Set("kudos_balance", account.KudosBalance).
		Set("kudos_received", account.KudosReceived).
		Set("streak_count", account.StreakCount).
		Where(sq.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		t.logger.Error("Update balance error", zap.Error(err), zap.Int64("account", account.ID))
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (t *ledgerTx) FindBySenderSince(ctx context.Context, senderId int64, since time.Time) ([]model.KudosEntry, error) {
	sql, args, err := kudosSelect().
		Where(sq.Eq{"k.sender_id": senderId}).
		Where(sq.GtOrEq{"k.created_at": since}).
		OrderBy("k.created_at", "k.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return queryKudos(ctx, t.tx, sql, args)
}

func (t *ledgerTx) AppendKudos(ctx context.Context, entry model.KudosEntry) (model.KudosEntry, error) {
	sql, args, err := psql.Insert("kudos").
		Columns("ref", "sender_id", "receiver_id", "amount", "requested", "message", "created_at", "is_streak_bonus").
		Values(entry.Ref, entry.SenderID, entry.ReceiverID, entry.Amount, entry.Requested,
			nullText(entry.Message), entry.CreatedAt, entry.IsStreakBonus).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return model.KudosEntry{}, err
	}
	err = t.tx.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		t.logger.Error("Append kudos error", zap.Error(err), zap.String("ref", entry.Ref.String()))
		return model.KudosEntry{}, err
	}
	return entry, nil
}

func (t *ledgerTx) GetReward(ctx context.Context, rewardId int64) (model.Reward, error) {
	sql, args, err := rewardSelect().Where(sq.Eq{"id": rewardId}).ToSql()
	if err != nil {
		return model.Reward{}, err
	}
	reward, err := scanReward(t.tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reward{}, model.ErrRewardNotFound
		}
		return model.Reward{}, err
	}
	return reward, nil
}

func (t *ledgerTx) AppendRedemption(ctx context.Context, r model.Redemption) (model.Redemption, error) {
	if r.Ref == uuid.Nil {
		r.Ref = uuid.New()
	}
	sql, args, err := psql.Insert("reward_redemptions").
		Columns("ref", "redeem_id", "user_id", "reward_id", "kudos_cost", "redeemed_at", "status").
		Values(r.Ref, nullText(r.RedeemID), r.UserID, r.RewardID, r.KudosCost, r.RedeemedAt, r.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Redemption{}, err
	}
	err = t.tx.QueryRow(ctx, sql, args...).Scan(&r.ID)
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return model.Redemption{}, fmt.Errorf("redeem %s: %w", r.RedeemID, model.ErrConflict)
		}
		t.logger.Error("Append redemption error", zap.Error(err), zap.Int64("user", r.UserID))
		return model.Redemption{}, err
	}
	return r, nil
}

func (t *ledgerTx) FindRedemption(ctx context.Context, redeemId string) (model.Redemption, error) {
	sql, args, err := psql.Select("id", "ref", "redeem_id", "user_id", "reward_id", "kudos_cost", "redeemed_at", "status").
		From("reward_redemptions").
		Where(sq.Eq{"redeem_id": redeemId}).
		ToSql()
	if err != nil {
		return model.Redemption{}, err
	}
	var r model.Redemption
	var redeemID pgtype.Text
	err = t.tx.QueryRow(ctx, sql, args...).
		Scan(&r.ID, &r.Ref, &redeemID, &r.UserID, &r.RewardID, &r.KudosCost, &r.RedeemedAt, &r.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Redemption{}, model.ErrRedemptionNotFound
		}
		return model.Redemption{}, err
	}
	r.RedeemID = redeemID.String
	return r, nil
}

func kudosSelect() sq.SelectBuilder {
	return psql.Select(
		"k.id", "k.ref", "k.sender_id", "s.name", "k.receiver_id", "r.name",
		"k.amount", "k.requested", "k.message", "k.created_at", "k.is_streak_bonus",
	).
		From("kudos k").
		Join("users s ON s.id = k.sender_id").
		Join("users r ON r.id = k.receiver_id")
}

func rewardSelect() sq.SelectBuilder {
	return psql.Select("id", "name", "description", "kudos_cost", "image_url", "is_active").From("rewards")
}

func queryKudos(ctx context.Context, q querier, sql string, args []any) ([]model.KudosEntry, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.KudosEntry
	for rows.Next() {
		var e model.KudosEntry
		var message pgtype.Text
		err := rows.Scan(&e.ID, &e.Ref, &e.SenderID, &e.SenderName, &e.ReceiverID, &e.ReceiverName,
			&e.Amount, &e.Requested, &message, &e.CreatedAt, &e.IsStreakBonus)
		if err != nil {
			return nil, err
		}
		e.Message = message.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func queryAccounts(ctx context.Context, q querier, sql string, args []any) ([]model.Account, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (model.Account, error) {
	var a model.Account
	var role string
	var avatar pgtype.Text
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &avatar,
		&a.KudosBalance, &a.KudosReceived, &a.StreakCount, &a.Enabled, &a.CreatedAt)
	if err != nil {
		return model.Account{}, err
	}
	a.Role = model.Role(role)
	a.AvatarURL = avatar.String
	return a, nil
}

func scanReward(row pgx.Row) (model.Reward, error) {
	var r model.Reward
	var description, image pgtype.Text
	err := row.Scan(&r.ID, &r.Name, &description, &r.KudosCost, &image, &r.IsActive)
	if err != nil {
		return model.Reward{}, err
	}
	r.Description = description.String
	r.ImageURL = image.String
	return r, nil
}

func nullText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: s, Status: pgtype.Present}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

var _ interf.KudosStorage = (*KudosDB)(nil)
