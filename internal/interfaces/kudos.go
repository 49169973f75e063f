package kudos

import (
	"context"
	"time"

	model "github.com/glkeru/employeehub/internal/models"
)

//go:generate mockgen -destination=./../services/mock_kudos_test.go -package=kudos . KudosStorage,LedgerTx,CacheStorage,Notifier,TokenManager,DeliveryLog
//go:generate mockgen -destination=./../api/mock_kudos_test.go -package=kudos . KudosStorage,LedgerTx

// Хранилище: пользователи, лента, награды, проекты
type KudosStorage interface {
	// Выполнить fn в одной транзакции. Ошибка fn откатывает все изменения.
	WithTx(ctx context.Context, fn func(tx LedgerTx) error) error

	Feed(ctx context.Context, offset int, limit int) ([]model.KudosEntry, error)
	TopByKudosReceived(ctx context.Context, limit int) ([]model.Account, error)

	GetUser(ctx context.Context, id int64) (model.Account, error)
	GetUserByEmail(ctx context.Context, email string) (model.Account, error)
	ListUsers(ctx context.Context) ([]model.Account, error)
	CreateUser(ctx context.Context, account model.Account) (model.Account, error)
	UpdateRole(ctx context.Context, id int64, role model.Role) (model.Account, error)

	ListActiveRewards(ctx context.Context) ([]model.Reward, error)

	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id int64) (model.Project, error)
	CreateProject(ctx context.Context, project model.Project, memberIds []int64) (model.Project, error)
	UpdateProject(ctx context.Context, project model.Project, memberIds []int64) (model.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// Операции внутри транзакции перевода/списания
type LedgerTx interface {
	// Блокирует строки счетов (FOR UPDATE) в порядке возрастания id.
	// Отсутствующие id просто не попадают в результат.
	LockAccounts(ctx context.Context, ids []int64) (map[int64]model.Account, error)
	SaveAccount(ctx context.Context, account model.Account) error
	FindBySenderSince(ctx context.Context, senderId int64, since time.Time) ([]model.KudosEntry, error)
	AppendKudos(ctx context.Context, entry model.KudosEntry) (model.KudosEntry, error)
	// Списание по id заявки из очереди, ErrRedemptionNotFound если не было
	FindRedemption(ctx context.Context, redeemId string) (model.Redemption, error)
	GetReward(ctx context.Context, rewardId int64) (model.Reward, error)
	AppendRedemption(ctx context.Context, redemption model.Redemption) (model.Redemption, error)
}

type CacheStorage interface {
	GetAccount(ctx context.Context, id int64) (model.Account, error)
	SetAccount(ctx context.Context, account model.Account) error
	InvalidateAccount(ctx context.Context, id int64) error
	GetLeaderboard(ctx context.Context) ([]model.Account, error)
	SetLeaderboard(ctx context.Context, accounts []model.Account) error
	InvalidateLeaderboard(ctx context.Context) error
}

// Уведомление о переводе. Ошибка не должна влиять на сам перевод.
type Notifier interface {
	Notify(ctx context.Context, n model.KudosNotification) error
}

type TokenManager interface {
	Generate(account model.Account) (token string, expiresAt time.Time, err error)
	Parse(token string) (model.Caller, error)
}

// Журнал доставки уведомлений
type DeliveryLog interface {
	SaveDelivery(ctx context.Context, n model.KudosNotification, deliveryErr error) error
	FailedDeliveries(ctx context.Context, maxAttempts int) ([]model.KudosNotification, error)
}
