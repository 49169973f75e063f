package kudos

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей
type Role string

const (
	ADMIN Role = "ADMIN"
	USER  Role = "USER"
)

func Roles() []Role {
	return []Role{ADMIN, USER}
}

func (r Role) Valid() bool {
	return r == ADMIN || r == USER
}

// стартовый баланс нового пользователя
const InitialBalance = 100

// Счет пользователя
type Account struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	KudosBalance  int64     `json:"kudosBalance"`  // баланс для отправки
	KudosReceived int64     `json:"kudosReceived"` // получено всего
	StreakCount   int64     `json:"streakCount"`   // серия дней
	Enabled       bool      `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Текущий пользователь запроса
type Caller struct {
	ID   int64
	Role Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == ADMIN
}

// Запись ленты kudos - не изменяется после создания
type KudosEntry struct {
	ID            int64     `json:"id"`
	Ref           uuid.UUID `json:"ref"`
	SenderID      int64     `json:"senderId"`
	SenderName    string    `json:"senderName"`
	ReceiverID    int64     `json:"receiverId"`
	ReceiverName  string    `json:"receiverName"`
	Amount        int64     `json:"amount"`    // начислено получателю (с бонусом)
	Requested     int64     `json:"requested"` // списано у отправителя
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	IsStreakBonus bool      `json:"isStreakBonus"`
}

// Награда из каталога
type Reward struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	KudosCost   int64  `json:"kudosCost"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
}

const RedemptionCompleted = "COMPLETED"

// Списание баллов на награду
type Redemption struct {
	ID         int64     `json:"id"`
	Ref        uuid.UUID `json:"ref"`
	RedeemID   string    `json:"redeemId,omitempty"` // id заявки из очереди
	UserID     int64     `json:"userId"`
	RewardID   int64     `json:"rewardId"`
	KudosCost  int64     `json:"kudosCost"`
	RedeemedAt time.Time `json:"redeemedAt"`
	Status     string    `json:"status"`
}

// Проект
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Owner       Account   `json:"owner"`
	Members     []Account `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Данные для уведомления о переводе
type KudosNotification struct {
	EventID      uuid.UUID `json:"eventId"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	Amount       int64     `json:"amount"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NotificationFromEntry(entry KudosEntry) KudosNotification {
	return KudosNotification{
		EventID:      entry.Ref,
		SenderName:   entry.SenderName,
		ReceiverName: entry.ReceiverName,
		Amount:       entry.Amount,
		Message:      entry.Message,
		CreatedAt:    entry.CreatedAt,
	}
}
