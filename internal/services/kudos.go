package kudos

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultPageSize        = 20
	MaxPageSize            = 100
	DefaultLeaderboardSize = 10
	DefaultNotifyTimeout   = 5 * time.Second
)

var tracer = otel.Tracer("github.com/glkeru/employeehub/internal/services")

type Options struct {
	LeaderboardSize int
	NotifyTimeout   time.Duration
}

type KudosService struct {
	logger   *zap.Logger
	db       interf.KudosStorage
	cache    interf.CacheStorage
	notifier interf.Notifier
	opts     Options
	now      func() time.Time
	wg       sync.WaitGroup
}

// cache и notifier могут быть nil
func NewKudosService(logger *zap.Logger, db interf.KudosStorage, cache interf.CacheStorage, notifier interf.Notifier, opts Options) *KudosService {
	if opts.LeaderboardSize <= 0 {
		opts.LeaderboardSize = DefaultLeaderboardSize
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = DefaultNotifyTimeout
	}
	return &KudosService{
		logger:   logger,
		db:       db,
		cache:    cache,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
	}
}

// Перевод kudos от caller к получателю
func (s *KudosService) Transfer(ctx context.Context, caller model.Caller, receiverId int64, amount int64, message string) (entry model.KudosEntry, err error) {
	ctx, span := tracer.Start(ctx, "KudosService.Transfer", trace.WithAttributes(
		attribute.Int64("kudos.sender", caller.ID),
		attribute.Int64("kudos.receiver", receiverId),
		attribute.Int64("kudos.amount", amount),
	))
	defer func() {
		transfersTotal.WithLabelValues(resultLabel(err)).Inc()
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if !caller.Role.Valid() {
		return model.KudosEntry{}, model.ErrRoleNotAllowed
	}
	if caller.ID == receiverId {
		return model.KudosEntry{}, model.ErrSelfTransfer
	}
	if amount < 1 {
		return model.KudosEntry{}, model.ErrInvalidAmount
	}
	message = strings.TrimSpace(message)

	err = s.db.WithTx(ctx, func(tx interf.LedgerTx) error {
		// блокируем оба счета, проверка баланса только после блокировки
		accounts, err := tx.LockAccounts(ctx, []int64{caller.ID, receiverId})
		if err != nil {
			return err
		}
		receiver, ok := accounts[receiverId]
		if !ok {
			return model.ErrReceiverNotFound
		}
		sender, ok := accounts[caller.ID]
		if !ok {
			return model.ErrUserNotFound
		}
		if sender.KudosBalance < amount {
			return model.ErrInsufficientBalance
		}

		// серия: отправитель уже отправлял сегодня
		now := s.now()
		sent, err := tx.FindBySenderSince(ctx, sender.ID, model.StartOfDay(now))
		if err != nil {
			return err
		}
		streak := len(sent) > 0
		credited, streakCount := model.CreditedAmount(amount, streak, sender.StreakCount)

		sender.KudosBalance -= amount
		sender.StreakCount = streakCount
		receiver.KudosReceived += credited

		if err := tx.SaveAccount(ctx, sender); err != nil {
			return err
		}
		if err := tx.SaveAccount(ctx, receiver); err != nil {
			return err
		}

		entry, err = tx.AppendKudos(ctx, model.KudosEntry{
			Ref:           uuid.New(),
			SenderID:      sender.ID,
			SenderName:    sender.Name,
			ReceiverID:    receiver.ID,
			ReceiverName:  receiver.Name,
			Amount:        credited,
			Requested:     amount,
			Message:       message,
			CreatedAt:     now,
			IsStreakBonus: streak,
		})
		return err
	})
	if err != nil {
		return model.KudosEntry{}, err
	}

	pointsSent.Add(float64(entry.Requested))
	pointsCredited.Add(float64(entry.Amount))
	span.SetAttributes(attribute.Bool("kudos.streak_bonus", entry.IsStreakBonus))

	s.invalidateAfterTransfer(ctx, entry)
	s.dispatch(entry)
	return entry, nil
}

// Лента: новые записи первыми, page с нуля
func (s *KudosService) Feed(ctx context.Context, page int, size int) ([]model.KudosEntry, error) {
	if page < 0 {
		return nil, model.ErrInvalidPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// page*size не должен переполниться, такой страницы заведомо нет
	if page > math.MaxInt/size {
		return []model.KudosEntry{}, nil
	}
	entries, err := s.db.Feed(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.KudosEntry{}
	}
	return entries, nil
}

// Рейтинг по полученным kudos
func (s *KudosService) Leaderboard(ctx context.Context) ([]model.Account, error) {
	if s.cache != nil {
		accounts, err := s.cache.GetLeaderboard(ctx)
		if err == nil {
			return accounts, nil
		}
	}
	accounts, err := s.db.TopByKudosReceived(ctx, s.opts.LeaderboardSize)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	if s.cache != nil {
		if err := s.cache.SetLeaderboard(ctx, accounts); err != nil {
			s.Log("Leaderboard", err)
		}
	}
	return accounts, nil
}

// Дождаться отправки уведомлений (shutdown)
func (s *KudosService) Wait() {
	s.wg.Wait()
}

func (s *KudosService) Log(service string, err error) {
	s.logger.Error("Kudos service",
		zap.String("service", service),
		zap.Error(err),
	)
}

// инвалидировать кэш после перевода
func (s *KudosService) invalidateAfterTransfer(ctx context.Context, entry model.KudosEntry) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLeaderboard(ctx); err != nil {
		s.Log("Transfer", err)
	}
	for _, id := range []int64{entry.SenderID, entry.ReceiverID} {
		if err := s.cache.InvalidateAccount(ctx, id); err != nil {
			s.Log("Transfer", err)
		}
	}
}

// уведомление отправляется после коммита и не блокирует ответ
func (s *KudosService) dispatch(entry model.KudosEntry) {
	if s.notifier == nil {
		return
	}
	n := model.NotificationFromEntry(entry)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				notificationsFailed.Inc()
				s.Log("Notify", fmt.Errorf("notifier panic: %v", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.opts.NotifyTimeout)
		defer cancel()
		err := s.notifier.Notify(ctx, n)
		if err != nil {
			notificationsFailed.Inc()
			s.logger.Error("Kudos notification failed",
				zap.String("service", "Notify"),
				zap.String("event", n.EventID.String()),
				zap.Error(err),
			)
			return
		}
		notificationsSent.Inc()
	}()
}
