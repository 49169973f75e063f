package kudos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type RewardService struct {
	logger *zap.Logger
	db     interf.KudosStorage
	cache  interf.CacheStorage
	now    func() time.Time
}

func NewRewardService(logger *zap.Logger, db interf.KudosStorage, cache interf.CacheStorage) *RewardService {
	return &RewardService{logger, db, cache, time.Now}
}

// Активные награды
func (s *RewardService) ListRewards(ctx context.Context) ([]model.Reward, error) {
	rewards, err := s.db.ListActiveRewards(ctx)
	if err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []model.Reward{}
	}
	return rewards, nil
}

// Списание баллов на награду
func (s *RewardService) Redeem(ctx context.Context, caller model.Caller, rewardId int64) (model.Redemption, error) {
	return s.redeem(ctx, caller, rewardId, "")
}

// redeemId не пустой - заявка из очереди, повтор возвращает уже сделанное списание
func (s *RewardService) redeem(ctx context.Context, caller model.Caller, rewardId int64, redeemId string) (redemption model.Redemption, err error) {
	ctx, span := tracer.Start(ctx, "RewardService.Redeem", trace.WithAttributes(
		attribute.Int64("kudos.user", caller.ID),
		attribute.Int64("kudos.reward", rewardId),
		attribute.String("kudos.redeem", redeemId),
	))
	defer func() {
		redemptionsTotal.WithLabelValues(resultLabel(err)).Inc()
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if !caller.Role.Valid() {
		return model.Redemption{}, model.ErrRoleNotAllowed
	}

	replayed := false
	err = s.db.WithTx(ctx, func(tx interf.LedgerTx) error {
		reward, err := tx.GetReward(ctx, rewardId)
		if err != nil {
			return err
		}

		// проверить и заблокировать баланс
		accounts, err := tx.LockAccounts(ctx, []int64{caller.ID})
		if err != nil {
			return err
		}
		user, ok := accounts[caller.ID]
		if !ok {
			return model.ErrUserNotFound
		}

		// повторная доставка заявки видна только после блокировки счета
		if redeemId != "" {
			existing, err := tx.FindRedemption(ctx, redeemId)
			switch {
			case err == nil:
				if existing.UserID != user.ID || existing.RewardID != reward.ID {
					return model.ErrRedeemMismatch
				}
				redemption = existing
				replayed = true
				return nil
			case !errors.Is(err, model.ErrRedemptionNotFound):
				return err
			}
		}

		if !reward.IsActive {
			return model.ErrRewardNotFound
		}
		if user.KudosBalance < reward.KudosCost {
			return model.ErrInsufficientBalance
		}
		user.KudosBalance -= reward.KudosCost
		if err := tx.SaveAccount(ctx, user); err != nil {
			return err
		}

		redemption, err = tx.AppendRedemption(ctx, model.Redemption{
			Ref:        uuid.New(),
			RedeemID:   redeemId,
			UserID:     user.ID,
			RewardID:   reward.ID,
			KudosCost:  reward.KudosCost,
			RedeemedAt: s.now(),
			Status:     model.RedemptionCompleted,
		})
		return err
	})
	if err != nil {
		return model.Redemption{}, err
	}
	if replayed {
		s.logger.Info("redeem already processed",
			zap.String("redeem", redeemId),
			zap.Int64("redemption", redemption.ID),
		)
		return redemption, nil
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAccount(ctx, caller.ID); err != nil {
			s.logger.Error("Reward service", zap.String("service", "Redeem"), zap.Error(err))
		}
	}
	return redemption, nil
}

// запрос на списание из очереди
type RedeemStruct struct {
	UserId   int64  `json:"userId"`
	RewardId int64  `json:"rewardId"`
	RedeemId string `json:"redeemId"`
}

// Списание по сообщению из очереди. redeemId возвращается и при ошибке, чтобы отправить подтверждение.
func (s *RewardService) RedeemMessage(ctx context.Context, redeemJson string) (redeemId string, err error) {
	redeem := &RedeemStruct{}
	err = json.Unmarshal([]byte(redeemJson), redeem)
	if err != nil {
		return "", model.Invalid("redeem message: %v", err)
	}
	if redeem.RedeemId == "" {
		return "", model.Invalid("invalid redeem: redeemId field is required")
	}
	if redeem.UserId <= 0 || redeem.RewardId <= 0 {
		return redeem.RedeemId, model.Invalid("invalid redeem %s: userId and rewardId are required", redeem.RedeemId)
	}

	_, err = s.redeem(ctx, model.Caller{ID: redeem.UserId, Role: model.USER}, redeem.RewardId, redeem.RedeemId)
	if err != nil {
		return redeem.RedeemId, fmt.Errorf("redeem %s: %w", redeem.RedeemId, err)
	}
	return redeem.RedeemId, nil
}
