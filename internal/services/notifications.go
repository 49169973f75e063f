package kudos

import (
	"context"
	"encoding/json"

	interf "github.com/glkeru/employeehub/internal/interfaces"
	model "github.com/glkeru/employeehub/internal/models"
	"go.uber.org/zap"
)

// Пересылка событий о переводах во внешний канал
type NotificationService struct {
	logger   *zap.Logger
	notifier interf.Notifier
	log      interf.DeliveryLog
}

// log может быть nil
func NewNotificationService(logger *zap.Logger, notifier interf.Notifier, log interf.DeliveryLog) *NotificationService {
	return &NotificationService{logger, notifier, log}
}

// Обработка события из очереди
func (s *NotificationService) Forward(ctx context.Context, eventJson []byte) error {
	n := model.KudosNotification{}
	err := json.Unmarshal(eventJson, &n)
	if err != nil {
		return model.Invalid("kudos event: %v", err)
	}

	return s.deliver(ctx, n)
}

// Повторная отправка недоставленных уведомлений. Возвращает число доставленных.
func (s *NotificationService) RetryFailed(ctx context.Context, maxAttempts int) (int, error) {
	if s.log == nil {
		return 0, nil
	}
	failed, err := s.log.FailedDeliveries(ctx, maxAttempts)
	if err != nil {
		return 0, err
	}
	delivered := 0
	for _, n := range failed {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}
		if err := s.deliver(ctx, n); err == nil {
			delivered++
		}
	}
	return delivered, nil
}

func (s *NotificationService) deliver(ctx context.Context, n model.KudosNotification) error {
	deliveryErr := s.notifier.Notify(ctx, n)
	if deliveryErr != nil {
		notificationsFailed.Inc()
	} else {
		notificationsSent.Inc()
	}

	if s.log != nil {
		err := s.log.SaveDelivery(ctx, n, deliveryErr)
		if err != nil {
			s.logger.Error("Delivery log",
				zap.String("service", "Notifications"),
				zap.String("event", n.EventID.String()),
				zap.Error(err),
			)
		}
	}
	return deliveryErr
}
