package kudos

import (
	"errors"

	model "github.com/glkeru/employeehub/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	transfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_transfers_total",
			Help: "Количество переводов kudos по результату",
		},
		[]string{"result"},
	)

	redemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_redemptions_total",
			Help: "Количество списаний на награды по результату",
		},
		[]string{"result"},
	)

	pointsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kudos_points_sent_total",
			Help: "Списано с балансов отправителей",
		},
	)

	pointsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kudos_points_credited_total",
			Help: "Начислено получателям с учетом бонуса",
		},
	)

	notificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kudos_notifications_sent_total",
			Help: "Отправленные уведомления",
		},
	)

	notificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kudos_notifications_failed_total",
			Help: "Ошибки отправки уведомлений",
		},
	)
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrConflict):
		return "conflict"
	case errors.Is(err, model.ErrForbidden):
		return "forbidden"
	}
	return "error"
}
