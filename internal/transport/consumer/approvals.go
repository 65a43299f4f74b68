// Package consumer обрабатывает доменные события, полученные из шины.
package consumer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
)

const defaultDedupTTL = 72 * time.Hour

// Approvals принимает offer.approved в сервисе заказов. Повторные доставки одного события
// отсекаются через Deduper.
type Approvals struct {
	dedup   Deduper
	metrics *metrics.Metrics
	ttl     time.Duration
	l       *logrus.Entry
}

// NewApprovals создает обработчик. dedup может быть nil, тогда каждое событие считается новым.
func NewApprovals(dedup Deduper, m *metrics.Metrics, l *logrus.Logger) *Approvals {
	return &Approvals{
		dedup:   dedup,
		metrics: m,
		ttl:     defaultDedupTTL,
		l: l.WithFields(logrus.Fields{
			"component": "consumer",
			"module":    "approvals",
		}),
	}
}

// SetDedupTTL задает время хранения ключа обработанного события.
func (a *Approvals) SetDedupTTL(ttl time.Duration) *Approvals {
	a.ttl = ttl
	return a
}

// Handle подходит как eventbus.Handler. Ошибка возвращается только когда повтор имеет смысл.
func (a *Approvals) Handle(ctx context.Context, evt events.Event) error {
	log := a.l.WithFields(logrus.Fields{"event_id": evt.ID, "tenant": evt.TenantID})
	if evt.Type != events.TypeOfferApproved {
		log.WithField("type", evt.Type).Warn("unexpected event type skipped")
		return nil
	}

	payload, err := events.Decode[events.OfferApproved](evt)
	if err != nil {
		log.WithError(err).Error("invalid offer.approved payload dropped")
		return nil
	}

	if a.dedup != nil {
		key := string(evt.Type) + ":" + evt.ID
		fresh, claimErr := a.dedup.Claim(ctx, key, a.ttl)
		if claimErr != nil {
			return claimErr
		}
		if !fresh {
			log.Debug("duplicate event skipped")
			return nil
		}
	}

	a.metrics.ApprovalsReceived.Inc()
	log.WithFields(logrus.Fields{
		"offer_id":     payload.OfferID,
		"offer_number": payload.OfferNumber,
		"customer_id":  payload.CustomerID,
		"grand_total":  payload.GrandTotal.String(),
		"currency":     payload.Currency,
	}).Info("offer approval received")
	return nil
}
