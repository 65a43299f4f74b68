package consumer

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
)

// OrdersCreated принимает order.created в сервисе предложений и связывает предложение с заказом,
// если сага не успела сделать это сама.
type OrdersCreated struct {
	svs OfferConsumer
	l   *logrus.Entry
}

func NewOrdersCreated(svs OfferConsumer, l *logrus.Logger) *OrdersCreated {
	return &OrdersCreated{
		svs: svs,
		l: l.WithFields(logrus.Fields{
			"component": "consumer",
			"module":    "orders_created",
		}),
	}
}

func (o *OrdersCreated) Handle(ctx context.Context, evt events.Event) error {
	log := o.l.WithFields(logrus.Fields{"event_id": evt.ID, "tenant": evt.TenantID})

	payload, err := events.Decode[events.OrderCreated](evt)
	if err != nil {
		log.WithError(err).Error("invalid order.created payload dropped")
		return nil
	}
	if payload.OfferID == "" {
		return nil
	}
	log = log.WithFields(logrus.Fields{"offer_id": payload.OfferID, "order_id": payload.OrderID})

	_, err = o.svs.Consume(ctx, evt.TenantID, payload.OfferID, payload.OrderID)
	switch {
	case err == nil:
		log.Info("offer linked to order")
		return nil
	case errors.Is(err, domain.ErrOfferAlreadyConsumed),
		errors.Is(err, domain.ErrOfferNotApproved),
		errors.Is(err, domain.ErrOfferNotFound):
		log.WithError(err).Warn("offer not linked")
		return nil
	default:
		return err
	}
}
