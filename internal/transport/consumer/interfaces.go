package consumer

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

// Deduper помечает событие обработанным. Claim возвращает false, если ключ уже занят.
type Deduper interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type OfferConsumer interface {
	Consume(ctx context.Context, tenantID, offerID, orderID string) (*domain.Offer, error)
}
