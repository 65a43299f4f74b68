package service

import (
	"context"
	"time"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/payments"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service/tokens"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/collab"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type OrderRepository interface {
	OrderNumberExists(ctx context.Context, tenantID, number string) (bool, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateShippingAddress(ctx context.Context, addr *domain.ShippingAddress) error
	BatchCreateItems(ctx context.Context, items []domain.OrderItem, fn repoargs.BatchExecQueryRow)
	AddHistory(ctx context.Context, h domain.StatusHistory) error
	FindByID(ctx context.Context, tenantID, id string) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id string) (*domain.Order, error)
	GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	GetShippingAddress(ctx context.Context, orderID string) (*domain.ShippingAddress, error)
	GetHistory(ctx context.Context, orderID string) ([]domain.StatusHistory, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, args repoargs.UpdateOrderPaymentStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, tenantID, id string) (*domain.Payment, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id string) (*domain.Payment, error)
	ListByOrder(ctx context.Context, tenantID, orderID string) ([]domain.Payment, error)
	Aggregate(ctx context.Context, orderID string) (*repoargs.PaymentAggregation, error)
	UpdateResult(ctx context.Context, args repoargs.UpdatePaymentResult) (*domain.Payment, error)
	RecordRefund(ctx context.Context, args repoargs.RecordRefund) (*domain.Payment, error)
}

type OfferRepository interface {
	OfferNumberExists(ctx context.Context, tenantID, number string) (bool, error)
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	FindByID(ctx context.Context, tenantID, id string) (*domain.Offer, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id string) (*domain.Offer, error)
	FindByTokenForUpdate(ctx context.Context, token string) (*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	ListOverdue(ctx context.Context, now time.Time, limit uint) ([]domain.Offer, error)
	ExpireIfOpen(ctx context.Context, tenantID, id string) (bool, error)
	GetItems(ctx context.Context, offerID string) ([]domain.OfferLineItem, error)
	CreateItem(ctx context.Context, item *domain.OfferLineItem) (*domain.OfferLineItem, error)
	UpdateItem(ctx context.Context, item *domain.OfferLineItem) (*domain.OfferLineItem, error)
	DeleteItem(ctx context.Context, offerID, itemID string) error
	BatchUpdateLineNumbers(ctx context.Context, items []domain.OfferLineItem, fn repoargs.BatchExecQueryRow)
}

type OffersAdapter interface {
	GetOffer(ctx context.Context, tenantID, offerID string) (*domain.Offer, error)
	ConsumeOffer(ctx context.Context, tenantID, offerID, orderID string) error
}

type InventoryAdapter interface {
	Validate(ctx context.Context, tenantID string, items []collab.StockItem) error
	Reserve(ctx context.Context, tenantID, orderID string, items []collab.StockItem) error
	Release(ctx context.Context, tenantID, orderID string) error
}

type ShippingAdapter interface {
	Calculate(
		ctx context.Context,
		tenantID, currency string,
		address domain.ShippingAddress,
		items []collab.StockItem,
	) (*collab.ShippingQuote, error)
}

type PaymentGateway interface {
	Resolve(name string) (string, payments.Provider, error)
	Charge(ctx context.Context, provider string, req payments.ChargeRequest) (payments.ChargeResult, error)
	Refund(ctx context.Context, provider string, req payments.RefundRequest) (payments.RefundResult, error)
}

type OrderStatusUpdater interface {
	UpdateStatus(
		ctx context.Context,
		tenantID, orderID string,
		status domain.OrderStatusType,
		note string,
	) (*domain.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evt events.Event) error
}

type ApprovalTokens interface {
	Issue(offerID, tenantID string, expiresAt time.Time) (string, error)
	Parse(token string) (*tokens.ApprovalClaims, error)
}
