package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
)

type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	CreateFromOffer(ctx context.Context, args service.CreateFromOfferArgs) (*domain.Order, error)
	Get(ctx context.Context, tenantID, orderID string) (*domain.Order, error)
	UpdateStatus(
		ctx context.Context,
		tenantID, orderID string,
		status domain.OrderStatusType,
		note string,
	) (*domain.Order, error)
	Cancel(ctx context.Context, tenantID, orderID, reason string) (*domain.Order, error)
}

type PaymentServicer interface {
	ProcessPayment(ctx context.Context, args service.ProcessPaymentArgs) (*domain.Payment, error)
	ProcessRefund(ctx context.Context, args service.ProcessRefundArgs) (*domain.Payment, error)
	ListPayments(ctx context.Context, tenantID, orderID string) ([]domain.Payment, error)
}

type OfferServicer interface {
	Create(ctx context.Context, args service.CreateOfferArgs) (*domain.Offer, error)
	Get(ctx context.Context, tenantID, offerID string) (*domain.Offer, error)
	AddLineItem(ctx context.Context, tenantID, offerID string, in service.LineItemInput) (*domain.Offer, error)
	UpdateLineItem(
		ctx context.Context,
		tenantID, offerID, itemID string,
		in service.LineItemInput,
	) (*domain.Offer, error)
	DeleteLineItem(ctx context.Context, tenantID, offerID, itemID string) (*domain.Offer, error)
	Send(ctx context.Context, tenantID, offerID string) (*domain.Offer, error)
	ApprovalLink(ctx context.Context, tenantID, offerID string) (string, error)
	Approve(ctx context.Context, tenantID, offerID string) (*domain.Offer, error)
	Reject(ctx context.Context, tenantID, offerID, reason string) (*domain.Offer, error)
	ApproveByToken(ctx context.Context, token string) (*domain.Offer, error)
	RejectByToken(ctx context.Context, token, reason string) (*domain.Offer, error)
	Cancel(ctx context.Context, tenantID, offerID string) (*domain.Offer, error)
	Consume(ctx context.Context, tenantID, offerID, orderID string) (*domain.Offer, error)
}
