package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShippingAddress struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type OrderItem struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"orderId"`
	ProductID       string          `json:"productId,omitempty"`
	SKU             string          `json:"sku,omitempty"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	Total           decimal.Decimal `json:"total"`
	LineNumber      int             `json:"lineNumber"`
}

type StatusHistory struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"orderId"`
	FromStatus OrderStatusType `json:"fromStatus,omitempty"`
	Status     OrderStatusType `json:"status"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Order агрегат заказа. Итоги фиксируются при создании и не пересчитываются.
type Order struct {
	ID              string            `json:"id"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	TenantID        string            `json:"tenantId"`
	OrderNumber     string            `json:"orderNumber"`
	OfferID         string            `json:"offerId,omitempty"`
	CustomerID      string            `json:"customerId"`
	Status          OrderStatusType   `json:"status"`
	PaymentStatus   PaymentStatusType `json:"paymentStatus"`
	Currency        string            `json:"currency"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	TaxTotal        decimal.Decimal   `json:"taxTotal"`
	ShippingTotal   decimal.Decimal   `json:"shippingTotal"`
	DiscountTotal   decimal.Decimal   `json:"discountTotal"`
	GrandTotal      decimal.Decimal   `json:"grandTotal"`
	Notes           string            `json:"notes,omitempty"`
	Version         int64             `json:"version"`
	ShippingAddress *ShippingAddress  `json:"shippingAddress,omitempty"`
	Items           []OrderItem       `json:"items,omitempty"`
	Payments        []Payment         `json:"payments,omitempty"`
	History         []StatusHistory   `json:"history,omitempty"`
}

type Payment struct {
	ID               string                `json:"id"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
	OrderID          string                `json:"orderId"`
	TenantID         string                `json:"tenantId"`
	Provider         string                `json:"provider"`
	Method           string                `json:"method,omitempty"`
	Status           TransactionStatusType `json:"status"`
	Amount           decimal.Decimal       `json:"amount"`
	Currency         string                `json:"currency"`
	TransactionID    string                `json:"transactionId,omitempty"`
	PaymentReference string                `json:"paymentReference,omitempty"`
	Last4            string                `json:"last4,omitempty"`
	RefundedAmount   decimal.Decimal       `json:"refundedAmount"`
	RefundedAt       *time.Time            `json:"refundedAt,omitempty"`
	FailureReason    string                `json:"failureReason,omitempty"`
}

// Refundable остаток суммы платежа, доступный для возврата.
func (p Payment) Refundable() decimal.Decimal {
	return p.Amount.Sub(p.RefundedAmount)
}

type OfferLineItem struct {
	ID              string          `json:"id"`
	OfferID         string          `json:"offerId"`
	ProductID       string          `json:"productId,omitempty"`
	SKU             string          `json:"sku,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	Total           decimal.Decimal `json:"total"`
	LineNumber      int             `json:"lineNumber"`
}

// Offer коммерческое предложение. Итоги всегда равны сумме текущих позиций.
type Offer struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	TenantID        string          `json:"tenantId"`
	OfferNumber     string          `json:"offerNumber"`
	CustomerID      string          `json:"customerId"`
	Status          OfferStatusType `json:"status"`
	Currency        string          `json:"currency"`
	ValidUntil      time.Time       `json:"validUntil"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountTotal   decimal.Decimal `json:"discountTotal"`
	TaxTotal        decimal.Decimal `json:"taxTotal"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	ApprovalToken   string          `json:"-"`
	OrderID         string          `json:"orderId,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	DecidedAt       *time.Time      `json:"decidedAt,omitempty"`
	Items           []OfferLineItem `json:"lineItems,omitempty"`
}

// IsPastDeadline сообщает, истек ли срок действия предложения на момент now.
func (o *Offer) IsPastDeadline(now time.Time) bool {
	return now.After(o.ValidUntil)
}
