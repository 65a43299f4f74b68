// Package events описывает конверт доменных событий и их полезную нагрузку.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeOrderCreated   Type = "order.created"
	TypeOrderConfirmed Type = "order.confirmed"
	TypeOfferApproved  Type = "offer.approved"
)

// CurrentVersion версия схемы полезной нагрузки.
const CurrentVersion = 1

// Event конверт события. Payload хранится сырым JSON и декодируется через Decode.
type Event struct {
	ID        string          `json:"id" validate:"required"`
	Type      Type            `json:"type" validate:"required"`
	Version   int             `json:"version" validate:"min=1"`
	Timestamp time.Time       `json:"timestamp" validate:"required"`
	TenantID  string          `json:"tenantId" validate:"required"`
	Source    string          `json:"source" validate:"required"`
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload" validate:"required"`
}

// LineItem позиция в полезной нагрузке событий.
type LineItem struct {
	ProductID  string          `json:"productId,omitempty"`
	SKU        string          `json:"sku,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Total      decimal.Decimal `json:"total"`
	LineNumber int             `json:"lineNumber"`
}

type OrderCreated struct {
	OrderID     string          `json:"orderId" validate:"required"`
	OrderNumber string          `json:"orderNumber" validate:"required"`
	OfferID     string          `json:"offerId,omitempty"`
	CustomerID  string          `json:"customerId" validate:"required"`
	Status      string          `json:"status,omitempty"`
	Currency    string          `json:"currency" validate:"required,len=3"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	ItemCount   int             `json:"itemCount" validate:"min=1"`
	LineItems   []LineItem      `json:"lineItems,omitempty"`
}

type OrderConfirmed struct {
	OrderID           string     `json:"orderId" validate:"required"`
	OrderNumber       string     `json:"orderNumber" validate:"required"`
	CustomerID        string     `json:"customerId,omitempty"`
	FromStatus        string     `json:"fromStatus" validate:"required"`
	PaymentStatus     string     `json:"paymentStatus,omitempty"`
	ShippingAddressID string     `json:"shippingAddressId,omitempty"`
	LineItems         []LineItem `json:"lineItems,omitempty"`
}

type OfferApproved struct {
	OfferID     string          `json:"offerId" validate:"required"`
	OfferNumber string          `json:"offerNumber" validate:"required"`
	CustomerID  string          `json:"customerId" validate:"required"`
	Currency    string          `json:"currency" validate:"required,len=3"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	ValidUntil  time.Time       `json:"validUntil"`
	ApprovedAt  time.Time       `json:"approvedAt" validate:"required"`
	LineItems   []LineItem      `json:"lineItems,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New собирает конверт события. key ключ партиционирования, обычно id агрегата.
func New(typ Type, tenantID, source, key string, payload any) (Event, error) {
	if err := validate.Struct(payload); err != nil {
		return Event{}, fmt.Errorf("invalid %s payload: %w", typ, err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Version:   CurrentVersion,
		Timestamp: time.Now().UTC(),
		TenantID:  tenantID,
		Source:    source,
		Key:       key,
		Payload:   raw,
	}, nil
}

// Parse разбирает и проверяет конверт.
func Parse(data []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return Event{}, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := validate.Struct(evt); err != nil {
		return Event{}, fmt.Errorf("invalid event envelope: %w", err)
	}
	return evt, nil
}

// Decode извлекает и валидирует полезную нагрузку события.
func Decode[T any](evt Event) (*T, error) {
	var payload T
	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", evt.Type, err)
	}
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", evt.Type, err)
	}
	return &payload, nil
}
