package collab

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

type StockItem struct {
	ProductID string          `json:"productId"`
	SKU       string          `json:"sku,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type validateStockRequest struct {
	Items []StockItem `json:"items"`
}

type validateStockResponse struct {
	Valid            bool                     `json:"valid"`
	UnavailableItems []domain.UnavailableItem `json:"unavailableItems"`
}

type reserveStockRequest struct {
	OrderID string      `json:"orderId"`
	Items   []StockItem `json:"items"`
}

type reserveStockResponse struct {
	Success          bool                     `json:"success"`
	ReservedItems    []StockItem              `json:"reservedItems"`
	UnavailableItems []domain.UnavailableItem `json:"unavailableItems,omitempty"`
}

type releaseStockRequest struct {
	OrderID string `json:"orderId"`
}

// offerSnapshot ответ GET /offers/{id} (v1).
type offerSnapshot struct {
	ID          string                 `json:"id"`
	OfferNumber string                 `json:"offerNumber,omitempty"`
	CustomerID  string                 `json:"customerId"`
	Status      domain.OfferStatusType `json:"status"`
	LineItems   []offerSnapshotItem    `json:"lineItems"`
	GrandTotal  decimal.Decimal        `json:"grandTotal"`
	Currency    string                 `json:"currency"`
	ValidUntil  time.Time              `json:"validUntil"`
	OrderID     string                 `json:"orderId,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
}

type offerSnapshotItem struct {
	ProductID       string          `json:"productId"`
	SKU             string          `json:"sku,omitempty"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	LineNumber      int             `json:"lineNumber,omitempty"`
}

func (o offerSnapshot) toDomain(tenantID string) *domain.Offer {
	offer := &domain.Offer{
		ID:          o.ID,
		TenantID:    tenantID,
		OfferNumber: o.OfferNumber,
		CustomerID:  o.CustomerID,
		Status:      o.Status,
		Currency:    o.Currency,
		ValidUntil:  o.ValidUntil,
		GrandTotal:  o.GrandTotal,
		OrderID:     o.OrderID,
		Notes:       o.Notes,
		Items:       make([]domain.OfferLineItem, 0, len(o.LineItems)),
	}
	for i, item := range o.LineItems {
		lineNumber := item.LineNumber
		if lineNumber == 0 {
			lineNumber = i + 1
		}
		offer.Items = append(offer.Items, domain.OfferLineItem{
			OfferID:         o.ID,
			ProductID:       item.ProductID,
			SKU:             item.SKU,
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			TaxPercent:      item.TaxPercent,
			LineNumber:      lineNumber,
		})
	}
	return offer
}

type consumeOfferRequest struct {
	OrderID string `json:"orderId"`
}

type shippingQuoteRequest struct {
	Currency string                 `json:"currency"`
	Address  domain.ShippingAddress `json:"address"`
	Items    []StockItem            `json:"items"`
}

// ShippingQuote стоимость доставки.
type ShippingQuote struct {
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency"`
	Carrier  string          `json:"carrier,omitempty"`
}
