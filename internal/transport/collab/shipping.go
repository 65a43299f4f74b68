package collab

import (
	"context"
	"net/http"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

const RouteShippingCalculate = "/shipping/calculate"

// ShippingClient клиент сервиса расчета доставки.
type ShippingClient struct {
	*HTTPClient
}

func NewShippingClient(c *HTTPClient) *ShippingClient {
	return &ShippingClient{HTTPClient: c}
}

// Calculate возвращает стоимость доставки позиций по адресу.
func (c *ShippingClient) Calculate(
	ctx context.Context,
	tenantID, currency string,
	address domain.ShippingAddress,
	items []StockItem,
) (*ShippingQuote, error) {
	var quote ShippingQuote
	err := c.call(ctx, "calculate", tenantID, http.MethodPost, RouteShippingCalculate,
		shippingQuoteRequest{Currency: currency, Address: address, Items: items}, &quote)
	if err != nil {
		return nil, mapRejection(err)
	}
	if quote.Cost.IsNegative() {
		return nil, domain.ErrDependencyRejected
	}
	if quote.Currency == "" {
		quote.Currency = currency
	}
	return &quote, nil
}
