package collab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

const (
	RouteInventoryValidate = "/inventory/validate"
	RouteInventoryReserve  = "/inventory/reserve"
	RouteInventoryRelease  = "/inventory/release"
)

// InventoryClient клиент складского сервиса.
type InventoryClient struct {
	*HTTPClient
}

func NewInventoryClient(c *HTTPClient) *InventoryClient {
	return &InventoryClient{HTTPClient: c}
}

// Validate проверяет наличие всех позиций. Нехватка -> *domain.InsufficientInventoryError.
func (c *InventoryClient) Validate(ctx context.Context, tenantID string, items []StockItem) error {
	if len(items) == 0 {
		return fmt.Errorf("validate stock: %w: %w", errEmptyItems, domain.ErrInvalidInput)
	}
	var resp validateStockResponse
	err := c.call(ctx, "validate", tenantID, http.MethodPost, RouteInventoryValidate,
		validateStockRequest{Items: items}, &resp)
	if err != nil {
		return c.mapStockErr(err)
	}
	if !resp.Valid {
		return domain.NewInsufficientInventoryError(resp.UnavailableItems)
	}
	return nil
}

// Reserve резервирует позиции под заказ. 409 или success=false -> *domain.InsufficientInventoryError.
func (c *InventoryClient) Reserve(ctx context.Context, tenantID, orderID string, items []StockItem) error {
	var resp reserveStockResponse
	err := c.call(ctx, "reserve", tenantID, http.MethodPost, RouteInventoryReserve,
		reserveStockRequest{OrderID: orderID, Items: items}, &resp)
	if err != nil {
		return c.mapStockErr(err)
	}
	if !resp.Success {
		return domain.NewInsufficientInventoryError(resp.UnavailableItems)
	}
	return nil
}

// Release снимает резерв заказа.
func (c *InventoryClient) Release(ctx context.Context, tenantID, orderID string) error {
	err := c.call(ctx, "release", tenantID, http.MethodPost, RouteInventoryRelease,
		releaseStockRequest{OrderID: orderID}, nil)
	if err != nil {
		return mapRejection(err)
	}
	return nil
}

func (c *InventoryClient) mapStockErr(err error) error {
	sce, ok := rejection(err)
	if !ok || sce.Code != http.StatusConflict {
		return mapRejection(err)
	}
	var body validateStockResponse
	decodeErrorBody(sce, &body)
	return domain.NewInsufficientInventoryError(body.UnavailableItems)
}
