package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type AddressParams struct {
	Name       string `binding:"max=200"          json:"name"`
	Line1      string `binding:"required,max=200" json:"line1"`
	Line2      string `binding:"max=200"          json:"line2"`
	City       string `binding:"required,max=100" json:"city"`
	State      string `binding:"max=100"          json:"state"`
	PostalCode string `binding:"required,max=20"  json:"postalCode"`
	Country    string `binding:"required,len=2"   json:"country"`
	Phone      string `binding:"max=32"           json:"phone"`
}

func (p AddressParams) toDomain() domain.ShippingAddress {
	return domain.ShippingAddress{
		Name:       p.Name,
		Line1:      p.Line1,
		Line2:      p.Line2,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
		Country:    strings.ToUpper(p.Country),
		Phone:      p.Phone,
	}
}

type OrderItemParams struct {
	ProductID       string          `binding:"required_without=SKU"     json:"productId"`
	SKU             string          `binding:"required_without=ProductID" json:"sku"`
	Description     string          `binding:"max=500"                  json:"description"`
	Quantity        decimal.Decimal `binding:"gt=0"                     json:"quantity"`
	UnitPrice       decimal.Decimal `binding:"gte=0"                    json:"unitPrice"`
	DiscountPercent decimal.Decimal `binding:"gte=0,lte=100"            json:"discountPercent"`
	TaxPercent      decimal.Decimal `binding:"gte=0,lte=100"            json:"taxPercent"`
}

type CreateOrderParams struct {
	CustomerID      string            `binding:"required,max=64"  json:"customerId"`
	Currency        string            `binding:"required,len=3"   json:"currency"`
	Items           []OrderItemParams `binding:"required,min=1,dive" json:"items"`
	ShippingAddress AddressParams     `json:"shippingAddress"`
	Notes           string            `binding:"max_bytes=2000"   json:"notes"`
}

// Create POST RouteGroup + OrdersRoute. Создает заказ из произвольных позиций.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if !bindJSON(c, &params) {
		return
	}

	items := make([]service.OrderItemInput, len(params.Items))
	for i, it := range params.Items {
		items[i] = service.OrderItemInput{
			ProductID:       it.ProductID,
			SKU:             it.SKU,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxPercent:      it.TaxPercent,
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Create(reqCtx, service.CreateOrderArgs{
		TenantID:        getTenantIDFromContext(c),
		CustomerID:      params.CustomerID,
		Currency:        params.Currency,
		Items:           items,
		ShippingAddress: params.ShippingAddress.toDomain(),
		Notes:           params.Notes,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

type CreateFromOfferParams struct {
	OfferID         string        `binding:"required,max=64"  json:"offerId"`
	ShippingAddress AddressParams `json:"shippingAddress"`
	Notes           string        `binding:"max_bytes=2000"   json:"notes"`
}

// CreateFromOffer POST RouteGroup + OrdersFromOfferRoute. Запускает сагу оформления заказа
// по одобренному предложению.
func (o *OrdersHandler) CreateFromOffer(c *gin.Context) {
	var params CreateFromOfferParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.CreateFromOffer(reqCtx, service.CreateFromOfferArgs{
		TenantID:        getTenantIDFromContext(c),
		OfferID:         params.OfferID,
		ShippingAddress: params.ShippingAddress.toDomain(),
		Notes:           params.Notes,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateStatusParams struct {
	Status domain.OrderStatusType `binding:"required"        json:"status"`
	Note   string                 `binding:"max_bytes=2000"  json:"note"`
}

// UpdateStatus PATCH RouteGroup + OrderStatusRoute.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	var params UpdateStatusParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.UpdateStatus(reqCtx, getTenantIDFromContext(c), c.Param("id"),
		domain.OrderStatusType(strings.ToUpper(string(params.Status))), params.Note)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type CancelOrderParams struct {
	Reason string `binding:"max_bytes=2000" json:"reason"`
}

// Cancel POST RouteGroup + OrderCancelRoute. Тело запроса необязательно.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	var params CancelOrderParams
	if c.Request.ContentLength > 0 && !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Cancel(reqCtx, getTenantIDFromContext(c), c.Param("id"), params.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
