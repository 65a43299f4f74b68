package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
)

type OffersHandler struct {
	svs OfferServicer
}

func NewOffersHandler(svs OfferServicer) *OffersHandler {
	return &OffersHandler{
		svs: svs,
	}
}

type CreateOfferParams struct {
	CustomerID string    `binding:"required,max=64"  json:"customerId"`
	Currency   string    `binding:"required,len=3"   json:"currency"`
	ValidUntil time.Time `binding:"required"         json:"validUntil"`
	Notes      string    `binding:"max_bytes=2000"   json:"notes"`
}

// Create POST RouteGroup + OffersRoute.
func (h *OffersHandler) Create(c *gin.Context) {
	var params CreateOfferParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Create(reqCtx, service.CreateOfferArgs{
		TenantID:   getTenantIDFromContext(c),
		CustomerID: params.CustomerID,
		Currency:   params.Currency,
		ValidUntil: params.ValidUntil,
		Notes:      params.Notes,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// Show GET RouteGroup + OfferRoute. Этот же маршрут читает сервис заказов.
func (h *OffersHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Get(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

type LineItemParams struct {
	ProductID       string          `binding:"max=64"          json:"productId"`
	SKU             string          `binding:"max=64"          json:"sku"`
	Description     string          `binding:"required,max=500" json:"description"`
	Quantity        decimal.Decimal `binding:"gt=0"            json:"quantity"`
	UnitPrice       decimal.Decimal `binding:"gte=0"           json:"unitPrice"`
	DiscountPercent decimal.Decimal `binding:"gte=0,lte=100"   json:"discountPercent"`
	TaxPercent      decimal.Decimal `binding:"gte=0,lte=100"   json:"taxPercent"`
}

func (p LineItemParams) toInput() service.LineItemInput {
	return service.LineItemInput{
		ProductID:       p.ProductID,
		SKU:             p.SKU,
		Description:     p.Description,
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		DiscountPercent: p.DiscountPercent,
		TaxPercent:      p.TaxPercent,
	}
}

// AddItem POST RouteGroup + OfferItemsRoute.
func (h *OffersHandler) AddItem(c *gin.Context) {
	var params LineItemParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.AddLineItem(reqCtx, getTenantIDFromContext(c), c.Param("id"), params.toInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// UpdateItem PUT RouteGroup + OfferItemRoute.
func (h *OffersHandler) UpdateItem(c *gin.Context) {
	var params LineItemParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.UpdateLineItem(reqCtx, getTenantIDFromContext(c), c.Param("id"), c.Param("itemId"),
		params.toInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// DeleteItem DELETE RouteGroup + OfferItemRoute.
func (h *OffersHandler) DeleteItem(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.DeleteLineItem(reqCtx, getTenantIDFromContext(c), c.Param("id"), c.Param("itemId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// SendResponse отправленное предложение и токен для ссылки одобрения.
type SendResponse struct {
	Offer         *domain.Offer `json:"offer"`
	ApprovalToken string        `json:"approvalToken"`
}

// Send POST RouteGroup + OfferSendRoute.
func (h *OffersHandler) Send(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Send(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, SendResponse{Offer: offer, ApprovalToken: offer.ApprovalToken})
}

// ApprovalToken GET RouteGroup + OfferTokenRoute. Повторно выдает токен отправленного предложения.
func (h *OffersHandler) ApprovalToken(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	token, err := h.svs.ApprovalLink(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"approvalToken": token})
}

type DecisionParams struct {
	Reason string `binding:"max=1000" json:"reason"`
}

// Approve POST RouteGroup + OfferApproveRoute.
func (h *OffersHandler) Approve(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Approve(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Reject POST RouteGroup + OfferRejectRoute.
func (h *OffersHandler) Reject(c *gin.Context) {
	var params DecisionParams
	if c.Request.ContentLength > 0 && !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Reject(reqCtx, getTenantIDFromContext(c), c.Param("id"), params.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Cancel POST RouteGroup + OfferCancelRoute.
func (h *OffersHandler) Cancel(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Cancel(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

type ConsumeParams struct {
	OrderID string `binding:"required,max=64" json:"orderId"`
}

// Consume POST RouteGroup + OfferConsumeRoute. Вызывается сервисом заказов после оформления заказа.
func (h *OffersHandler) Consume(c *gin.Context) {
	var params ConsumeParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.Consume(reqCtx, getTenantIDFromContext(c), c.Param("id"), params.OrderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

type TokenDecisionParams struct {
	Token  string `binding:"required,max=2048" json:"token"`
	Reason string `binding:"max=1000"          json:"reason"`
}

// ApproveByToken POST RouteGroup + PublicApproveRoute. Решение клиента по ссылке, без тенанта.
func (h *OffersHandler) ApproveByToken(c *gin.Context) {
	var params TokenDecisionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.ApproveByToken(reqCtx, params.Token)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicOffer(offer))
}

// RejectByToken POST RouteGroup + PublicRejectRoute.
func (h *OffersHandler) RejectByToken(c *gin.Context) {
	var params TokenDecisionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	offer, err := h.svs.RejectByToken(reqCtx, params.Token, params.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicOffer(offer))
}

// PublicOfferResponse то, что видит клиент по ссылке.
type PublicOfferResponse struct {
	OfferNumber string                 `json:"offerNumber"`
	Status      domain.OfferStatusType `json:"status"`
	Currency    string                 `json:"currency"`
	GrandTotal  decimal.Decimal        `json:"grandTotal"`
	DecidedAt   *time.Time             `json:"decidedAt,omitempty"`
}

func publicOffer(o *domain.Offer) PublicOfferResponse {
	return PublicOfferResponse{
		OfferNumber: o.OfferNumber,
		Status:      o.Status,
		Currency:    o.Currency,
		GrandTotal:  o.GrandTotal,
		DecidedAt:   o.DecidedAt,
	}
}
