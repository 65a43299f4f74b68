package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
)

type PaymentsHandler struct {
	svs PaymentServicer
}

func NewPaymentsHandler(svs PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{
		svs: svs,
	}
}

type PaymentParams struct {
	Provider string `binding:"max=32"  json:"provider"`
	// Amount не задан -> оплачивается остаток.
	Amount decimal.NullDecimal `json:"amount"`
	Method string              `binding:"max=32"  json:"method"`
	Token  string              `binding:"max=255" json:"token"`
}

// Create POST RouteGroup + OrderPaymentsRoute. Проводит платеж по заказу.
func (p *PaymentsHandler) Create(c *gin.Context) {
	var params PaymentParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := p.svs.ProcessPayment(reqCtx, service.ProcessPaymentArgs{
		TenantID: getTenantIDFromContext(c),
		OrderID:  c.Param("id"),
		Provider: params.Provider,
		Amount:   params.Amount,
		Method:   params.Method,
		Token:    params.Token,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// Index GET RouteGroup + OrderPaymentsRoute.
func (p *PaymentsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := p.svs.ListPayments(reqCtx, getTenantIDFromContext(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type RefundParams struct {
	// Amount не задан -> возвращается весь остаток платежа.
	Amount decimal.NullDecimal `json:"amount"`
	Reason string              `binding:"max=255" json:"reason"`
}

// Refund POST RouteGroup + PaymentRefundRoute.
func (p *PaymentsHandler) Refund(c *gin.Context) {
	var params RefundParams
	if c.Request.ContentLength > 0 && !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := p.svs.ProcessRefund(reqCtx, service.ProcessRefundArgs{
		TenantID:  getTenantIDFromContext(c),
		OrderID:   c.Param("id"),
		PaymentID: c.Param("paymentId"),
		Amount:    params.Amount,
		Reason:    params.Reason,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
