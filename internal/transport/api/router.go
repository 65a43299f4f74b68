package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/api/middlewares"
)

const (
	// DefaultServiceTimeout покрывает повторы вызовов партнеров внутри саги.
	DefaultServiceTimeout = 15 * time.Second
)

const (
	RouteGroup   = "/api/v1"
	HealthRoute  = "/health"
	MetricsRoute = "/metrics"

	OrdersRoute          = "/orders"
	OrdersFromOfferRoute = "/orders/from-offer"
	OrderRoute           = "/orders/:id"
	OrderStatusRoute     = "/orders/:id/status"
	OrderCancelRoute     = "/orders/:id/cancel"
	OrderPaymentsRoute   = "/orders/:id/payments"
	PaymentRefundRoute   = "/orders/:id/payments/:paymentId/refund"

	OffersRoute        = "/offers"
	OfferRoute         = "/offers/:id"
	OfferItemsRoute    = "/offers/:id/items"
	OfferItemRoute     = "/offers/:id/items/:itemId"
	OfferSendRoute     = "/offers/:id/send"
	OfferTokenRoute    = "/offers/:id/approval-token"
	OfferApproveRoute  = "/offers/:id/approve"
	OfferRejectRoute   = "/offers/:id/reject"
	OfferCancelRoute   = "/offers/:id/cancel"
	OfferConsumeRoute  = "/offers/:id/consume"
	PublicApproveRoute = "/public/offers/approve"
	PublicRejectRoute  = "/public/offers/reject"
)

type OrdersRouterArgs struct {
	Logger         *logrus.Logger
	Metrics        *metrics.Metrics
	OrderService   OrderServicer
	PaymentService PaymentServicer
}

// NewOrdersRouter HTTP API сервиса заказов.
func NewOrdersRouter(args OrdersRouterArgs) (*gin.Engine, error) {
	r, err := newEngine(args.Logger, args.Metrics)
	if err != nil {
		return nil, err
	}

	ordersHandler := NewOrdersHandler(args.OrderService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)

	api := r.Group(RouteGroup, middlewares.TenantRequired())
	api.POST(OrdersRoute, ordersHandler.Create)
	api.POST(OrdersFromOfferRoute, ordersHandler.CreateFromOffer)
	api.GET(OrderRoute, ordersHandler.Show)
	api.PATCH(OrderStatusRoute, ordersHandler.UpdateStatus)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)

	api.POST(OrderPaymentsRoute, paymentsHandler.Create)
	api.GET(OrderPaymentsRoute, paymentsHandler.Index)
	api.POST(PaymentRefundRoute, paymentsHandler.Refund)
	return r, nil
}

type OffersRouterArgs struct {
	Logger       *logrus.Logger
	Metrics      *metrics.Metrics
	OfferService OfferServicer
}

// NewOffersRouter HTTP API сервиса предложений. Маршруты /public не требуют тенанта: клиент
// решает по токену из ссылки.
func NewOffersRouter(args OffersRouterArgs) (*gin.Engine, error) {
	r, err := newEngine(args.Logger, args.Metrics)
	if err != nil {
		return nil, err
	}

	offersHandler := NewOffersHandler(args.OfferService)

	public := r.Group(RouteGroup)
	public.POST(PublicApproveRoute, offersHandler.ApproveByToken)
	public.POST(PublicRejectRoute, offersHandler.RejectByToken)

	api := r.Group(RouteGroup, middlewares.TenantRequired())
	api.POST(OffersRoute, offersHandler.Create)
	api.GET(OfferRoute, offersHandler.Show)
	api.POST(OfferItemsRoute, offersHandler.AddItem)
	api.PUT(OfferItemRoute, offersHandler.UpdateItem)
	api.DELETE(OfferItemRoute, offersHandler.DeleteItem)
	api.POST(OfferSendRoute, offersHandler.Send)
	api.GET(OfferTokenRoute, offersHandler.ApprovalToken)
	api.POST(OfferApproveRoute, offersHandler.Approve)
	api.POST(OfferRejectRoute, offersHandler.Reject)
	api.POST(OfferCancelRoute, offersHandler.Cancel)
	api.POST(OfferConsumeRoute, offersHandler.Consume)
	return r, nil
}

func newEngine(l *logrus.Logger, m *metrics.Metrics) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if l != nil {
		r.Use(middlewares.Logger(l))
	}
	if m != nil {
		r.Use(middlewares.Metrics(m))
		r.GET(MetricsRoute, gin.WrapH(m.Handler()))
	}
	r.Use(middlewares.Errors())

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, nil
}
