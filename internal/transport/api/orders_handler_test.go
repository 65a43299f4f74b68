package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/logger"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/api/mocks"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/api/testutils"
)

const testTenant = "tenant-1"

type OrderHandlerTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	router             *gin.Engine
	mockOrderService   *mocks.MockOrderServicer
	mockPaymentService *mocks.MockPaymentServicer
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderService = mocks.NewMockOrderServicer(s.mockCtrl)
	s.mockPaymentService = mocks.NewMockPaymentServicer(s.mockCtrl)

	router, err := NewOrdersRouter(OrdersRouterArgs{
		Logger:         logger.New(io.Discard),
		Metrics:        metrics.New("orders"),
		OrderService:   s.mockOrderService,
		PaymentService: s.mockPaymentService,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func validAddress() map[string]any {
	return map[string]any{
		"name":       gofakeit.Name(),
		"line1":      gofakeit.Street(),
		"city":       gofakeit.City(),
		"postalCode": gofakeit.Zip(),
		"country":    "de",
	}
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	validPayload := map[string]any{
		"customerId": "customer-1",
		"currency":   "EUR",
		"items": []map[string]any{
			{"sku": "SKU-1", "description": "widget", "quantity": "2", "unitPrice": "10.00", "taxPercent": "19"},
		},
		"shippingAddress": validAddress(),
	}

	s.mockOrderService.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateOrderArgs) (*domain.Order, error) {
			s.Equal(testTenant, args.TenantID)
			s.Require().Len(args.Items, 1)
			s.Equal("2", args.Items[0].Quantity.String())
			s.Equal("DE", args.ShippingAddress.Country)
			return &domain.Order{ID: "order-1", OrderNumber: "ORD-20240315-ABCDEF", GrandTotal: decimal.NewFromInt(20)}, nil
		}).Times(1)

	cases := []struct {
		name       string
		payload    any
		rawBody    string
		tenant     string
		wantStatus int
		wantKind   string
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			tenant:     testTenant,
			wantStatus: http.StatusCreated,
		}, {
			name:       "missing tenant",
			payload:    validPayload,
			wantStatus: http.StatusBadRequest,
			wantKind:   string(domain.KindValidation),
		}, {
			name: "no items",
			payload: map[string]any{
				"customerId": "customer-1", "currency": "EUR", "shippingAddress": validAddress(),
			},
			tenant:     testTenant,
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   string(domain.KindValidation),
		}, {
			name: "zero quantity",
			payload: map[string]any{
				"customerId": "customer-1", "currency": "EUR", "shippingAddress": validAddress(),
				"items": []map[string]any{{"sku": "SKU-1", "quantity": "0", "unitPrice": "1"}},
			},
			tenant:     testTenant,
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   string(domain.KindValidation),
		}, {
			name:       "malformed json",
			rawBody:    "{",
			tenant:     testTenant,
			wantStatus: http.StatusBadRequest,
			wantKind:   string(domain.KindValidation),
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   testutils.JSONBody(t.payload),
			}
			if t.rawBody != "" {
				args.Body = strings.NewReader(t.rawBody)
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.tenant != "" {
				reqOpts = append(reqOpts, testutils.WithTenant(t.tenant))
			}
			res := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantKind != "" {
				kind, _, err := testutils.DecodeError(res)
				s.Require().NoError(err)
				s.Equal(t.wantKind, kind)
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestCreateFromOfferErrors() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   domain.Kind
	}{
		{
			name:       "offer not approved",
			err:        fmt.Errorf("offer: %w", domain.ErrOfferNotApproved),
			wantStatus: http.StatusConflict,
			wantKind:   domain.KindConflict,
		}, {
			name:       "offer not found",
			err:        domain.ErrOfferNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   domain.KindNotFound,
		}, {
			name:       "inventory down",
			err:        fmt.Errorf("validate stock: %w", domain.ErrDependencyUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   domain.KindDependency,
		}, {
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   domain.KindInternal,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockOrderService.EXPECT().CreateFromOffer(gomock.Any(), gomock.Any()).Return(nil, t.err)

			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersFromOfferRoute,
				Body:   testutils.JSONBody(map[string]any{"offerId": "offer-1", "shippingAddress": validAddress()}),
			}, testutils.WithTenant(testTenant))
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			kind, msg, err := testutils.DecodeError(res)
			s.Require().NoError(err)
			s.Equal(string(t.wantKind), kind)
			if t.wantKind == domain.KindInternal {
				s.Equal("internal server error", msg)
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestInsufficientInventoryListsItems() {
	s.mockOrderService.EXPECT().CreateFromOffer(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewInsufficientInventoryError([]domain.UnavailableItem{{ProductID: "p-1", Available: "1"}}))

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + OrdersFromOfferRoute,
		Body:   testutils.JSONBody(map[string]any{"offerId": "offer-1", "shippingAddress": validAddress()}),
	}, testutils.WithTenant(testTenant))
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusConflict, res.StatusCode)
	var body struct {
		Error struct {
			Items []domain.UnavailableItem `json:"unavailableItems"`
		} `json:"error"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Error.Items, 1)
	s.Equal("p-1", body.Error.Items[0].ProductID)
}

func (s *OrderHandlerTestSuite) TestShowOrder() {
	s.mockOrderService.EXPECT().Get(gomock.Any(), testTenant, "order-1").
		Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusPending}, nil)
	s.mockOrderService.EXPECT().Get(gomock.Any(), testTenant, "missing").
		Return(nil, domain.ErrOrderNotFound)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/orders/order-1",
	}, testutils.WithTenant(testTenant))
	s.Equal(http.StatusOK, res.StatusCode)
	var order domain.Order
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&order))
	s.Equal(domain.OrderStatusPending, order.Status)
	s.Require().NoError(res.Body.Close())

	res = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/orders/missing",
	}, testutils.WithTenant(testTenant))
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), testTenant, "order-1", domain.OrderStatusConfirmed, "paid offline").
		Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusConfirmed}, nil)
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), testTenant, "order-2", domain.OrderStatusShipped, "").
		Return(nil, domain.ErrConcurrentModification)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPatch,
		URL:    RouteGroup + "/orders/order-1/status",
		Body:   testutils.JSONBody(map[string]string{"status": "confirmed", "note": "paid offline"}),
	}, testutils.WithTenant(testTenant))
	s.Equal(http.StatusOK, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPatch,
		URL:    RouteGroup + "/orders/order-2/status",
		Body:   testutils.JSONBody(map[string]string{"status": "SHIPPED"}),
	}, testutils.WithTenant(testTenant))
	s.Equal(http.StatusConflict, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *OrderHandlerTestSuite) TestCancelWithoutBody() {
	s.mockOrderService.EXPECT().Cancel(gomock.Any(), testTenant, "order-1", "").
		Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusCanceled}, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/orders/order-1/cancel",
	}, testutils.WithTenant(testTenant))
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestNotesLimitCountsBytes() {
	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/orders/order-1/cancel",
		Body:   testutils.JSONBody(map[string]string{"reason": testutils.MultibyteString(600)}),
	}, testutils.WithTenant(testTenant))
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestProcessPayment() {
	s.mockPaymentService.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ProcessPaymentArgs) (*domain.Payment, error) {
			s.Equal("order-1", args.OrderID)
			s.Equal("stripe", args.Provider)
			s.True(args.Amount.Valid)
			s.Equal("40.5", args.Amount.Decimal.String())
			return &domain.Payment{ID: "pay-1", Status: domain.TransactionStatusSucceeded}, nil
		})
	s.mockPaymentService.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: card declined", domain.ErrPaymentProcessingFailed))

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/orders/order-1/payments",
		Body:   testutils.JSONBody(map[string]any{"provider": "stripe", "amount": "40.50", "token": "tok_visa"}),
	}, testutils.WithTenant(testTenant))
	s.Equal(http.StatusCreated, res.StatusCode)
	s.Require().NoError(res.Body.Close())

	res = testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/orders/order-1/payments",
		Body:   testutils.JSONBody(map[string]any{}),
	}, testutils.WithTenant(testTenant))
	s.Equal(http.StatusServiceUnavailable, res.StatusCode)
	s.Require().NoError(res.Body.Close())
}

func (s *OrderHandlerTestSuite) TestRefund() {
	s.mockPaymentService.EXPECT().ProcessRefund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ProcessRefundArgs) (*domain.Payment, error) {
			s.Equal("pay-1", args.PaymentID)
			s.False(args.Amount.Valid)
			return nil, domain.ErrPaymentNotRefundable
		})

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/orders/order-1/payments/pay-1/refund",
	}, testutils.WithTenant(testTenant))
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusConflict, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestListPayments() {
	s.mockPaymentService.EXPECT().ListPayments(gomock.Any(), testTenant, "order-1").
		Return([]domain.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/orders/order-1/payments",
	}, testutils.WithTenant(testTenant))
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)
	var list []domain.Payment
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&list))
	s.Len(list, 2)
}

func (s *OrderHandlerTestSuite) TestServiceRoutes() {
	for _, url := range []string{HealthRoute, MetricsRoute} {
		res := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    url,
		})
		s.Equal(http.StatusOK, res.StatusCode, url)
		s.Require().NoError(res.Body.Close())
	}
}
