package collab

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/resilience"
)

type CollabTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	calls   atomic.Int32
}

func TestCollabSuite(t *testing.T) {
	suite.Run(t, new(CollabTestSuite))
}

func (s *CollabTestSuite) SetupTest() {
	s.calls.Store(0)
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.Equal("tenant-1", r.Header.Get(HeaderTenantID))
		s.handler(w, r)
	}))
}

func (s *CollabTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *CollabTestSuite) httpClient(name string) *HTTPClient {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewHTTPClient(ClientArgs{
		Name:    name,
		BaseURL: s.server.URL,
		Policy: resilience.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			Timeout:     time.Second,
			Sleep:       func(_ context.Context, _ time.Duration) error { return nil },
		},
		Metrics: metrics.New("test"),
		Logger:  l,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *CollabTestSuite) TestGetOffer() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/offers/off-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "off-1",
			"customerId": "customer-1",
			"status": "APPROVED",
			"lineItems": [
				{"productId": "p-1", "sku": "SKU-1", "quantity": "10", "unitPrice": "100", "discountPercent": "5"}
			],
			"grandTotal": "1045.0000",
			"currency": "EUR",
			"validUntil": "2030-01-01T00:00:00Z"
		}`)
	}

	offer, err := NewOffersClient(s.httpClient("offers")).GetOffer(s.T().Context(), "tenant-1", "off-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusApproved, offer.Status)
	s.Equal("tenant-1", offer.TenantID)
	s.Equal("customer-1", offer.CustomerID)
	s.True(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Equal(offer.ValidUntil))
	s.Require().Len(offer.Items, 1)
	s.Equal("SKU-1", offer.Items[0].SKU)
	s.Equal(1, offer.Items[0].LineNumber)
	s.True(decimal.NewFromInt(100).Equal(offer.Items[0].UnitPrice))
	s.True(decimal.NewFromInt(5).Equal(offer.Items[0].DiscountPercent))
}

func (s *CollabTestSuite) TestGetOfferReadsOwnContract() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, domain.Offer{
			ID:       "off-1",
			Status:   domain.OfferStatusApproved,
			Currency: "EUR",
			Items: []domain.OfferLineItem{
				{ProductID: "p-1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(7), LineNumber: 1},
			},
		})
	}

	offer, err := NewOffersClient(s.httpClient("offers")).GetOffer(s.T().Context(), "tenant-1", "off-1")
	s.Require().NoError(err)
	s.Require().Len(offer.Items, 1)
	s.Equal("p-1", offer.Items[0].ProductID)
}

func (s *CollabTestSuite) TestGetOfferNotFoundIsNotRetried() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := NewOffersClient(s.httpClient("offers")).GetOffer(s.T().Context(), "tenant-1", "missing")
	s.Require().ErrorIs(err, domain.ErrOfferNotFound)
	s.Equal(int32(1), s.calls.Load())
}

func (s *CollabTestSuite) TestServerErrorRetriedThenUnavailable() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}

	_, err := NewOffersClient(s.httpClient("offers")).GetOffer(s.T().Context(), "tenant-1", "off-1")
	s.Require().ErrorIs(err, domain.ErrDependencyUnavailable)
	s.Equal(domain.KindDependency, domain.KindOf(err))
	s.Equal(int32(3), s.calls.Load())
}

func (s *CollabTestSuite) TestTooManyRequestsRetriedThenSucceeds() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		if s.calls.Load() < 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}

	err := NewInventoryClient(s.httpClient("inventory")).Release(s.T().Context(), "tenant-1", "order-1")
	s.Require().NoError(err)
	s.Equal(int32(2), s.calls.Load())
}

func (s *CollabTestSuite) TestConsumeOfferConflict() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/offers/off-1/consume", r.URL.Path)
		var body consumeOfferRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("order-1", body.OrderID)
		w.WriteHeader(http.StatusConflict)
	}

	err := NewOffersClient(s.httpClient("offers")).ConsumeOffer(s.T().Context(), "tenant-1", "off-1", "order-1")
	s.Require().ErrorIs(err, domain.ErrOfferAlreadyConsumed)
}

func (s *CollabTestSuite) TestValidateInsufficient() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteInventoryValidate, r.URL.Path)
		writeJSON(w, http.StatusOK, validateStockResponse{
			Valid:            false,
			UnavailableItems: []domain.UnavailableItem{{ProductID: "p-1", Requested: "10", Available: "3"}},
		})
	}

	err := NewInventoryClient(s.httpClient("inventory")).Validate(s.T().Context(), "tenant-1",
		[]StockItem{{ProductID: "p-1", Quantity: decimal.NewFromInt(10)}})

	var inv *domain.InsufficientInventoryError
	s.Require().ErrorAs(err, &inv)
	s.Require().Len(inv.Items, 1)
	s.Equal("p-1", inv.Items[0].ProductID)
	s.Require().ErrorIs(err, domain.ErrInsufficientInventory)
}

func (s *CollabTestSuite) TestReserveConflict() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, validateStockResponse{
			UnavailableItems: []domain.UnavailableItem{{ProductID: "p-2"}},
		})
	}

	err := NewInventoryClient(s.httpClient("inventory")).Reserve(s.T().Context(), "tenant-1", "order-1",
		[]StockItem{{ProductID: "p-2", Quantity: decimal.NewFromInt(1)}})

	var inv *domain.InsufficientInventoryError
	s.Require().ErrorAs(err, &inv)
	s.Equal("p-2", inv.Items[0].ProductID)
	s.Equal(int32(1), s.calls.Load())
}

func (s *CollabTestSuite) TestReserve() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteInventoryReserve, r.URL.Path)
		var req reserveStockRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("order-1", req.OrderID)
		writeJSON(w, http.StatusOK, reserveStockResponse{Success: true, ReservedItems: req.Items})
	}

	err := NewInventoryClient(s.httpClient("inventory")).Reserve(s.T().Context(), "tenant-1", "order-1",
		[]StockItem{{ProductID: "p-1", Quantity: decimal.NewFromInt(1)}})
	s.Require().NoError(err)
}

func (s *CollabTestSuite) TestReserveUnsuccessfulBody() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":false,"reservedItems":[]}`)
	}

	err := NewInventoryClient(s.httpClient("inventory")).Reserve(s.T().Context(), "tenant-1", "order-1",
		[]StockItem{{ProductID: "p-1", Quantity: decimal.NewFromInt(1)}})

	var inv *domain.InsufficientInventoryError
	s.Require().ErrorAs(err, &inv)
	s.Require().ErrorIs(err, domain.ErrInsufficientInventory)
	s.Equal(int32(1), s.calls.Load())
}

func (s *CollabTestSuite) TestShippingCalculate() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		var req shippingQuoteRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("Berlin", req.Address.City)
		writeJSON(w, http.StatusOK, map[string]any{"cost": "12.50", "carrier": "dhl"})
	}

	quote, err := NewShippingClient(s.httpClient("shipping")).Calculate(s.T().Context(), "tenant-1", "EUR",
		domain.ShippingAddress{City: "Berlin"}, []StockItem{{ProductID: "p-1", Quantity: decimal.NewFromInt(1)}})
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("12.5").Equal(quote.Cost))
	s.Equal("EUR", quote.Currency)
}

func (s *CollabTestSuite) TestBadRequestIsRejected() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}

	_, err := NewShippingClient(s.httpClient("shipping")).Calculate(s.T().Context(), "tenant-1", "EUR",
		domain.ShippingAddress{}, nil)
	s.Require().ErrorIs(err, domain.ErrDependencyRejected)
	s.Equal(int32(1), s.calls.Load())
}
