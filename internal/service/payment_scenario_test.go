package service

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/payments"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
)

// paymentLedger хранит заказ и его платежи между вызовами сервиса.
type paymentLedger struct {
	order         domain.Order
	payments      map[string]*domain.Payment
	charged       []decimal.Decimal
	confirmations int
}

func newPaymentLedger(grandTotal decimal.Decimal, currency string) *paymentLedger {
	return &paymentLedger{
		order: domain.Order{
			ID:            "order-1",
			TenantID:      testTenant,
			OrderNumber:   "ORD-20240315-ABCDEF",
			Status:        domain.OrderStatusPending,
			PaymentStatus: domain.PaymentStatusUnpaid,
			Currency:      currency,
			GrandTotal:    grandTotal,
			Version:       1,
		},
		payments: make(map[string]*domain.Payment),
	}
}

func (l *paymentLedger) aggregate() *repoargs.PaymentAggregation {
	agg := &repoargs.PaymentAggregation{}
	for _, p := range l.payments {
		switch p.Status {
		case domain.TransactionStatusSucceeded, domain.TransactionStatusRefunded:
			agg.Paid = agg.Paid.Add(p.Amount)
		case domain.TransactionStatusPending:
			agg.Pending = agg.Pending.Add(p.Amount)
		}
		agg.Refunded = agg.Refunded.Add(p.RefundedAmount)
	}
	return agg
}

func (l *paymentLedger) payment(id string) (*domain.Payment, error) {
	p, ok := l.payments[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

// useLedger направляет репозитории, шлюз и подтверждение заказа в ledger. Шлюз всегда успешен.
func (s *PaymentServiceTestSuite) useLedger(l *paymentLedger) {
	s.mockGateway.EXPECT().Resolve(gomock.Any()).Return(payments.ProviderManual, nil, nil).AnyTimes()
	s.mockGateway.EXPECT().Charge(gomock.Any(), payments.ProviderManual, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req payments.ChargeRequest) (payments.ChargeResult, error) {
			l.charged = append(l.charged, req.Amount)
			return payments.ChargeResult{
				PaymentID:        req.PaymentID,
				Status:           payments.StatusSucceeded,
				PaymentReference: "ref-" + req.PaymentID,
			}, nil
		}).AnyTimes()
	s.mockGateway.EXPECT().Refund(gomock.Any(), payments.ProviderManual, gomock.Any()).
		Return(payments.RefundResult{RefundID: "re-1", Status: payments.StatusSucceeded}, nil).AnyTimes()

	s.mockOrderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, l.order.ID).
		DoAndReturn(func(_ context.Context, _, _ string) (*domain.Order, error) {
			cp := l.order
			return &cp, nil
		}).AnyTimes()
	s.mockOrderRepo.EXPECT().UpdatePaymentStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateOrderPaymentStatus) error {
			l.order.PaymentStatus = args.PaymentStatus
			return nil
		}).AnyTimes()
	s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), testTenant, l.order.ID, domain.OrderStatusConfirmed, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, status domain.OrderStatusType, _ string) (*domain.Order, error) {
			l.confirmations++
			l.order.Status = status
			cp := l.order
			return &cp, nil
		}).AnyTimes()

	s.mockPaymentRepo.EXPECT().Aggregate(gomock.Any(), l.order.ID).
		DoAndReturn(func(_ context.Context, _ string) (*repoargs.PaymentAggregation, error) {
			return l.aggregate(), nil
		}).AnyTimes()
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			stored := *p
			l.payments[p.ID] = &stored
			return l.payment(p.ID)
		}).AnyTimes()
	s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), testTenant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id string) (*domain.Payment, error) {
			return l.payment(id)
		}).AnyTimes()
	s.mockPaymentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id string) (*domain.Payment, error) {
			return l.payment(id)
		}).AnyTimes()
	s.mockPaymentRepo.EXPECT().UpdateResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdatePaymentResult) (*domain.Payment, error) {
			p := l.payments[args.PaymentID]
			p.Status = args.Status
			p.TransactionID = args.TransactionID
			p.PaymentReference = args.PaymentReference
			p.FailureReason = args.FailureReason
			return l.payment(p.ID)
		}).AnyTimes()
	s.mockPaymentRepo.EXPECT().RecordRefund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.RecordRefund) (*domain.Payment, error) {
			p := l.payments[args.PaymentID]
			p.RefundedAmount = args.RefundedAmount
			p.Status = args.Status
			return l.payment(p.ID)
		}).AnyTimes()
}

func (s *PaymentServiceTestSuite) pay(amount string) (*domain.Payment, error) {
	args := ProcessPaymentArgs{TenantID: testTenant, OrderID: "order-1", Provider: payments.ProviderManual}
	if amount != "" {
		args.Amount = decimal.NewNullDecimal(decimal.RequireFromString(amount))
	}
	return s.paymentService.ProcessPayment(s.T().Context(), args)
}

func (s *PaymentServiceTestSuite) TestPaymentsAndRefundSequence() {
	l := newPaymentLedger(decimal.NewFromInt(1000), "EUR")
	s.useLedger(l)

	first, err := s.pay("600")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusSucceeded, first.Status)
	s.Equal(domain.PaymentStatusPartiallyPaid, l.order.PaymentStatus)
	s.Zero(l.confirmations)

	second, err := s.pay("")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(400).Equal(second.Amount), "amount %s", second.Amount)
	s.Equal(domain.PaymentStatusPaid, l.order.PaymentStatus)
	s.Equal(domain.OrderStatusConfirmed, l.order.Status)
	s.Equal(1, l.confirmations)

	_, err = s.pay("1")
	s.Require().ErrorIs(err, domain.ErrAlreadyPaid)

	refunded, err := s.paymentService.ProcessRefund(s.T().Context(), ProcessRefundArgs{
		TenantID:  testTenant,
		OrderID:   "order-1",
		PaymentID: second.ID,
		Amount:    decimal.NewNullDecimal(decimal.NewFromInt(400)),
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusRefunded, refunded.Status)
	s.Equal(domain.PaymentStatusPartiallyRefunded, l.order.PaymentStatus)
	s.Equal(1, l.confirmations)
}

func (s *PaymentServiceTestSuite) TestPaymentAmountInCurrencyMinorUnits() {
	l := newPaymentLedger(decimal.RequireFromString("2.1293"), "EUR")
	s.useLedger(l)

	_, err := s.pay("2.125")
	s.Require().ErrorIs(err, domain.ErrInvalidInput)
	s.Empty(l.payments)

	payment, err := s.pay("")
	s.Require().NoError(err)
	s.Equal("2.13", payment.Amount.StringFixed(2))
	s.Require().Len(l.charged, 1)
	s.True(payment.Amount.Equal(l.charged[0]))
	s.Equal(domain.PaymentStatusPaid, l.order.PaymentStatus)
	s.Equal(1, l.confirmations)

	minor, err := payments.ToMinorUnits(payment.Amount, "EUR")
	s.Require().NoError(err)
	s.Equal(int64(213), minor)
}

func (s *PaymentServiceTestSuite) TestZeroDecimalCurrencyPayment() {
	l := newPaymentLedger(decimal.RequireFromString("1500.4"), "JPY")
	s.useLedger(l)

	_, err := s.pay("10.5")
	s.Require().ErrorIs(err, domain.ErrInvalidInput)

	payment, err := s.pay("")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1500).Equal(payment.Amount), "amount %s", payment.Amount)
	s.Equal(domain.PaymentStatusPaid, l.order.PaymentStatus)
}
