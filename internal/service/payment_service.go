package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/payments"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

type PaymentService struct {
	uow         uow.UOW
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
	gateway     PaymentGateway
	orders      OrderStatusUpdater
	now         func() time.Time
	log         *logrus.Entry
}

func NewPaymentService(
	u uow.UOW,
	gateway PaymentGateway,
	orders OrderStatusUpdater,
	l *logrus.Logger,
) (*PaymentService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PaymentService{
		uow:         u,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		orders:      orders,
		now:         time.Now,
		log:         l.WithFields(logrus.Fields{"component": "service", "module": "payments"}),
	}, nil
}

type ProcessPaymentArgs struct {
	TenantID string
	OrderID  string
	Provider string
	// Amount не задан -> оплачивается остаток.
	Amount decimal.NullDecimal
	Method string
	Token  string
}

// ProcessPayment проводит платеж по заказу.
//
// Алгоритм работы:
//  1. Под блокировкой заказа проверяет статусы и остаток к оплате, создает платеж PENDING.
//  2. Вызывает платежный шлюз вне транзакции.
//  3. При отказе помечает платеж FAILED и возвращает domain.ErrPaymentProcessingFailed.
//  4. При успехе обновляет платеж и пересчитывает статус оплаты заказа.
//  5. Если заказ в PENDING стал полностью оплачен, переводит его в CONFIRMED.
func (p *PaymentService) ProcessPayment(ctx context.Context, args ProcessPaymentArgs) (*domain.Payment, error) {
	if args.TenantID == "" || args.OrderID == "" {
		return nil, fmt.Errorf("tenant and order are required: %w", domain.ErrInvalidInput)
	}
	provider, _, err := p.gateway.Resolve(args.Provider)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	payment, err := p.createPending(ctx, args, provider)
	if err != nil {
		return nil, err
	}
	log := p.log.WithFields(logrus.Fields{"order_id": args.OrderID, "payment_id": payment.ID, "provider": provider})

	res, chargeErr := p.gateway.Charge(ctx, provider, payments.ChargeRequest{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		TenantID:  payment.TenantID,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		Method:    payment.Method,
		Token:     args.Token,
	})
	if chargeErr == nil && res.Status == payments.StatusFailed {
		chargeErr = errors.New(res.FailureReason)
		if res.FailureReason == "" {
			chargeErr = errors.New("declined by gateway")
		}
	}
	if chargeErr != nil {
		log.WithError(chargeErr).Warn("payment failed")
		// платеж не должен остаться в PENDING, даже если запрос клиента уже отменен.
		if failErr := p.markFailed(context.WithoutCancel(ctx), args.TenantID, payment.ID, res, chargeErr); failErr != nil {
			log.WithError(failErr).Error("recording payment failure")
			return nil, errors.Join(fmt.Errorf("%w: %w", domain.ErrPaymentProcessingFailed, chargeErr), failErr)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentProcessingFailed, chargeErr)
	}

	updated, becamePaid, err := p.recordCharge(context.WithoutCancel(ctx), args.TenantID, payment.ID, res)
	if err != nil {
		return nil, err
	}
	log.WithField("status", updated.Status).Info("payment processed")

	if becamePaid {
		if _, confirmErr := p.orders.UpdateStatus(ctx, args.TenantID, args.OrderID, domain.OrderStatusConfirmed,
			"order fully paid"); confirmErr != nil {
			log.WithError(confirmErr).Warn("confirming paid order failed")
		}
	}
	return updated, nil
}

func (p *PaymentService) createPending(
	ctx context.Context,
	args ProcessPaymentArgs,
	provider string,
) (*domain.Payment, error) {
	var payment *domain.Payment
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, paymentRepo, repoErr := paymentRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		order, err := orderRepo.FindByIDForUpdate(c, args.TenantID, args.OrderID)
		if err != nil {
			return orderLookupErr(args.OrderID, err)
		}
		switch {
		case order.Status == domain.OrderStatusCanceled:
			return domain.ErrOrderCanceled
		case order.PaymentStatus == domain.PaymentStatusPaid:
			return domain.ErrAlreadyPaid
		}

		agg, err := paymentRepo.Aggregate(c, order.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		// платежи ведутся в минимальных единицах валюты, так же как их списывает шлюз.
		due := payments.RoundToCurrency(order.GrandTotal, order.Currency)
		outstanding := due.Sub(agg.Paid).Sub(agg.Pending)

		amount := outstanding
		if args.Amount.Valid {
			amount = args.Amount.Decimal
			if !amount.IsPositive() {
				return fmt.Errorf("payment amount must be positive: %w", domain.ErrInvalidInput)
			}
			if !payments.FitsCurrency(amount, order.Currency) {
				return fmt.Errorf("payment amount %s is finer than %s minor unit: %w",
					amount, order.Currency, domain.ErrInvalidInput)
			}
			if amount.GreaterThan(due) {
				return fmt.Errorf("%s > grand total %s: %w", amount, due, domain.ErrAmountExceedsTotal)
			}
		}
		if !amount.IsPositive() || amount.GreaterThan(outstanding) {
			return fmt.Errorf("%s > outstanding %s: %w", amount, outstanding, domain.ErrAmountExceedsTotal)
		}

		payment, err = paymentRepo.Create(c, &domain.Payment{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			TenantID: order.TenantID,
			Provider: provider,
			Method:   args.Method,
			Status:   domain.TransactionStatusPending,
			Amount:   amount,
			Currency: order.Currency,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating payment for order `%s`: %w", args.OrderID, txErr)
	}
	return payment, nil
}

// markFailed помечает платеж FAILED. Статус оплаты заказа становится FAILED, только если по заказу
// еще ничего не оплачено.
func (p *PaymentService) markFailed(
	ctx context.Context,
	tenantID, paymentID string,
	res payments.ChargeResult,
	cause error,
) error {
	return p.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		orderRepo, paymentRepo, repoErr := paymentRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		payment, err := paymentRepo.UpdateResult(c, repoargs.UpdatePaymentResult{
			PaymentID:        paymentID,
			Status:           domain.TransactionStatusFailed,
			TransactionID:    res.TransactionID,
			PaymentReference: res.PaymentReference,
			Last4:            res.Last4,
			FailureReason:    cause.Error(),
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		order, err := orderRepo.FindByIDForUpdate(c, tenantID, payment.OrderID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		agg, err := paymentRepo.Aggregate(c, order.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if !agg.Paid.IsZero() || order.PaymentStatus == domain.PaymentStatusFailed {
			return nil
		}
		return orderRepo.UpdatePaymentStatus(c, repoargs.UpdateOrderPaymentStatus{ //nolint:wrapcheck
			TenantID:      tenantID,
			OrderID:       order.ID,
			PaymentStatus: domain.PaymentStatusFailed,
		})
	})
}

// recordCharge сохраняет результат шлюза и пересчитывает статус оплаты заказа.
// Второе значение true, если заказ в PENDING только что стал полностью оплаченным.
func (p *PaymentService) recordCharge(
	ctx context.Context,
	tenantID, paymentID string,
	res payments.ChargeResult,
) (*domain.Payment, bool, error) {
	var (
		updated    *domain.Payment
		becamePaid bool
	)
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, paymentRepo, repoErr := paymentRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		current, err := paymentRepo.FindByIDForUpdate(c, tenantID, paymentID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		order, err := orderRepo.FindByIDForUpdate(c, tenantID, current.OrderID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		status := domain.TransactionStatusPending
		if res.Status == payments.StatusSucceeded {
			status = domain.TransactionStatusSucceeded
		}
		if updated, err = paymentRepo.UpdateResult(c, repoargs.UpdatePaymentResult{
			PaymentID:        paymentID,
			Status:           status,
			TransactionID:    res.TransactionID,
			PaymentReference: res.PaymentReference,
			Last4:            res.Last4,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		agg, err := paymentRepo.Aggregate(c, order.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		next := aggregatePaymentStatus(order.PaymentStatus, agg.Paid,
			payments.RoundToCurrency(order.GrandTotal, order.Currency))
		if next == order.PaymentStatus {
			return nil
		}
		becamePaid = next == domain.PaymentStatusPaid && order.Status == domain.OrderStatusPending
		return orderRepo.UpdatePaymentStatus(c, repoargs.UpdateOrderPaymentStatus{ //nolint:wrapcheck
			TenantID:      tenantID,
			OrderID:       order.ID,
			PaymentStatus: next,
		})
	})
	if txErr != nil {
		return nil, false, fmt.Errorf("recording payment `%s`: %w", paymentID, txErr)
	}
	return updated, becamePaid, nil
}

type ProcessRefundArgs struct {
	TenantID  string
	OrderID   string
	PaymentID string
	// Amount не задан -> возвращается весь остаток платежа.
	Amount decimal.NullDecimal
	Reason string
}

// ProcessRefund возвращает деньги по успешному платежу полностью или частично.
func (p *PaymentService) ProcessRefund(ctx context.Context, args ProcessRefundArgs) (*domain.Payment, error) {
	payment, err := p.paymentRepo.FindByID(ctx, args.TenantID, args.PaymentID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %s: %w", args.PaymentID, domain.ErrPaymentNotFound)
		}
		return nil, err //nolint:wrapcheck
	}
	amount, err := refundAmount(payment, args)
	if err != nil {
		return nil, err
	}

	res, err := p.gateway.Refund(ctx, payment.Provider, payments.RefundRequest{
		PaymentID:        payment.ID,
		PaymentReference: payment.PaymentReference,
		Amount:           amount,
		Currency:         payment.Currency,
		Reason:           args.Reason,
		IdempotencyKey:   fmt.Sprintf("%s-refund-%s", payment.ID, payment.RefundedAmount.String()),
	})
	if err == nil && res.Status == payments.StatusFailed {
		err = errors.New("refund declined by gateway")
	}
	if err != nil {
		return nil, fmt.Errorf("refunding payment `%s`: %w: %w", payment.ID, domain.ErrPaymentProcessingFailed, err)
	}

	var updated *domain.Payment
	txErr := p.uow.Do(context.WithoutCancel(ctx), func(c context.Context, tx uow.TX) error {
		orderRepo, paymentRepo, repoErr := paymentRepos(tx)
		if repoErr != nil {
			return repoErr
		}
		order, lockErr := orderRepo.FindByIDForUpdate(c, args.TenantID, payment.OrderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		current, lockErr := paymentRepo.FindByIDForUpdate(c, args.TenantID, payment.ID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		refunded := current.RefundedAmount.Add(amount)
		status := domain.TransactionStatusSucceeded
		if refunded.GreaterThanOrEqual(current.Amount) {
			status = domain.TransactionStatusRefunded
		}
		var recErr error
		if updated, recErr = paymentRepo.RecordRefund(c, repoargs.RecordRefund{
			PaymentID:      current.ID,
			RefundedAmount: refunded,
			RefundedAt:     p.now(),
			Status:         status,
		}); recErr != nil {
			return recErr //nolint:wrapcheck
		}

		agg, aggErr := paymentRepo.Aggregate(c, order.ID)
		if aggErr != nil {
			return aggErr //nolint:wrapcheck
		}
		next := domain.PaymentStatusPartiallyRefunded
		if agg.Refunded.GreaterThanOrEqual(agg.Paid) {
			next = domain.PaymentStatusRefunded
		}
		return orderRepo.UpdatePaymentStatus(c, repoargs.UpdateOrderPaymentStatus{ //nolint:wrapcheck
			TenantID:      args.TenantID,
			OrderID:       order.ID,
			PaymentStatus: next,
		})
	})
	if txErr != nil {
		return nil, fmt.Errorf("recording refund of payment `%s`: %w", payment.ID, txErr)
	}
	p.log.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"refund_id":  res.RefundID,
		"amount":     amount.String(),
	}).Info("payment refunded")
	return updated, nil
}

// ListPayments возвращает платежи заказа.
func (p *PaymentService) ListPayments(ctx context.Context, tenantID, orderID string) ([]domain.Payment, error) {
	if _, err := p.orderRepo.FindByID(ctx, tenantID, orderID); err != nil {
		return nil, orderLookupErr(orderID, err)
	}
	list, err := p.paymentRepo.ListByOrder(ctx, tenantID, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

func refundAmount(payment *domain.Payment, args ProcessRefundArgs) (decimal.Decimal, error) {
	switch {
	case payment.OrderID != args.OrderID:
		return decimal.Zero, fmt.Errorf("payment %s does not belong to order %s: %w",
			payment.ID, args.OrderID, domain.ErrPaymentNotFound)
	case payment.Status != domain.TransactionStatusSucceeded:
		return decimal.Zero, fmt.Errorf("payment %s is %s: %w", payment.ID, payment.Status,
			domain.ErrPaymentNotRefundable)
	case payment.PaymentReference == "":
		return decimal.Zero, fmt.Errorf("payment %s: %w", payment.ID, domain.ErrMissingPaymentReference)
	}

	remaining := payment.Refundable()
	amount := remaining
	if args.Amount.Valid {
		amount = args.Amount.Decimal
	}
	switch {
	case !amount.IsPositive():
		return decimal.Zero, fmt.Errorf("refund amount must be positive: %w", domain.ErrInvalidInput)
	case !payments.FitsCurrency(amount, payment.Currency):
		return decimal.Zero, fmt.Errorf("refund amount %s is finer than %s minor unit: %w",
			amount, payment.Currency, domain.ErrInvalidInput)
	case amount.GreaterThan(remaining):
		return decimal.Zero, fmt.Errorf("%s > refundable %s: %w", amount, remaining, domain.ErrRefundExceedsPayment)
	}
	return amount, nil
}

// aggregatePaymentStatus статус оплаты по сумме успешных платежей. Если ничего не оплачено,
// текущий статус сохраняется.
func aggregatePaymentStatus(
	current domain.PaymentStatusType,
	paid, grandTotal decimal.Decimal,
) domain.PaymentStatusType {
	switch {
	case paid.GreaterThanOrEqual(grandTotal):
		return domain.PaymentStatusPaid
	case paid.IsPositive():
		return domain.PaymentStatusPartiallyPaid
	default:
		return current
	}
}

func paymentRepos(tx uow.TX) (OrderRepository, PaymentRepository, error) {
	orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	paymentRepo, err := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	return orderRepo, paymentRepo, nil
}
