package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const paymentColumns = `id, created_at, updated_at, order_id, tenant_id, provider, method, status, amount, currency,
	transaction_id, payment_reference, last4, refunded_amount, refunded_at, failure_reason`

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

func (p *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO payments (id, order_id, tenant_id, provider, method, status, amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+paymentColumns,
		payment.ID, payment.OrderID, payment.TenantID, payment.Provider, payment.Method, payment.Status,
		payment.Amount, payment.Currency,
	)
	created, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment for order `%s`", payment.OrderID)
	}
	return created, nil
}

func (p *PaymentRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment `%s`", id)
	}
	return payment, nil
}

func (p *PaymentRepository) FindByIDForUpdate(ctx context.Context, tenantID, id string) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, tenantID, id)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "locking payment `%s`", id)
	}
	return payment, nil
}

// ListByOrder возвращает платежи заказа в порядке создания.
func (p *PaymentRepository) ListByOrder(ctx context.Context, tenantID, orderID string) ([]domain.Payment, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 AND order_id = $2 ORDER BY created_at, id`,
		tenantID, orderID)
	if err != nil {
		return nil, convertErr(err, "listing payments of order `%s`", orderID)
	}
	payments, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Payment, error) {
		payment, scanErr := scanPayment(r)
		if scanErr != nil {
			return domain.Payment{}, scanErr
		}
		return *payment, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning payments of order `%s`", orderID)
	}
	return payments, nil
}

// Aggregate считает суммы платежей заказа по статусам.
func (p *PaymentRepository) Aggregate(ctx context.Context, orderID string) (*repoargs.PaymentAggregation, error) {
	var agg repoargs.PaymentAggregation
	err := p.conn.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE status IN ('SUCCEEDED', 'REFUNDED')), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0),
			COALESCE(SUM(refunded_amount), 0)
		FROM payments WHERE order_id = $1`, orderID,
	).Scan(&agg.Paid, &agg.Pending, &agg.Refunded)
	if err != nil {
		return nil, convertErr(err, "aggregating payments of order `%s`", orderID)
	}
	return &agg, nil
}

func (p *PaymentRepository) UpdateResult(
	ctx context.Context,
	args repoargs.UpdatePaymentResult,
) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE payments SET status = $1, transaction_id = $2, payment_reference = $3, last4 = $4,
			failure_reason = $5, updated_at = now()
		WHERE id = $6
		RETURNING `+paymentColumns,
		args.Status, args.TransactionID, args.PaymentReference, args.Last4, args.FailureReason, args.PaymentID,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "updating payment `%s`", args.PaymentID)
	}
	return payment, nil
}

func (p *PaymentRepository) RecordRefund(ctx context.Context, args repoargs.RecordRefund) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE payments SET refunded_amount = $1, refunded_at = $2, status = $3, updated_at = now()
		WHERE id = $4
		RETURNING `+paymentColumns,
		args.RefundedAmount, args.RefundedAt, args.Status, args.PaymentID,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "recording refund for payment `%s`", args.PaymentID)
	}
	return payment, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.OrderID, &p.TenantID, &p.Provider, &p.Method, &p.Status,
		&p.Amount, &p.Currency, &p.TransactionID, &p.PaymentReference, &p.Last4, &p.RefundedAmount, &p.RefundedAt,
		&p.FailureReason)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}
