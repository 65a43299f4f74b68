package repoargs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

// PaymentAggregation суммы платежей заказа по статусам.
type PaymentAggregation struct {
	// Paid сумма всех успешно проведенных платежей, включая возвращенные.
	Paid     decimal.Decimal
	Pending  decimal.Decimal
	Refunded decimal.Decimal
}

type UpdatePaymentResult struct {
	PaymentID        string
	Status           domain.TransactionStatusType
	TransactionID    string
	PaymentReference string
	Last4            string
	FailureReason    string
}

type RecordRefund struct {
	PaymentID      string
	RefundedAmount decimal.Decimal
	RefundedAt     time.Time
	Status         domain.TransactionStatusType
}
