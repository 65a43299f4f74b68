package payments

import (
	"context"

	"github.com/google/uuid"
)

const ProviderManual = "manual"

// ManualProvider принимает платежи, проведенные вне системы (перевод, наличные). Всегда успешен.
type ManualProvider struct{}

func NewManualProvider() *ManualProvider {
	return &ManualProvider{}
}

func (ManualProvider) Charge(_ context.Context, req ChargeRequest) (ChargeResult, error) {
	return ChargeResult{
		PaymentID:        req.PaymentID,
		Status:           StatusSucceeded,
		TransactionID:    "man_" + uuid.NewString(),
		PaymentReference: "man_" + req.PaymentID,
	}, nil
}

func (ManualProvider) Refund(_ context.Context, _ RefundRequest) (RefundResult, error) {
	return RefundResult{RefundID: "manref_" + uuid.NewString(), Status: StatusSucceeded}, nil
}
