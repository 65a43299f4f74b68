package repoargs

import (
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

// UpdateOrderStatus смена статуса с проверкой версии. Обновление не применяется, если версия
// строки отличается от ExpectedVersion.
type UpdateOrderStatus struct {
	TenantID        string
	OrderID         string
	Status          domain.OrderStatusType
	ExpectedVersion int64
}

type UpdateOrderPaymentStatus struct {
	TenantID      string
	OrderID       string
	PaymentStatus domain.PaymentStatusType
}
