package domain

type OrderStatusType string

const (
	OrderStatusPending    OrderStatusType = "PENDING"
	OrderStatusConfirmed  OrderStatusType = "CONFIRMED"
	OrderStatusProcessing OrderStatusType = "PROCESSING"
	OrderStatusShipped    OrderStatusType = "SHIPPED"
	OrderStatusDelivered  OrderStatusType = "DELIVERED"
	OrderStatusCanceled   OrderStatusType = "CANCELED"
)

// IsTerminal сообщает, что из статуса нет переходов.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderStatusCanceled || s == OrderStatusDelivered
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// PaymentStatusType агрегированный статус оплаты заказа.
type PaymentStatusType string

const (
	PaymentStatusUnpaid            PaymentStatusType = "UNPAID"
	PaymentStatusPartiallyPaid     PaymentStatusType = "PARTIALLY_PAID"
	PaymentStatusPaid              PaymentStatusType = "PAID"
	PaymentStatusPartiallyRefunded PaymentStatusType = "PARTIALLY_REFUNDED"
	PaymentStatusRefunded          PaymentStatusType = "REFUNDED"
	PaymentStatusFailed            PaymentStatusType = "FAILED"
)

// TransactionStatusType статус отдельного платежа.
type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "PENDING"
	TransactionStatusSucceeded TransactionStatusType = "SUCCEEDED"
	TransactionStatusFailed    TransactionStatusType = "FAILED"
	TransactionStatusRefunded  TransactionStatusType = "REFUNDED"
)

type OfferStatusType string

const (
	OfferStatusDraft     OfferStatusType = "DRAFT"
	OfferStatusSent      OfferStatusType = "SENT"
	OfferStatusApproved  OfferStatusType = "APPROVED"
	OfferStatusRejected  OfferStatusType = "REJECTED"
	OfferStatusExpired   OfferStatusType = "EXPIRED"
	OfferStatusCancelled OfferStatusType = "CANCELLED"
)

func (s OfferStatusType) IsTerminal() bool {
	switch s {
	case OfferStatusApproved, OfferStatusRejected, OfferStatusExpired, OfferStatusCancelled:
		return true
	}
	return false
}

// IsEditable сообщает, можно ли менять позиции предложения.
func (s OfferStatusType) IsEditable() bool {
	return s == OfferStatusDraft || s == OfferStatusSent
}
