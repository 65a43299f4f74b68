package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind категория ошибки, по которой транспортный слой выбирает код ответа.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindDependency Kind = "dependency"
	KindInternal   Kind = "internal"
)

// Error бизнес-ошибка с категорией. Сравнивается по указателю, поэтому годится для errors.Is.
type Error struct {
	kind Kind
	msg  string
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

var (
	ErrRecordNotFound = newError(KindNotFound, "record not found")
	ErrDuplicateKey   = newError(KindConflict, "duplicate key")
	ErrUnknown        = errors.New("unknown error")
	ErrInvalidInput   = newError(KindValidation, "invalid input")

	ErrOrderNotFound           = newError(KindNotFound, "order not found")
	ErrInvalidStatusTransition = newError(KindConflict, "invalid order status transition")
	ErrAlreadyCanceled         = newError(KindConflict, "order already canceled")
	ErrAlreadyDelivered        = newError(KindConflict, "order already delivered")
	ErrConcurrentModification  = newError(KindConflict, "order was modified concurrently")
	ErrOrderNumberExhausted    = errors.New("could not allocate unique order number")

	ErrOfferNotFound          = newError(KindNotFound, "offer not found")
	ErrOfferNotApproved       = newError(KindConflict, "offer is not approved")
	ErrOfferExpired           = newError(KindConflict, "offer has expired")
	ErrOfferFrozen            = newError(KindConflict, "offer can no longer be edited")
	ErrOfferHasNoItems        = newError(KindValidation, "offer has no line items")
	ErrInvalidOfferTransition = newError(KindConflict, "invalid offer status transition")
	ErrOfferAlreadyConsumed   = newError(KindConflict, "offer already converted to another order")
	ErrInvalidApprovalToken   = newError(KindNotFound, "approval token is invalid")
	ErrLineItemNotFound       = newError(KindNotFound, "line item not found")

	ErrOrderCanceled           = newError(KindConflict, "order is canceled")
	ErrAlreadyPaid             = newError(KindConflict, "order is already paid")
	ErrAmountExceedsTotal      = newError(KindValidation, "amount exceeds outstanding order total")
	ErrPaymentNotFound         = newError(KindNotFound, "payment not found")
	ErrPaymentNotRefundable    = newError(KindConflict, "payment is not refundable")
	ErrMissingPaymentReference = newError(KindConflict, "payment has no gateway reference")
	ErrRefundExceedsPayment    = newError(KindValidation, "refund exceeds refundable amount")
	ErrPaymentProcessingFailed = newError(KindDependency, "payment processing failed")
	ErrUnknownPaymentProvider  = newError(KindValidation, "unknown payment provider")

	ErrDependencyUnavailable = newError(KindDependency, "dependency unavailable")
	ErrDependencyRejected    = newError(KindValidation, "dependency rejected request")
	ErrInsufficientInventory = newError(KindConflict, "insufficient inventory")
)

type UnavailableItem struct {
	ProductID string `json:"productId"`
	SKU       string `json:"sku,omitempty"`
	Requested string `json:"requested,omitempty"`
	Available string `json:"available,omitempty"`
}

// InsufficientInventoryError несет позиции, которых не хватает на складе.
type InsufficientInventoryError struct {
	Items []UnavailableItem
}

func NewInsufficientInventoryError(items []UnavailableItem) error {
	return &InsufficientInventoryError{Items: items}
}

func (e *InsufficientInventoryError) Error() string {
	ids := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		if it.SKU != "" {
			ids = append(ids, it.SKU)
			continue
		}
		ids = append(ids, it.ProductID)
	}
	return fmt.Sprintf("insufficient inventory for items [%s]", strings.Join(ids, ", "))
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

// KindOf возвращает категорию первой бизнес-ошибки в цепочке. Все неизвестные ошибки считаются внутренними.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var inv *InsufficientInventoryError
	if errors.As(err, &inv) {
		return KindConflict
	}
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}
