// Package pricing считает суммы позиций и итоги предложений и заказов.
//
// Все промежуточные значения округляются до 4 знаков по правилу half-away-from-zero
// (decimal.Round), денежные суммы для платежного шлюза - до 2 знаков.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

const (
	scale      int32 = 4
	moneyScale int32 = 2
)

var hundred = decimal.NewFromInt(100)

// Line входные данные одной позиции.
type Line struct {
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
}

type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
}

// Validate проверяет допустимость позиции.
func (l Line) Validate() error {
	switch {
	case !l.Quantity.IsPositive():
		return fmt.Errorf("quantity must be positive, got %s: %w", l.Quantity, domain.ErrInvalidInput)
	case l.UnitPrice.IsNegative():
		return fmt.Errorf("unit price must not be negative, got %s: %w", l.UnitPrice, domain.ErrInvalidInput)
	case !isPercent(l.DiscountPercent):
		return fmt.Errorf("discount must be within [0,100], got %s: %w", l.DiscountPercent, domain.ErrInvalidInput)
	case !isPercent(l.TaxPercent):
		return fmt.Errorf("tax must be within [0,100], got %s: %w", l.TaxPercent, domain.ErrInvalidInput)
	}
	return nil
}

// LineSubtotal q × p до скидки.
func LineSubtotal(l Line) (decimal.Decimal, error) {
	if err := l.Validate(); err != nil {
		return decimal.Zero, err
	}
	return gross(l).Round(scale), nil
}

// DiscountAmount сумма скидки по позиции.
func DiscountAmount(l Line) (decimal.Decimal, error) {
	if err := l.Validate(); err != nil {
		return decimal.Zero, err
	}
	return discount(l).Round(scale), nil
}

// TaxAmount налог, начисленный на сумму после скидки.
func TaxAmount(l Line) (decimal.Decimal, error) {
	if err := l.Validate(); err != nil {
		return decimal.Zero, err
	}
	return tax(l).Round(scale), nil
}

// LineTotal q × p × (1 − d/100) × (1 + t/100).
func LineTotal(l Line) (decimal.Decimal, error) {
	if err := l.Validate(); err != nil {
		return decimal.Zero, err
	}
	return total(l).Round(scale), nil
}

// AggregateTotals суммирует уже округленные значения позиций. GrandTotal равен сумме LineTotal,
// а TaxTotal выводится так, чтобы выполнялось GrandTotal = Subtotal − DiscountTotal + TaxTotal.
func AggregateTotals(lines []Line) (Totals, error) {
	res := Totals{
		Subtotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		TaxTotal:      decimal.Zero,
		GrandTotal:    decimal.Zero,
	}
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return Totals{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		res.Subtotal = res.Subtotal.Add(gross(l).Round(scale))
		res.DiscountTotal = res.DiscountTotal.Add(discount(l).Round(scale))
		res.GrandTotal = res.GrandTotal.Add(total(l).Round(scale))
	}
	res.TaxTotal = res.GrandTotal.Sub(res.Subtotal).Add(res.DiscountTotal)
	return res, nil
}

// MoneyRound округляет сумму до двух знаков.
func MoneyRound(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}

func gross(l Line) decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

func discount(l Line) decimal.Decimal {
	return gross(l).Mul(l.DiscountPercent).Div(hundred)
}

func tax(l Line) decimal.Decimal {
	return gross(l).Sub(discount(l)).Mul(l.TaxPercent).Div(hundred)
}

func total(l Line) decimal.Decimal {
	return gross(l).Mul(hundred.Sub(l.DiscountPercent)).Mul(hundred.Add(l.TaxPercent)).Div(hundred).Div(hundred)
}

func isPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}
