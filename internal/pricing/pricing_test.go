package pricing

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

type PricingTestSuite struct {
	suite.Suite
}

func TestPricingSuite(t *testing.T) {
	suite.Run(t, new(PricingTestSuite))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *PricingTestSuite) TestLineTotal() {
	cases := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "discount and tax",
			line: Line{Quantity: d("10"), UnitPrice: d("100"), DiscountPercent: d("5"), TaxPercent: d("10")},
			want: "1045",
		}, {
			name: "no discount no tax",
			line: Line{Quantity: d("3"), UnitPrice: d("19.99"), DiscountPercent: d("0"), TaxPercent: d("0")},
			want: "59.97",
		}, {
			name: "rounding half away from zero",
			line: Line{Quantity: d("1"), UnitPrice: d("0.00005"), DiscountPercent: d("0"), TaxPercent: d("0")},
			want: "0.0001",
		}, {
			name: "full discount",
			line: Line{Quantity: d("2"), UnitPrice: d("50"), DiscountPercent: d("100"), TaxPercent: d("20")},
			want: "0",
		}, {
			name: "fractional quantity",
			line: Line{Quantity: d("1.5"), UnitPrice: d("3.3333"), DiscountPercent: d("10"), TaxPercent: d("21")},
			want: "5.4449",
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			got, err := LineTotal(c.line)
			s.Require().NoError(err)
			s.Truef(d(c.want).Equal(got), "want %s, got %s", c.want, got)
		})
	}
}

func (s *PricingTestSuite) TestLineTotalInvalidInput() {
	valid := Line{Quantity: d("1"), UnitPrice: d("1"), DiscountPercent: d("0"), TaxPercent: d("0")}

	cases := []struct {
		name   string
		mutate func(l *Line)
	}{
		{name: "zero quantity", mutate: func(l *Line) { l.Quantity = decimal.Zero }},
		{name: "negative quantity", mutate: func(l *Line) { l.Quantity = d("-1") }},
		{name: "negative price", mutate: func(l *Line) { l.UnitPrice = d("-0.01") }},
		{name: "discount above 100", mutate: func(l *Line) { l.DiscountPercent = d("100.01") }},
		{name: "negative discount", mutate: func(l *Line) { l.DiscountPercent = d("-1") }},
		{name: "tax above 100", mutate: func(l *Line) { l.TaxPercent = d("101") }},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			l := valid
			c.mutate(&l)
			_, err := LineTotal(l)
			s.Require().ErrorIs(err, domain.ErrInvalidInput)
			_, err = AggregateTotals([]Line{valid, l})
			s.Require().ErrorIs(err, domain.ErrInvalidInput)
		})
	}
}

func (s *PricingTestSuite) TestSubComputations() {
	l := Line{Quantity: d("10"), UnitPrice: d("100"), DiscountPercent: d("5"), TaxPercent: d("10")}

	sub, err := LineSubtotal(l)
	s.Require().NoError(err)
	s.True(d("1000").Equal(sub))

	disc, err := DiscountAmount(l)
	s.Require().NoError(err)
	s.True(d("50").Equal(disc))

	// налог считается от суммы после скидки.
	tax, err := TaxAmount(l)
	s.Require().NoError(err)
	s.True(d("95").Equal(tax))
}

func (s *PricingTestSuite) TestAggregateTotals() {
	lines := []Line{
		{Quantity: d("10"), UnitPrice: d("100"), DiscountPercent: d("5"), TaxPercent: d("10")},
		{Quantity: d("3"), UnitPrice: d("0.3333"), DiscountPercent: d("7.5"), TaxPercent: d("19")},
		{Quantity: d("7"), UnitPrice: d("12.345"), DiscountPercent: d("0"), TaxPercent: d("8.25")},
	}

	totals, err := AggregateTotals(lines)
	s.Require().NoError(err)

	sum := decimal.Zero
	for _, l := range lines {
		lt, ltErr := LineTotal(l)
		s.Require().NoError(ltErr)
		sum = sum.Add(lt)
	}
	s.Truef(sum.Equal(totals.GrandTotal), "grand %s != sum of lines %s", totals.GrandTotal, sum)
	s.True(totals.Subtotal.Sub(totals.DiscountTotal).Add(totals.TaxTotal).Equal(totals.GrandTotal))
}

func (s *PricingTestSuite) TestAggregateTotalsEmpty() {
	totals, err := AggregateTotals(nil)
	s.Require().NoError(err)
	s.True(totals.GrandTotal.IsZero())
	s.True(totals.TaxTotal.IsZero())
}

// TestMonotonic проверяет, что итог позиции не убывает при росте цены и количества.
func (s *PricingTestSuite) TestMonotonic() {
	faker := gofakeit.New(42)
	for range 200 {
		base := Line{
			Quantity:        decimal.NewFromFloat(faker.Float64Range(0.01, 100)).Round(3),
			UnitPrice:       decimal.NewFromFloat(faker.Float64Range(0, 1000)).Round(4),
			DiscountPercent: decimal.NewFromFloat(faker.Float64Range(0, 100)).Round(2),
			TaxPercent:      decimal.NewFromFloat(faker.Float64Range(0, 100)).Round(2),
		}
		if !base.Quantity.IsPositive() {
			continue
		}
		baseTotal, err := LineTotal(base)
		s.Require().NoError(err)

		higherPrice := base
		higherPrice.UnitPrice = base.UnitPrice.Add(decimal.NewFromFloat(faker.Float64Range(0, 50)).Round(4))
		hp, err := LineTotal(higherPrice)
		s.Require().NoError(err)
		s.True(hp.GreaterThanOrEqual(baseTotal))

		higherQty := base
		higherQty.Quantity = base.Quantity.Add(decimal.NewFromFloat(faker.Float64Range(0, 10)).Round(3))
		hq, err := LineTotal(higherQty)
		s.Require().NoError(err)
		s.True(hq.GreaterThanOrEqual(baseTotal))
	}
}

func (s *PricingTestSuite) TestMoneyRound() {
	s.True(d("10.13").Equal(MoneyRound(d("10.125"))))
	s.True(d("-10.13").Equal(MoneyRound(d("-10.125"))))
	s.True(d("1045").Equal(MoneyRound(d("1045.0000"))))
}
