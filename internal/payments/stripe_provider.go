package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/resilience"
)

const ProviderStripe = "stripe"

type stripePaymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeRefundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type StripeClients struct {
	Intents stripePaymentIntentAPI
	Refunds stripeRefundAPI
}

type StripeProviderConfig struct {
	APIKey    string
	AccountID string
	Backends  *stripe.Backends
	Clients   *StripeClients
	Logger    *logrus.Logger
}

// StripeProvider проводит платежи через PaymentIntents с немедленным подтверждением.
type StripeProvider struct {
	intents stripePaymentIntentAPI
	refunds stripeRefundAPI
	account string
	log     *logrus.Entry
}

func NewStripeProvider(cfg StripeProviderConfig) (*StripeProvider, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" && cfg.Clients == nil {
		return nil, errors.New("stripe: api key is required")
	}

	var clients StripeClients
	if cfg.Clients != nil {
		clients = *cfg.Clients
	} else {
		sc := client.New(apiKey, cfg.Backends)
		clients = StripeClients{Intents: sc.PaymentIntents, Refunds: sc.Refunds}
	}
	if clients.Intents == nil || clients.Refunds == nil {
		return nil, errors.New("stripe: incomplete client configuration")
	}

	l := cfg.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &StripeProvider{
		intents: clients.Intents,
		refunds: clients.Refunds,
		account: strings.TrimSpace(cfg.AccountID),
		log:     l.WithFields(logrus.Fields{"component": "payments", "module": "stripe"}),
	}, nil
}

// Charge создает и подтверждает PaymentIntent. Ключ идемпотентности - id платежа, поэтому повтор
// после таймаута не спишет деньги дважды.
func (p *StripeProvider) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	amount, err := ToMinorUnits(req.Amount, req.Currency)
	if err != nil {
		return ChargeResult{}, resilience.Permanent(err)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		Confirm:  stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Metadata: map[string]string{
			"payment_id": req.PaymentID,
			"order_id":   req.OrderID,
			"tenant_id":  req.TenantID,
		},
	}
	if req.Token != "" {
		params.PaymentMethod = stripe.String(req.Token)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.PaymentID)
	params.AddExpand("latest_charge")
	if p.account != "" {
		params.SetStripeAccount(p.account)
	}

	intent, err := p.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			p.log.WithField("payment_id", req.PaymentID).WithField("code", stripeErr.Code).Info("card declined")
			res := ChargeResult{PaymentID: req.PaymentID, Status: StatusFailed, FailureReason: stripeErr.Msg}
			if stripeErr.PaymentIntent != nil {
				res.PaymentReference = stripeErr.PaymentIntent.ID
			}
			return res, nil
		}
		return ChargeResult{}, classifyStripeErr(err, "create payment intent")
	}

	p.log.WithFields(logrus.Fields{"payment_id": req.PaymentID, "intent": intent.ID, "status": intent.Status}).
		Debug("payment intent confirmed")
	return chargeResult(req.PaymentID, intent), nil
}

func (p *StripeProvider) Refund(ctx context.Context, req RefundRequest) (RefundResult, error) {
	amount, err := ToMinorUnits(req.Amount, req.Currency)
	if err != nil {
		return RefundResult{}, resilience.Permanent(err)
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentReference),
		Amount:        stripe.Int64(amount),
	}
	if reason := mapStripeRefundReason(req.Reason); reason != "" {
		params.Reason = stripe.String(reason)
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	if p.account != "" {
		params.SetStripeAccount(p.account)
	}

	refund, err := p.refunds.New(params)
	if err != nil {
		return RefundResult{}, classifyStripeErr(err, "create refund")
	}

	status := StatusPending
	switch refund.Status {
	case stripe.RefundStatusSucceeded:
		status = StatusSucceeded
	case stripe.RefundStatusFailed, stripe.RefundStatusCanceled:
		status = StatusFailed
	}
	return RefundResult{RefundID: refund.ID, Status: status}, nil
}

func chargeResult(paymentID string, intent *stripe.PaymentIntent) ChargeResult {
	res := ChargeResult{
		PaymentID:        paymentID,
		PaymentReference: intent.ID,
		TransactionID:    intent.ID,
		Status:           StatusPending,
	}
	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		res.Status = StatusSucceeded
	case stripe.PaymentIntentStatusCanceled, stripe.PaymentIntentStatusRequiresPaymentMethod:
		res.Status = StatusFailed
		if intent.LastPaymentError != nil {
			res.FailureReason = intent.LastPaymentError.Msg
		}
	}
	if charge := intent.LatestCharge; charge != nil {
		if charge.ID != "" {
			res.TransactionID = charge.ID
		}
		if pmd := charge.PaymentMethodDetails; pmd != nil && pmd.Card != nil {
			res.Last4 = pmd.Card.Last4
		}
		if res.Status == StatusFailed && res.FailureReason == "" {
			res.FailureReason = charge.FailureMessage
		}
	}
	return res
}

// classifyStripeErr помечает отказы 4xx (кроме 429) как постоянные.
func classifyStripeErr(err error, op string) error {
	wrapped := fmt.Errorf("stripe: %s: %w", op, err)
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		code := stripeErr.HTTPStatusCode
		if code >= http.StatusBadRequest && code < http.StatusInternalServerError && code != http.StatusTooManyRequests {
			return resilience.Permanent(fmt.Errorf("%w: %w", domain.ErrDependencyRejected, wrapped))
		}
	}
	return wrapped
}

func mapStripeRefundReason(reason string) string {
	switch strings.ToLower(strings.TrimSpace(reason)) {
	case string(stripe.RefundReasonDuplicate):
		return string(stripe.RefundReasonDuplicate)
	case string(stripe.RefundReasonFraudulent):
		return string(stripe.RefundReasonFraudulent)
	case string(stripe.RefundReasonRequestedByCustomer):
		return string(stripe.RefundReasonRequestedByCustomer)
	default:
		return ""
	}
}

// zeroDecimalCurrencies валюты без дробных единиц.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {}, "KRW": {}, "MGA": {},
	"PYG": {}, "RWF": {}, "UGX": {}, "VND": {}, "VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// CurrencyScale число знаков минимальной единицы валюты.
func CurrencyScale(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(currency)]; ok {
		return 0
	}
	return 2 //nolint:mnd
}

// RoundToCurrency округляет сумму до минимальной единицы валюты.
func RoundToCurrency(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(CurrencyScale(currency))
}

// FitsCurrency сообщает, что сумма выражается целым числом минимальных единиц.
func FitsCurrency(amount decimal.Decimal, currency string) bool {
	return amount.Equal(RoundToCurrency(amount, currency))
}

// ToMinorUnits переводит сумму в минимальные единицы валюты.
func ToMinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got %s: %w", amount, domain.ErrInvalidInput)
	}
	scale := CurrencyScale(currency)
	return amount.Round(scale).Shift(scale).IntPart(), nil
}
