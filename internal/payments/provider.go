// Package payments нормализует платежные шлюзы к единому контракту и выбирает шлюз по имени.
package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/resilience"
)

// Status нормализованный статус операции шлюза.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

type ChargeRequest struct {
	PaymentID string
	OrderID   string
	TenantID  string
	Amount    decimal.Decimal
	Currency  string
	Method    string
	// Token одноразовый идентификатор платежного средства, выданный шлюзом клиенту.
	Token string
}

type ChargeResult struct {
	PaymentID        string
	Status           Status
	TransactionID    string
	PaymentReference string
	Last4            string
	FailureReason    string
}

type RefundRequest struct {
	PaymentID        string
	PaymentReference string
	Amount           decimal.Decimal
	Currency         string
	Reason           string
	IdempotencyKey   string
}

type RefundResult struct {
	RefundID string
	Status   Status
}

// Provider контракт платежного шлюза. Отказ по карте возвращается как ChargeResult со StatusFailed,
// ошибка означает, что исход неизвестен или шлюз недоступен.
type Provider interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	Refund(ctx context.Context, req RefundRequest) (RefundResult, error)
}

// Manager выбирает провайдера по имени и оборачивает вызовы повторами.
type Manager struct {
	providers       map[string]Provider
	defaultProvider string
	policy          resilience.Policy
	metrics         *metrics.Metrics
	log             *logrus.Entry
}

type ManagerOption func(*Manager)

func WithDefaultProvider(provider string) ManagerOption {
	return func(m *Manager) {
		m.defaultProvider = normalize(provider)
	}
}

func WithPolicy(p resilience.Policy) ManagerOption {
	return func(m *Manager) {
		m.policy = p
	}
}

func WithMetrics(mt *metrics.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = mt
	}
}

func NewManager(providers map[string]Provider, l *logrus.Logger, opts ...ManagerOption) (*Manager, error) {
	if len(providers) == 0 {
		return nil, errors.New("payments: at least one provider is required")
	}
	m := &Manager{
		providers: make(map[string]Provider, len(providers)),
		policy:    resilience.DefaultPolicy(),
		log:       l.WithFields(logrus.Fields{"component": "payments", "module": "manager"}),
	}
	for k, v := range providers {
		key := normalize(k)
		if key == "" || v == nil {
			return nil, fmt.Errorf("payments: invalid provider registration for key %q", k)
		}
		m.providers[key] = v
	}
	if len(m.providers) == 1 {
		for key := range m.providers {
			m.defaultProvider = key
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Resolve возвращает имя и провайдера. Пустое имя означает провайдера по умолчанию.
func (m *Manager) Resolve(name string) (string, Provider, error) {
	key := normalize(name)
	if key == "" {
		key = m.defaultProvider
	}
	if p, ok := m.providers[key]; ok {
		return key, p, nil
	}
	return "", nil, fmt.Errorf("%w: %q", domain.ErrUnknownPaymentProvider, name)
}

func (m *Manager) Charge(ctx context.Context, providerName string, req ChargeRequest) (ChargeResult, error) {
	key, provider, err := m.Resolve(providerName)
	if err != nil {
		return ChargeResult{}, err
	}
	started := time.Now()
	res, err := resilience.Do(ctx, m.policy, func(c context.Context) (ChargeResult, error) {
		return provider.Charge(c, req)
	})
	m.observe(key, "charge", started, err)
	if err != nil {
		return ChargeResult{}, m.wrap(key, "charge", err)
	}
	res.PaymentID = req.PaymentID
	return res, nil
}

func (m *Manager) Refund(ctx context.Context, providerName string, req RefundRequest) (RefundResult, error) {
	key, provider, err := m.Resolve(providerName)
	if err != nil {
		return RefundResult{}, err
	}
	started := time.Now()
	res, err := resilience.Do(ctx, m.policy, func(c context.Context) (RefundResult, error) {
		return provider.Refund(c, req)
	})
	m.observe(key, "refund", started, err)
	if err != nil {
		return RefundResult{}, m.wrap(key, "refund", err)
	}
	return res, nil
}

func (m *Manager) observe(provider, op string, started time.Time, err error) {
	if m.metrics != nil {
		m.metrics.ObserveCall("payment_"+provider, op, started, err)
	}
}

func (m *Manager) wrap(provider, op string, err error) error {
	var exhausted *resilience.ExhaustedError
	if errors.As(err, &exhausted) || errors.Is(err, resilience.ErrTimeout) {
		m.log.WithError(err).WithField("provider", provider).Warnf("payment gateway %s unavailable", op)
		return fmt.Errorf("%s %s: %w: %w", provider, op, domain.ErrDependencyUnavailable, err)
	}
	return fmt.Errorf("%s %s: %w", provider, op, err)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
