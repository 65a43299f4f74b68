// Package worker содержит фоновые процессы сервисов.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
)

const (
	defaultServiceTimeout         = 10 * time.Second
	defaultSweepInterval          = time.Minute
	defaultLimitPerIteration uint = 100
)

// ExpirySweeper периодически переводит просроченные отправленные предложения в EXPIRED.
type ExpirySweeper struct {
	svs               Expirer
	metrics           *metrics.Metrics
	l                 *logrus.Entry
	interval          time.Duration
	limitPerIteration uint
}

func NewExpirySweeper(svs Expirer, m *metrics.Metrics, l *logrus.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		svs:     svs,
		metrics: m,
		l: l.WithFields(logrus.Fields{
			"component": "worker",
			"module":    "expiry",
		}),
		interval:          defaultSweepInterval,
		limitPerIteration: defaultLimitPerIteration,
	}
}

// SetInterval устанавливает паузу между проходами.
func (e *ExpirySweeper) SetInterval(interval time.Duration) *ExpirySweeper {
	if interval > 0 {
		e.interval = interval
	}
	return e
}

// SetLimitPerIteration устанавливает кол-во предложений, обрабатываемых за один запрос.
func (e *ExpirySweeper) SetLimitPerIteration(limit uint) *ExpirySweeper {
	if limit > 0 {
		e.limitPerIteration = limit
	}
	return e
}

// Run выполняет проходы до отмены контекста. Первый проход запускается сразу.
func (e *ExpirySweeper) Run(ctx context.Context) {
	e.l.WithFields(logrus.Fields{
		"interval":          e.interval.String(),
		"limitPerIteration": e.limitPerIteration,
	}).Info("Starting")

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		if _, err := e.sweep(ctx); err != nil && ctx.Err() == nil {
			e.l.WithError(err).Error("sweep error")
		}
		select {
		case <-ctx.Done():
			e.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
		}
	}
}

// sweep повторяет запросы, пока выборка заполняется до лимита. Возвращает общее число
// переведенных предложений.
func (e *ExpirySweeper) sweep(ctx context.Context) (int, error) {
	var total int
	for ctx.Err() == nil {
		reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
		expired, err := e.svs.ExpireOverdue(reqCtx, e.limitPerIteration)
		cancel()

		total += expired
		e.metrics.OffersExpired.Add(float64(expired))
		if err != nil {
			return total, fmt.Errorf("sweep: %w", err)
		}
		if uint(expired) < e.limitPerIteration { //nolint:gosec
			break
		}
	}
	return total, nil
}
