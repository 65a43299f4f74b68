// Package resilience оборачивает исходящие вызовы повторными попытками с экспоненциальной задержкой
// и ограничением времени на каждую попытку.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hashicorp/go-multierror"
)

var ErrTimeout = errors.New("call timed out")

// Policy параметры повторов. Нулевые поля заменяются значениями DefaultPolicy.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	// Jitter доля случайного разброса задержки, 0.15 = ±15%.
	Jitter  float64
	Timeout time.Duration
	// Sleep ожидание между попытками. Подменяется в тестах.
	Sleep func(ctx context.Context, d time.Duration) error
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,                      //nolint:mnd
		BaseDelay:   100 * time.Millisecond, //nolint:mnd
		MaxDelay:    2 * time.Second,        //nolint:mnd
		Multiplier:  2,                      //nolint:mnd
		Jitter:      0.15,                   //nolint:mnd
		Timeout:     5 * time.Second,        //nolint:mnd
		Sleep:       sleepCtx,
	}
}

func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = def.Multiplier
	}
	if p.Jitter < 0 {
		p.Jitter = 0
	}
	if p.Timeout <= 0 {
		p.Timeout = def.Timeout
	}
	if p.Sleep == nil {
		p.Sleep = def.Sleep
	}
	return p
}

// Delay возвращает задержку перед попыткой с номером attempt+1 (attempt начинается с 1), без разброса.
func (p Policy) Delay(attempt int) time.Duration {
	p = p.withDefaults()
	delay := float64(p.BaseDelay)
	for i := 1; i < attempt; i++ {
		delay *= p.Multiplier
		if delay >= float64(p.MaxDelay) {
			return p.MaxDelay
		}
	}
	return time.Duration(delay)
}

// ExhaustedError возвращается, когда все попытки завершились ошибкой.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %s", e.Attempts, e.Err.Error())
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent помечает ошибку как не подлежащую повтору.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent сообщает, помечена ли ошибка через Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// Do вызывает fn до policy.MaxAttempts раз. Постоянные ошибки и отмена контекста возвращаются сразу,
// без обертки. Когда попытки исчерпаны, возвращается *ExhaustedError с накопленными ошибками всех попыток.
func Do[T any](ctx context.Context, policy Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	p := policy.withDefaults()
	var zero T
	var errs *multierror.Error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		res, err := WithTimeout(ctx, p.Timeout, fn)
		if err == nil {
			return res, nil
		}

		var pe *permanentError
		if errors.As(err, &pe) {
			return zero, pe.err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, errors.Join(ctxErr, err)
		}

		errs = multierror.Append(errs, fmt.Errorf("attempt %d: %w", attempt, err))
		if attempt == p.MaxAttempts {
			break
		}
		if sleepErr := p.Sleep(ctx, jitter(p.Delay(attempt), p.Jitter)); sleepErr != nil {
			return zero, sleepErr
		}
	}

	return zero, &ExhaustedError{Attempts: p.MaxAttempts, Err: errs.ErrorOrNil()}
}

// WithTimeout запускает fn и ждет либо ее результата, либо истечения d. По истечении d контекст вызова
// отменяется и возвращается ErrTimeout.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}
	var zero T

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resCh := make(chan result, 1)
	go func() {
		val, err := fn(callCtx)
		resCh <- result{val: val, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case r := <-resCh:
		return r.val, r.err
	case <-timer.C:
		return zero, fmt.Errorf("%w after %s", ErrTimeout, d)
	case <-ctx.Done():
		return zero, ctx.Err() //nolint:wrapcheck
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	case <-t.C:
		return nil
	}
}

// jitter рассыпает значение на случайный процент в пределах [1-percent, 1+percent].
func jitter(value time.Duration, percent float64) time.Duration {
	if percent <= 0 {
		return value
	}
	factor := 1 - percent + rand.Float64()*2*percent //nolint:gosec
	return time.Duration(float64(value) * factor)
}
