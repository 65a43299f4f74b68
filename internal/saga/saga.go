// Package saga выполняет упорядоченный список шагов с компенсацией в обратном порядке.
package saga

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/saga"

// Step шаг саги. Compensate может быть nil, если шаг нечего откатывать.
// BestEffort шаги не прерывают сагу: их ошибка логируется, компенсация не запускается.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
	BestEffort bool
}

// StepError ошибка обязательного шага.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("saga step %s: %s", e.Step, e.Err.Error())
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type Saga struct {
	name   string
	steps  []Step
	log    *logrus.Entry
	tracer trace.Tracer
}

func New(name string, l *logrus.Entry, steps ...Step) *Saga {
	return &Saga{
		name:   name,
		steps:  steps,
		log:    l.WithField("saga", name),
		tracer: otel.Tracer(tracerName),
	}
}

// Execute выполняет шаги по порядку. При ошибке обязательного шага выполненные шаги
// компенсируются в порядке LIFO, и возвращается *StepError с исходной ошибкой.
func (s *Saga) Execute(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "saga."+s.name)
	defer span.End()

	completed := make([]Step, 0, len(s.steps))
	for _, step := range s.steps {
		err := s.runStep(ctx, step)
		if err == nil {
			completed = append(completed, step)
			continue
		}
		if step.BestEffort {
			s.log.WithError(err).WithField("step", step.Name).Warn("best-effort step failed")
			continue
		}

		s.log.WithError(err).WithField("step", step.Name).Error("step failed, compensating")
		s.compensate(ctx, completed)
		span.RecordError(err)
		span.SetStatus(codes.Error, step.Name)
		return &StepError{Step: step.Name, Err: err}
	}
	return nil
}

func (s *Saga) runStep(ctx context.Context, step Step) error {
	ctx, span := s.tracer.Start(ctx, "saga.step."+step.Name,
		trace.WithAttributes(attribute.Bool("saga.best_effort", step.BestEffort)))
	defer span.End()

	s.log.WithField("step", step.Name).Debug("executing step")
	if err := step.Run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, completed []Step) {
	// контекст запроса может быть уже отменен, компенсацию все равно нужно довести до конца.
	ctx = context.WithoutCancel(ctx)
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil || step.BestEffort {
			continue
		}
		_, span := s.tracer.Start(ctx, "saga.compensate."+step.Name)
		if err := step.Compensate(ctx); err != nil {
			span.RecordError(err)
			s.log.WithError(err).WithField("step", step.Name).Error("CRITICAL: compensation failed")
		}
		span.End()
	}
}
