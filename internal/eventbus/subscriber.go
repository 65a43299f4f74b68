package eventbus

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
)

const (
	defaultMaxRequeues  = 5
	defaultRestartDelay = 2 * time.Second
)

// Handler обрабатывает одно событие. Ошибка приводит к повторной доставке.
type Handler func(ctx context.Context, evt events.Event) error

// Subscriber читает один топик в составе consumer group.
type Subscriber struct {
	typ       events.Type
	newReader func() messageReader
	requeue   messageWriter
	topic     string
	deadTopic string
	metrics   *metrics.Metrics
	log       *logrus.Entry

	maxRequeues  int
	restartDelay time.Duration
}

// NewSubscriber возвращает подписчика на события типа typ. Для отключенной шины подписчик
// ничего не читает.
func NewSubscriber(client *Client, typ events.Type, groupID string, m *metrics.Metrics, l *logrus.Logger) *Subscriber {
	s := &Subscriber{
		typ:          typ,
		topic:        client.Topic(typ),
		deadTopic:    client.DeadLetterTopic(typ),
		metrics:      m,
		log:          l.WithFields(logrus.Fields{"component": "eventbus", "module": "subscriber", "type": typ}),
		maxRequeues:  defaultMaxRequeues,
		restartDelay: defaultRestartDelay,
	}
	if client.Enabled() {
		s.newReader = func() messageReader { return client.NewReader(typ, groupID) }
		s.requeue = client.NewWriter()
	}
	return s
}

// SetMaxRequeues задает число повторных доставок, после которого событие уходит в dead-letter топик.
// n <= 0 снимает ограничение.
func (s *Subscriber) SetMaxRequeues(n int) *Subscriber {
	s.maxRequeues = n
	return s
}

// Run читает сообщения до отмены ctx. Если сообщение не удалось ни обработать, ни переотправить,
// reader пересоздается и чтение продолжается с последнего зафиксированного смещения.
func (s *Subscriber) Run(ctx context.Context, handler Handler) error {
	if s.newReader == nil {
		s.log.Info("event bus is disconnected, subscriber idle")
		<-ctx.Done()
		return nil
	}
	s.log.Info("subscriber started")

	for {
		reader := s.newReader()
		err := s.consume(ctx, reader, handler)
		if closeErr := reader.Close(); closeErr != nil {
			s.log.WithError(closeErr).Warn("close reader")
		}
		if ctx.Err() != nil {
			s.log.Info("subscriber stopped")
			return nil
		}
		s.log.WithError(err).Warnf("consumer interrupted, restarting in %s", s.restartDelay)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.restartDelay):
		}
	}
}

func (s *Subscriber) Close() error {
	if s.requeue == nil {
		return nil
	}
	return s.requeue.Close() //nolint:wrapcheck
}

func (s *Subscriber) consume(ctx context.Context, reader messageReader, handler Handler) error {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if handleErr := s.handleMessage(ctx, reader, msg, handler); handleErr != nil {
			return handleErr
		}
	}
}

// handleMessage возвращает ошибку только когда смещение нельзя зафиксировать.
func (s *Subscriber) handleMessage(ctx context.Context, reader messageReader, msg kafka.Message, handler Handler) error {
	log := s.log.WithFields(logrus.Fields{"partition": msg.Partition, "offset": msg.Offset})

	evt, parseErr := events.Parse(msg.Value)
	if parseErr != nil {
		// битое сообщение не станет валидным при повторе.
		log.WithError(parseErr).Error("malformed event")
		return s.deadLetter(ctx, reader, msg, parseErr)
	}
	log = log.WithFields(logrus.Fields{"event_id": evt.ID, "tenant": evt.TenantID})

	handlerErr := handler(ctx, evt)
	if handlerErr == nil {
		s.metrics.EventsConsumed.WithLabelValues(string(s.typ), metrics.OutcomeSuccess).Inc()
		return s.commit(ctx, reader, msg)
	}
	if ctx.Err() != nil {
		return ctx.Err() //nolint:wrapcheck
	}

	requeues := requeueCount(msg)
	if s.maxRequeues > 0 && requeues >= s.maxRequeues {
		log.WithError(handlerErr).Errorf("event failed after %d requeues", requeues)
		return s.deadLetter(ctx, reader, msg, handlerErr)
	}

	log.WithError(handlerErr).Warn("event handling failed, requeueing")
	if requeueErr := s.requeue.WriteMessages(ctx, requeued(s.topic, msg, requeues+1)); requeueErr != nil {
		log.WithError(requeueErr).Error("requeue failed, leaving offset uncommitted")
		return errors.Join(handlerErr, requeueErr)
	}
	s.metrics.EventsConsumed.WithLabelValues(string(s.typ), metrics.OutcomeRequeue).Inc()
	return s.commit(ctx, reader, msg)
}

// deadLetter переносит сообщение в dead-letter топик и фиксирует смещение. Если запись не удалась,
// смещение не фиксируется.
func (s *Subscriber) deadLetter(ctx context.Context, reader messageReader, msg kafka.Message, cause error) error {
	dead := requeued(s.deadTopic, msg, requeueCount(msg))
	dead.Headers = append(dead.Headers, kafka.Header{Key: headerDeadCause, Value: []byte(cause.Error())})
	if err := s.requeue.WriteMessages(ctx, dead); err != nil {
		s.log.WithError(err).Error("dead-letter write failed, leaving offset uncommitted")
		return errors.Join(cause, err)
	}
	s.metrics.EventsConsumed.WithLabelValues(string(s.typ), metrics.OutcomeDead).Inc()
	return s.commit(ctx, reader, msg)
}

func (s *Subscriber) commit(ctx context.Context, reader messageReader, msg kafka.Message) error {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

func requeueCount(msg kafka.Message) int {
	for _, h := range msg.Headers {
		if h.Key == headerRequeues {
			n, err := strconv.Atoi(string(h.Value))
			if err == nil {
				return n
			}
		}
	}
	return 0
}

func requeued(topic string, msg kafka.Message, count int) kafka.Message {
	headers := make([]kafka.Header, 0, len(msg.Headers)+1)
	for _, h := range msg.Headers {
		if h.Key != headerRequeues {
			headers = append(headers, h)
		}
	}
	headers = append(headers, kafka.Header{Key: headerRequeues, Value: []byte(strconv.Itoa(count))})
	return kafka.Message{
		Topic:   topic,
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}
}
