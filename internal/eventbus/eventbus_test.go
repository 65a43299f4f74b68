package eventbus

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
)

type fakeWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type EventBusTestSuite struct {
	suite.Suite
	logger  *logrus.Logger
	metrics *metrics.Metrics
	client  *Client
}

func TestEventBusSuite(t *testing.T) {
	suite.Run(t, new(EventBusTestSuite))
}

func (s *EventBusTestSuite) SetupTest() {
	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
	s.metrics = metrics.New("test")
	s.client = NewClient("broker-1:9092, broker-2:9092", "o2c.")
}

func (s *EventBusTestSuite) newEvent() events.Event {
	evt, err := events.New(events.TypeOrderConfirmed, "tenant-1", "orders", "order-1", events.OrderConfirmed{
		OrderID:     "order-1",
		OrderNumber: "ORD-20240101-AAAAAA",
		FromStatus:  "PENDING",
	})
	s.Require().NoError(err)
	return evt
}

func (s *EventBusTestSuite) newSubscriber(reader messageReader, requeue messageWriter) *Subscriber {
	return &Subscriber{
		typ:          events.TypeOrderConfirmed,
		newReader:    func() messageReader { return reader },
		requeue:      requeue,
		topic:        s.client.Topic(events.TypeOrderConfirmed),
		deadTopic:    s.client.DeadLetterTopic(events.TypeOrderConfirmed),
		metrics:      s.metrics,
		log:          logrus.NewEntry(s.logger),
		maxRequeues:  2,
		restartDelay: 0,
	}
}

func (s *EventBusTestSuite) TestClientParsesBrokers() {
	s.Equal([]string{"broker-1:9092", "broker-2:9092"}, s.client.Brokers)
	s.True(s.client.Enabled())
	s.False(NewClient(" , ", "").Enabled())
	s.Equal("o2c.order.created", s.client.Topic(events.TypeOrderCreated))
}

func (s *EventBusTestSuite) TestPublish() {
	w := new(fakeWriter)
	p := &Publisher{client: s.client, writer: w, metrics: s.metrics, log: logrus.NewEntry(s.logger)}
	evt := s.newEvent()

	s.Require().NoError(p.Publish(s.T().Context(), evt))
	s.Require().Len(w.msgs, 1)
	s.Equal("o2c.order.confirmed", w.msgs[0].Topic)
	s.Equal("order-1", string(w.msgs[0].Key))

	parsed, err := events.Parse(w.msgs[0].Value)
	s.Require().NoError(err)
	s.Equal(evt.ID, parsed.ID)
	s.InDelta(1, testutil.ToFloat64(s.metrics.EventsPublished.WithLabelValues("order.confirmed", "success")), 0)
}

func (s *EventBusTestSuite) TestPublishWriteError() {
	w := &fakeWriter{err: errors.New("broker down")}
	p := &Publisher{client: s.client, writer: w, metrics: s.metrics, log: logrus.NewEntry(s.logger)}
	s.Require().Error(p.Publish(s.T().Context(), s.newEvent()))
}

func (s *EventBusTestSuite) TestPublishDisconnected() {
	p := NewPublisher(NewClient("", ""), s.metrics, s.logger)
	s.Require().NoError(p.Publish(s.T().Context(), s.newEvent()))
	s.InDelta(1, testutil.ToFloat64(s.metrics.EventsPublished.WithLabelValues("order.confirmed", "skipped")), 0)
	s.Require().NoError(p.Close())
}

func (s *EventBusTestSuite) message(evt events.Event) kafka.Message {
	w := new(fakeWriter)
	p := &Publisher{client: s.client, writer: w, metrics: s.metrics, log: logrus.NewEntry(s.logger)}
	s.Require().NoError(p.Publish(s.T().Context(), evt))
	return w.msgs[0]
}

func (s *EventBusTestSuite) TestHandleSuccessCommits() {
	reader := new(fakeReader)
	sub := s.newSubscriber(reader, new(fakeWriter))
	evt := s.newEvent()

	var got events.Event
	err := sub.handleMessage(s.T().Context(), reader, s.message(evt), func(_ context.Context, e events.Event) error {
		got = e
		return nil
	})
	s.Require().NoError(err)
	s.Equal(evt.ID, got.ID)
	s.Len(reader.committed, 1)
}

func (s *EventBusTestSuite) TestHandleFailureRequeues() {
	reader := new(fakeReader)
	requeue := new(fakeWriter)
	sub := s.newSubscriber(reader, requeue)

	err := sub.handleMessage(s.T().Context(), reader, s.message(s.newEvent()), func(context.Context, events.Event) error {
		return errors.New("db down")
	})
	s.Require().NoError(err)
	s.Len(reader.committed, 1)
	s.Require().Len(requeue.msgs, 1)
	s.Equal(1, requeueCount(requeue.msgs[0]))
	s.Equal("o2c.order.confirmed", requeue.msgs[0].Topic)
}

func (s *EventBusTestSuite) TestHandleRequeueFailureLeavesUncommitted() {
	reader := new(fakeReader)
	sub := s.newSubscriber(reader, &fakeWriter{err: errors.New("broker down")})

	err := sub.handleMessage(s.T().Context(), reader, s.message(s.newEvent()), func(context.Context, events.Event) error {
		return errors.New("db down")
	})
	s.Require().Error(err)
	s.Empty(reader.committed)
}

func (s *EventBusTestSuite) TestHandleDeadLettersAfterMaxRequeues() {
	reader := new(fakeReader)
	requeue := new(fakeWriter)
	sub := s.newSubscriber(reader, requeue)

	msg := requeued(sub.topic, s.message(s.newEvent()), 2)
	err := sub.handleMessage(s.T().Context(), reader, msg, func(context.Context, events.Event) error {
		return errors.New("still failing")
	})
	s.Require().NoError(err)
	s.Len(reader.committed, 1)
	s.Require().Len(requeue.msgs, 1)
	s.Equal("o2c.order.confirmed.dead-letter", requeue.msgs[0].Topic)
	s.Equal(msg.Value, requeue.msgs[0].Value)
	s.Equal("still failing", headerValue(requeue.msgs[0], headerDeadCause))
	s.InDelta(1, testutil.ToFloat64(s.metrics.EventsConsumed.WithLabelValues("order.confirmed", "dead_lettered")), 0)
}

func (s *EventBusTestSuite) TestDeadLetterFailureLeavesUncommitted() {
	reader := new(fakeReader)
	sub := s.newSubscriber(reader, &fakeWriter{err: errors.New("broker down")})

	msg := requeued(sub.topic, s.message(s.newEvent()), 2)
	err := sub.handleMessage(s.T().Context(), reader, msg, func(context.Context, events.Event) error {
		return errors.New("still failing")
	})
	s.Require().Error(err)
	s.Empty(reader.committed)
}

func (s *EventBusTestSuite) TestUnlimitedRequeues() {
	reader := new(fakeReader)
	requeue := new(fakeWriter)
	sub := s.newSubscriber(reader, requeue).SetMaxRequeues(0)

	msg := requeued(sub.topic, s.message(s.newEvent()), 50)
	err := sub.handleMessage(s.T().Context(), reader, msg, func(context.Context, events.Event) error {
		return errors.New("still failing")
	})
	s.Require().NoError(err)
	s.Require().Len(requeue.msgs, 1)
	s.Equal("o2c.order.confirmed", requeue.msgs[0].Topic)
	s.Equal(51, requeueCount(requeue.msgs[0]))
}

func (s *EventBusTestSuite) TestMalformedMessageDeadLetteredWithoutHandler() {
	reader := new(fakeReader)
	requeue := new(fakeWriter)
	sub := s.newSubscriber(reader, requeue)

	called := false
	err := sub.handleMessage(s.T().Context(), reader, kafka.Message{Value: []byte("{not json")},
		func(context.Context, events.Event) error {
			called = true
			return nil
		})
	s.Require().NoError(err)
	s.False(called)
	s.Len(reader.committed, 1)
	s.Require().Len(requeue.msgs, 1)
	s.Equal("o2c.order.confirmed.dead-letter", requeue.msgs[0].Topic)
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (s *EventBusTestSuite) TestRunStopsOnCancel() {
	evt := s.newEvent()
	reader := &fakeReader{queue: []kafka.Message{s.message(evt)}}
	sub := s.newSubscriber(reader, new(fakeWriter))

	ctx, cancel := context.WithCancel(s.T().Context())
	handled := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- sub.Run(ctx, func(_ context.Context, e events.Event) error {
			handled <- e.ID
			return nil
		})
	}()

	s.Equal(evt.ID, <-handled)
	cancel()
	s.Require().NoError(<-done)
}
