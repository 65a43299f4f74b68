package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
)

// Publisher отправляет события в топик их типа. Если шина отключена, публикация только логируется.
type Publisher struct {
	client  *Client
	writer  messageWriter
	metrics *metrics.Metrics
	log     *logrus.Entry
}

func NewPublisher(client *Client, m *metrics.Metrics, l *logrus.Logger) *Publisher {
	p := &Publisher{
		client:  client,
		metrics: m,
		log:     l.WithField("component", "eventbus").WithField("module", "publisher"),
	}
	if client.Enabled() {
		p.writer = client.NewWriter()
	}
	return p
}

// Publish записывает событие. Ключ сообщения evt.Key, при его отсутствии - id события.
func (p *Publisher) Publish(ctx context.Context, evt events.Event) error {
	log := p.log.WithFields(logrus.Fields{"event_id": evt.ID, "type": evt.Type, "tenant": evt.TenantID})
	if p.writer == nil {
		log.Debug("event bus is disconnected, event dropped")
		p.metrics.EventsPublished.WithLabelValues(string(evt.Type), metrics.OutcomeSkipped).Inc()
		return nil
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", evt.ID, err)
	}
	key := evt.Key
	if key == "" {
		key = evt.ID
	}

	msg := kafka.Message{
		Topic: p.client.Topic(evt.Type),
		Key:   []byte(key),
		Value: data,
		Time:  evt.Timestamp,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(evt.ID)},
			{Key: headerTenant, Value: []byte(evt.TenantID)},
		},
	}
	if writeErr := p.writer.WriteMessages(ctx, msg); writeErr != nil {
		p.metrics.EventsPublished.WithLabelValues(string(evt.Type), metrics.OutcomeError).Inc()
		return fmt.Errorf("publish event %s: %w", evt.ID, writeErr)
	}
	p.metrics.EventsPublished.WithLabelValues(string(evt.Type), metrics.OutcomeSuccess).Inc()
	log.Debug("event published")
	return nil
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close() //nolint:wrapcheck
}
