// Package eventbus публикует и потребляет доменные события через Kafka.
//
// Каждый тип события живет в своем топике, ключ сообщения - id агрегата. Доставка at-least-once:
// смещение фиксируется только после успешной обработки.
package eventbus

import (
	"context"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
)

const (
	headerRequeues  = "x-requeue-count"
	headerDeadCause = "x-dead-letter-cause"
	headerEventID   = "x-event-id"
	headerTenant    = "x-tenant-id"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Client хранит список брокеров. Без брокеров шина считается отключенной.
type Client struct {
	Brokers     []string
	TopicPrefix string
}

func NewClient(brokersCSV, topicPrefix string) *Client {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers, TopicPrefix: topicPrefix}
}

func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// Topic возвращает имя топика для типа события.
func (c *Client) Topic(typ events.Type) string {
	return c.TopicPrefix + string(typ)
}

// DeadLetterTopic топик для событий, которые не удалось обработать.
func (c *Client) DeadLetterTopic(typ events.Type) string {
	return c.Topic(typ) + ".dead-letter"
}

// NewWriter создает writer без фиксированного топика, топик задается в каждом сообщении.
func (c *Client) NewWriter() *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func (c *Client) NewReader(typ events.Type, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.Brokers,
		Topic:    c.Topic(typ),
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, //nolint:mnd
	})
}
