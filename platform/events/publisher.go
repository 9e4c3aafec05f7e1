package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/models"
	"github.com/dhima/employee-directory/pkg/clock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventTypeEmployeeAdded is emitted after an employee row is committed.
const EventTypeEmployeeAdded = "employee.added"

// EmployeeEvent is the message body published for directory changes.
type EmployeeEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	EmpID      string    `json:"emp_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEmployeeAdded builds an employee.added event stamped with c.
func NewEmployeeAdded(emp models.Employee, c clock.Clock) EmployeeEvent {
	return EmployeeEvent{
		EventID:    uuid.New().String(),
		Type:       EventTypeEmployeeAdded,
		EmpID:      emp.EmpID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		OccurredAt: c.Now().UTC(),
	}
}

// Publisher emits employee events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event EmployeeEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic keyed by emp_id.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger logging.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger logging.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, topic, logger)
}

func newKafkaPublisher(writer messageWriter, topic string, logger logging.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		logger: logger.With(zap.String("component", "kafka_publisher"), zap.String("topic", topic)),
	}
}

// Publish serializes and writes one event.
func (p *KafkaPublisher) Publish(ctx context.Context, event EmployeeEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EmpID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to %s: %w", p.topic, err)
	}

	p.logger.Debug("event published",
		zap.String("event_id", event.EventID),
		zap.String("emp_id", event.EmpID),
	)
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events; used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, EmployeeEvent) error { return nil }
func (NoopPublisher) Close() error                                 { return nil }

// New picks a Kafka publisher when brokers are configured, otherwise a no-op.
func New(brokers []string, topic string, logger logging.Logger) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic, logger)
}
