package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"cms_backend/internal/domain"
)

const ActionMagazineAssigned = "magazine_assigned"

// RabbitMQ publishes magazine assignment events to a durable direct exchange.
type RabbitMQ struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "publisher"),
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// AssignmentMessage is the event body consumed by downstream indexers.
type AssignmentMessage struct {
	Action        string    `json:"action"`
	Strategy      string    `json:"strategy"`
	ArticleID     int64     `json:"article_id"`
	ArticleTitle  string    `json:"article_title"`
	MagazineID    int64     `json:"magazine_id"`
	MagazineTitle string    `json:"magazine_title"`
	PublicationID int64     `json:"publication_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewAssignmentMessage(a domain.Assignment, at time.Time) AssignmentMessage {
	return AssignmentMessage{
		Action:        ActionMagazineAssigned,
		Strategy:      a.Strategy,
		ArticleID:     a.ArticleID,
		ArticleTitle:  a.ArticleTitle,
		MagazineID:    a.MagazineID,
		MagazineTitle: a.MagazineTitle,
		PublicationID: a.PublicationID,
		Timestamp:     at.UTC(),
	}
}

func (r *RabbitMQ) PublishAssignment(ctx context.Context, assignment domain.Assignment) error {
	now := time.Now()
	body, err := json.Marshal(NewAssignmentMessage(assignment, now))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published assignment",
		"article_id", assignment.ArticleID,
		"magazine_id", assignment.MagazineID,
		"strategy", assignment.Strategy,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
