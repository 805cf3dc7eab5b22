package events

import (
	"context"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// resultEventPublisher pushes completed-result events onto the hospital audit
// queue. The queue is declared durable once at startup; publishes use
// persistent delivery.
type resultEventPublisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

func NewResultEventPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.ResultEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &resultEventPublisher{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (p *resultEventPublisher) PublishResultCompleted(ctx context.Context, event *models.ResultCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return err
	}

	p.log.Info("published result completed event",
		zap.String(constvars.LoggingOrderCodeKey, event.OrderCode),
		zap.String("event_id", event.EventID),
	)
	return nil
}
