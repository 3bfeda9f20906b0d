package notifications

import (
	"context"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// timetableEventPublisher pushes timetable change events onto the queue
// consumed by the external notification service. Email and in-app delivery
// happen entirely on the consumer side.
type timetableEventPublisher struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
}

func NewTimetableEventPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.TimetableEventPublisher, error) {
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

	return &timetableEventPublisher{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}, nil
}

func (p *timetableEventPublisher) Publish(ctx context.Context, event contracts.TimetableEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
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
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Debug("published timetable event",
		zap.String(constvars.LoggingEventKey, event.Name),
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.String(constvars.LoggingClassIDKey, event.ClassID),
	)
	return nil
}
