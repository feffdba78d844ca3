package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	RabbitConsumerPlace = "RabbitConsumer-ReadEvent"
	sessionBindingKey   = "session.*"
	mailTimeout         = 30 * time.Second
)

type Mailer interface {
	SendSessionEmail(ctx context.Context, event *model.SessionEvent) error
}

type outcome int

const (
	ack outcome = iota
	drop
	requeue
)

type RabbitConsumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       amqp.Queue
	tag         string
	mailer      Mailer
	logproducer LogProducer
	logger      *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	wg          *sync.WaitGroup
}

func NewRabbitConsumer(config configs.RabbitMQConfig, mailer Mailer, logproducer LogProducer, logger *zap.Logger) (*RabbitConsumer, error) {
	conn, channel, err := dial(config)
	if err != nil {
		logger.Debug("Failed to start Rabbit-Consumer", zap.Error(err))
		return nil, err
	}
	queue, err := channel.QueueDeclare(
		config.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err == nil {
		err = channel.QueueBind(queue.Name, sessionBindingKey, config.Exchange, false, nil)
	}
	if err == nil {
		err = channel.Qos(10, 0, false)
	}
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Debug("Failed to declare Rabbit-Consumer's queue", zap.Error(err))
		return nil, err
	}
	msgs, err := channel.Consume(
		queue.Name,
		config.ConsumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Debug("Failed to consume messages", zap.Error(err))
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	rc := &RabbitConsumer{
		conn:        conn,
		channel:     channel,
		queue:       queue,
		tag:         config.ConsumerTag,
		mailer:      mailer,
		logproducer: logproducer,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		wg:          &sync.WaitGroup{},
	}
	rc.wg.Add(1)
	go rc.readEvent(msgs)
	logger.Debug("Successful connect to Rabbit-Consumer")
	return rc, nil
}

func (rc *RabbitConsumer) readEvent(msgs <-chan amqp.Delivery) {
	const place = RabbitConsumerPlace
	defer rc.wg.Done()
	for {
		select {
		case <-rc.ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				rc.logproducer.NewClassroomLog(kafka.LogLevelInfo, place, "", "Rabbit's channel closed, stopping worker")
				return
			}
			var err error
			switch rc.handleDelivery(msg.RoutingKey, msg.Body, msg.Redelivered) {
			case ack:
				err = msg.Ack(false)
			case drop:
				err = msg.Nack(false, false)
			case requeue:
				err = msg.Nack(false, true)
			}
			if err != nil {
				rc.logproducer.NewClassroomLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to acknowledge message: %v", err))
			}
		}
	}
}

// handleDelivery mails the participants of one event. A failed delivery is
// requeued once; a second failure drops it.
func (rc *RabbitConsumer) handleDelivery(routingKey string, body []byte, redelivered bool) outcome {
	const place = RabbitConsumerPlace
	var event model.SessionEvent
	err := json.Unmarshal(body, &event)
	if err != nil {
		rc.logproducer.NewClassroomLog(kafka.LogLevelError, place, "", fmt.Sprintf(erro.ErrorUnmarshal, err))
		return drop
	}
	if event.Session == nil || event.Type != routingKey {
		rc.logproducer.NewClassroomLog(kafka.LogLevelError, place, event.TraceId, fmt.Sprintf("Malformed session event with routing key: %s", routingKey))
		return drop
	}
	switch routingKey {
	case model.EventSessionBooked, model.EventSessionCancelled:
	default:
		rc.logproducer.NewClassroomLog(kafka.LogLevelWarn, place, event.TraceId, fmt.Sprintf("Unknown routing key: %s", routingKey))
		return drop
	}
	rc.logproducer.NewClassroomLog(kafka.LogLevelInfo, place, event.TraceId, fmt.Sprintf("Received %s event for session: %s", event.Type, event.Session.Id))
	ctx, cancel := context.WithTimeout(rc.ctx, mailTimeout)
	defer cancel()
	err = rc.mailer.SendSessionEmail(ctx, &event)
	if err != nil {
		rc.logproducer.NewClassroomLog(kafka.LogLevelError, place, event.TraceId, fmt.Sprintf(erro.ErrorSendEmail, err))
		if redelivered {
			return drop
		}
		return requeue
	}
	rc.logproducer.NewClassroomLog(kafka.LogLevelInfo, place, event.TraceId, fmt.Sprintf("Emails for session %s have been sent", event.Session.Id))
	return ack
}

func (rc *RabbitConsumer) Close() {
	rc.cancel()
	if rc.channel != nil {
		rc.channel.Cancel(rc.tag, false)
	}
	rc.wg.Wait()
	if rc.channel != nil {
		rc.channel.Close()
	}
	if rc.conn != nil {
		rc.conn.Close()
	}
	rc.logger.Debug("Successful close Rabbit-Consumer")
}
