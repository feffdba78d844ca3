package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	RabbitProducerPlace = "RabbitProducer-Notify"
	publishAttempts     = 3
)

type LogProducer interface {
	NewClassroomLog(level, place, traceid, msg string)
}

type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitProducer struct {
	conn         *amqp.Connection
	channel      publisher
	closeChannel func() error
	exchange     string
	retrydelay   time.Duration
	logProducer  LogProducer
	logger       *zap.Logger
	context      context.Context
	cancel       context.CancelFunc
}

func dial(config configs.RabbitMQConfig) (*amqp.Connection, *amqp.Channel, error) {
	connString := fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		config.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare an exchange: %w", err)
	}
	return conn, channel, nil
}

func NewRabbitProducer(config configs.RabbitMQConfig, logproducer LogProducer, logger *zap.Logger) (*RabbitProducer, error) {
	conn, channel, err := dial(config)
	if err != nil {
		logger.Debug("Failed to start Rabbit-Producer", zap.Error(err))
		return nil, err
	}
	rp := newProducer(channel, config.Exchange, time.Second, logproducer, logger)
	rp.conn = conn
	rp.closeChannel = channel.Close
	logger.Debug("Successful connect to Rabbit-Producer")
	return rp, nil
}

func newProducer(channel publisher, exchange string, retrydelay time.Duration, logproducer LogProducer, logger *zap.Logger) *RabbitProducer {
	ctx, cancel := context.WithCancel(context.Background())
	return &RabbitProducer{
		channel:     channel,
		exchange:    exchange,
		retrydelay:  retrydelay,
		logProducer: logproducer,
		logger:      logger,
		context:     ctx,
		cancel:      cancel,
	}
}

// Notify publishes the event with its type as the routing key. Failures are logged only.
func (rp *RabbitProducer) Notify(ctx context.Context, event *model.SessionEvent) {
	const place = RabbitProducerPlace
	body, err := json.Marshal(event)
	if err != nil {
		metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "failed").Inc()
		rp.logProducer.NewClassroomLog(kafka.LogLevelError, place, event.TraceId, fmt.Sprintf(erro.ErrorMarshal, err))
		return
	}
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		err = rp.channel.Publish(
			rp.exchange,
			event.Type,
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    event.Session.Id.String(),
				Timestamp:    event.OccurredAt,
				Body:         body,
			},
		)
		if err == nil {
			metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "published").Inc()
			rp.logProducer.NewClassroomLog(kafka.LogLevelInfo, place, event.TraceId, fmt.Sprintf("Session event with routing key: %s was published on attempt %d", event.Type, attempt))
			return
		}
		rp.logProducer.NewClassroomLog(kafka.LogLevelWarn, place, event.TraceId, fmt.Sprintf("Attempt %d failed to publish session event: %v", attempt, err))
		if attempt == publishAttempts {
			break
		}
		select {
		case <-ctx.Done():
			metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "failed").Inc()
			rp.logProducer.NewClassroomLog(kafka.LogLevelError, place, event.TraceId, erro.ErrorContextCanceled)
			return
		case <-rp.context.Done():
			metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "failed").Inc()
			rp.logProducer.NewClassroomLog(kafka.LogLevelError, place, event.TraceId, "RabbitProducer's context was canceled")
			return
		case <-time.After(rp.retrydelay):
		}
	}
	metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "failed").Inc()
	rp.logProducer.NewClassroomLog(kafka.LogLevelError, place, event.TraceId, fmt.Sprintf(erro.ErrorPublish, err))
}

func (rp *RabbitProducer) Close() {
	rp.cancel()
	if rp.closeChannel != nil {
		rp.closeChannel()
	}
	if rp.conn != nil {
		rp.conn.Close()
	}
	rp.logger.Debug("Successful close Rabbit-Producer")
}
