package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LogConsumer reads the shipped logs of one level back from Kafka.
type LogConsumer struct {
	reader messageReader
	level  string
	logger *zap.Logger
}

func NewLogConsumer(config configs.KafkaConfig, level string, logger *zap.Logger) *LogConsumer {
	brokers := strings.Split(config.BootstrapServers, ",")
	topic := TopicForLevel(config, level)
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: config.GroupId,
	})
	logger.Debug("Successful connect to Kafka-Consumer", zap.String("topic", topic))
	return newConsumer(r, level, logger)
}

func newConsumer(r messageReader, level string, logger *zap.Logger) *LogConsumer {
	return &LogConsumer{reader: r, level: strings.ToUpper(level), logger: logger}
}

// Run hands every log to handle until ctx is done. Undecodable messages are
// committed and skipped.
func (lc *LogConsumer) Run(ctx context.Context, handle func(ClassroomLog)) error {
	for {
		msg, err := lc.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			lc.logger.Error("Failed to read log", zap.Error(err))
			return err
		}
		var newlog ClassroomLog
		if err := json.Unmarshal(msg.Value, &newlog); err != nil {
			lc.logger.Warn("Skipping undecodable log", zap.String("topic", msg.Topic), zap.Int64("offset", msg.Offset), zap.Error(err))
		} else {
			newlog.Level = lc.level
			handle(newlog)
		}
		if err := lc.reader.CommitMessages(ctx, msg); err != nil {
			lc.logger.Warn("Failed to commit log", zap.String("topic", msg.Topic), zap.Error(err))
		}
	}
}

func (lc *LogConsumer) Close() {
	if err := lc.reader.Close(); err != nil {
		lc.logger.Warn("Kafka-Consumer close error", zap.Error(err))
	}
	lc.logger.Debug("Successful close Kafka-Consumer")
}
