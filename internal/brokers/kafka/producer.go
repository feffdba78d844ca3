package kafka

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

const (
	logStartService = "----------START CLASSROOM SERVICE----------"
	logCloseService = "----------CLOSE CLASSROOM SERVICE----------"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	writer      messageWriter
	logchan     chan ClassroomLog
	levelTopics map[string]string
	logger      *zap.Logger
	mu          sync.RWMutex
	closed      bool
	wg          *sync.WaitGroup
	context     context.Context
	cancel      context.CancelFunc
}

func NewKafkaProducer(config configs.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	brokers := strings.Split(config.BootstrapServers, ",")
	var acks kafka.RequiredAcks
	switch config.Acks {
	case "0":
		acks = kafka.RequireNone
	case "1":
		acks = kafka.RequireOne
	default:
		acks = kafka.RequireAll
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		WriteTimeout:           10 * time.Second,
		WriteBackoffMin:        time.Duration(config.RetryBackoffMs) * time.Millisecond,
		WriteBackoffMax:        5 * time.Second,
		BatchSize:              config.BatchSize,
		RequiredAcks:           acks,
		AllowAutoTopicCreation: true,
	}
	producer := newProducer(w, config.Topics, logger, 1000)
	for i := 1; i <= 3; i++ {
		producer.wg.Add(1)
		go producer.sendLogs(i)
	}
	logger.Debug("Successful connect to Kafka-Producer", zap.Strings("brokers", brokers))
	return producer
}

func newProducer(w messageWriter, topics configs.KafkaTopics, logger *zap.Logger, buffer int) *KafkaProducer {
	ctx, cancel := context.WithCancel(context.Background())
	levelTopics := make(map[string]string, len(logLevels))
	for _, level := range logLevels {
		levelTopics[level] = levelTopic(topics, level)
	}
	return &KafkaProducer{
		writer:      w,
		logchan:     make(chan ClassroomLog, buffer),
		levelTopics: levelTopics,
		logger:      logger,
		wg:          &sync.WaitGroup{},
		context:     ctx,
		cancel:      cancel,
	}
}

func (kf *KafkaProducer) Close() {
	kf.mu.Lock()
	if kf.closed {
		kf.mu.Unlock()
		return
	}
	kf.closed = true
	close(kf.logchan)
	kf.mu.Unlock()
	kf.wg.Wait()
	kf.cancel()
	if err := kf.writer.Close(); err != nil {
		kf.logger.Warn("Kafka-Producer close error", zap.Error(err))
	}
	kf.logger.Debug("Successful close Kafka-Producer")
}

var logLevels = []string{LogLevelInfo, LogLevelWarn, LogLevelError}

// TopicForLevel is the topic the producer writes logs of that level to.
func TopicForLevel(config configs.KafkaConfig, level string) string {
	return levelTopic(config.Topics, level)
}

func levelTopic(topics configs.KafkaTopics, level string) string {
	var topic string
	switch strings.ToUpper(level) {
	case LogLevelInfo:
		topic = topics.InfoLog
	case LogLevelWarn:
		topic = topics.WarnLog
	case LogLevelError:
		topic = topics.ErrorLog
	}
	if topic == "" {
		topic = "classroom-" + strings.ToLower(level) + "-log-topic"
	}
	return topic
}

func (kf *KafkaProducer) topicFor(level string) string {
	if topic, ok := kf.levelTopics[strings.ToUpper(level)]; ok {
		return topic
	}
	return levelTopic(configs.KafkaTopics{}, level)
}
