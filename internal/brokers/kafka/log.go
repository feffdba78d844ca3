package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type ClassroomLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// NewClassroomLog mirrors the entry to the local logger and queues it for Kafka.
// It never blocks: a full buffer drops the entry.
func (kf *KafkaProducer) NewClassroomLog(level, place, traceid, msg string) {
	newlog := ClassroomLog{
		Level:     level,
		Service:   "Classroom-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	kf.mirror(newlog)
	kf.mu.RLock()
	defer kf.mu.RUnlock()
	if kf.closed {
		kf.logger.Warn("Producer closing, dropping log", zap.String("place", place), zap.String("trace_id", traceid))
		return
	}
	select {
	case kf.logchan <- newlog:
		metrics.ClassroomKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
	default:
		kf.logger.Warn("Log channel is full, dropping log", zap.String("place", place), zap.String("trace_id", traceid))
	}
}

func (kf *KafkaProducer) mirror(l ClassroomLog) {
	fields := []zap.Field{zap.String("place", l.Place), zap.String("trace_id", l.TraceID)}
	switch l.Level {
	case LogLevelError:
		kf.logger.Error(l.Message, fields...)
	case LogLevelWarn:
		kf.logger.Warn(l.Message, fields...)
	default:
		kf.logger.Info(l.Message, fields...)
	}
}

func (kf *KafkaProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for logg := range kf.logchan {
		metrics.ClassroomKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
		kf.writeLog(num, logg)
	}
	kf.logger.Debug("Log channel closed, stopping Kafka-worker", zap.Int("worker", num))
}

func (kf *KafkaProducer) writeLog(num int, logg ClassroomLog) {
	topic := kf.topicFor(logg.Level)
	data, err := json.Marshal(logg)
	if err != nil {
		kf.logger.Error("Failed to marshal log", zap.Int("worker", num), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
	defer cancel()
	for i := 0; i < 3; i++ {
		if ctx.Err() != nil {
			break
		}
		err = kf.writer.WriteMessages(ctx, kafka.Message{
			Topic: topic,
			Key:   []byte(logg.TraceID),
			Value: data,
		})
		if err == nil {
			metrics.ClassroomKafkaProducerMessagesSent.WithLabelValues(topic).Inc()
			return
		}
		kf.logger.Warn("Retry failed to send log", zap.Int("worker", num), zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(time.Duration(i+1) * 100 * time.Millisecond)
	}
	kf.logger.Error("Failed to send log after all retries", zap.Int("worker", num), zap.Error(err))
	metrics.ClassroomKafkaProducerErrorsTotal.WithLabelValues(topic).Inc()
	metrics.ClassroomErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
}

type serviceLog struct {
	Message string `json:"service_log"`
}

func (kf *KafkaProducer) LogStart() {
	kf.sendServiceLog(serviceLog{Message: logStartService})
}
func (kf *KafkaProducer) LogClose() {
	kf.sendServiceLog(serviceLog{Message: logCloseService})
}
func (kf *KafkaProducer) sendServiceLog(logg serviceLog) {
	data, err := json.Marshal(logg)
	if err != nil {
		kf.logger.Debug("Failed to marshal service log", zap.Error(err))
		return
	}
	for _, level := range logLevels {
		topic := kf.levelTopics[level]
		ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
		err = kf.writer.WriteMessages(ctx, kafka.Message{
			Topic: topic,
			Value: data,
		})
		cancel()
		if err != nil {
			kf.logger.Debug("Failed to send Service Log", zap.String("topic", topic), zap.Error(err))
		}
	}
}
