package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	failures int
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("broker unavailable")
	}
	f.messages = append(f.messages, msgs...)
	return nil
}
func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewClassroomLog_ShippedToLevelTopic(t *testing.T) {
	w := &fakeWriter{}
	producer := newProducer(w, configs.KafkaTopics{}, zap.NewNop(), 10)
	producer.wg.Add(1)
	go producer.sendLogs(1)
	producer.NewClassroomLog(LogLevelWarn, "UseCase-BookSession", "trace-1", "Instructor not available")
	producer.Close()
	require.True(t, w.closed)
	require.Len(t, w.messages, 1)
	require.Equal(t, "classroom-warn-log-topic", w.messages[0].Topic)
	require.Equal(t, []byte("trace-1"), w.messages[0].Key)
	var shipped ClassroomLog
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &shipped))
	require.Equal(t, "UseCase-BookSession", shipped.Place)
	require.Equal(t, "Classroom-Service", shipped.Service)
}

func TestNewClassroomLog_RetriesFailedWrites(t *testing.T) {
	w := &fakeWriter{failures: 2}
	producer := newProducer(w, configs.KafkaTopics{}, zap.NewNop(), 10)
	producer.writeLog(1, ClassroomLog{Level: LogLevelError, TraceID: "trace-2", Message: "boom"})
	require.Len(t, w.messages, 1)
	require.Equal(t, "classroom-error-log-topic", w.messages[0].Topic)
}

func TestNewClassroomLog_DropsWhenFullOrClosed(t *testing.T) {
	w := &fakeWriter{}
	producer := newProducer(w, configs.KafkaTopics{}, zap.NewNop(), 1)
	producer.NewClassroomLog(LogLevelInfo, "place", "t1", "first")
	producer.NewClassroomLog(LogLevelInfo, "place", "t2", "dropped")
	require.Len(t, producer.logchan, 1)
	producer.Close()
	require.NotPanics(t, func() {
		producer.NewClassroomLog(LogLevelInfo, "place", "t3", "after close")
	})
	producer.Close()
}

func TestServiceLog_SentToEveryTopic(t *testing.T) {
	w := &fakeWriter{}
	producer := newProducer(w, configs.KafkaTopics{ErrorLog: "classroom-errors"}, zap.NewNop(), 1)
	producer.LogStart()
	require.Len(t, w.messages, 3)
	require.Equal(t, "classroom-info-log-topic", w.messages[0].Topic)
	require.Equal(t, "classroom-warn-log-topic", w.messages[1].Topic)
	require.Equal(t, "classroom-errors", w.messages[2].Topic)
	producer.LogClose()
	require.Len(t, w.messages, 6)
	require.JSONEq(t, `{"service_log":"`+logCloseService+`"}`, string(w.messages[5].Value))
}

func TestNewClassroomLog_ConfiguredTopics(t *testing.T) {
	config := configs.KafkaConfig{Topics: configs.KafkaTopics{InfoLog: "custom-info", WarnLog: "custom-warn", ErrorLog: "custom-error"}}
	for _, level := range []string{LogLevelInfo, LogLevelWarn, LogLevelError} {
		t.Run(level, func(t *testing.T) {
			w := &fakeWriter{}
			producer := newProducer(w, config.Topics, zap.NewNop(), 1)
			producer.writeLog(1, ClassroomLog{Level: level, TraceID: "trace-3", Message: "booked"})
			require.Len(t, w.messages, 1)
			require.Equal(t, TopicForLevel(config, level), w.messages[0].Topic)
			require.Equal(t, "custom-"+strings.ToLower(level), w.messages[0].Topic)
		})
	}
}
