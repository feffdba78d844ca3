package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []int64
	err       error
	cancel    context.CancelFunc
	closed    bool
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.messages) == 0 {
		if f.err != nil {
			return kafka.Message{}, f.err
		}
		f.cancel()
		return kafka.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}
func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	for _, msg := range msgs {
		f.committed = append(f.committed, msg.Offset)
	}
	return nil
}
func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func TestLogConsumer_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &fakeReader{
		cancel: cancel,
		messages: []kafka.Message{
			{Offset: 1, Value: []byte(`{"service":"Classroom-Service","place":"UseCase-BookSession","trace_id":"trace-1","message":"Instructor not available"}`)},
			{Offset: 2, Value: []byte(`not json`)},
			{Offset: 3, Value: []byte(`{"place":"Handler-CancelSession","trace_id":"trace-2","message":"ok"}`)},
		},
	}
	consumer := newConsumer(r, "warn", zap.NewNop())
	var got []ClassroomLog
	err := consumer.Run(ctx, func(l ClassroomLog) { got = append(got, l) })
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, LogLevelWarn, got[0].Level)
	require.Equal(t, "trace-1", got[0].TraceID)
	require.Equal(t, "Handler-CancelSession", got[1].Place)
	require.Equal(t, []int64{1, 2, 3}, r.committed)
	consumer.Close()
	require.True(t, r.closed)
}

func TestLogConsumer_ReadError(t *testing.T) {
	r := &fakeReader{err: errors.New("broker unavailable")}
	consumer := newConsumer(r, LogLevelError, zap.NewNop())
	err := consumer.Run(context.Background(), func(ClassroomLog) {})
	require.EqualError(t, err, "broker unavailable")
}

func TestTopicForLevel(t *testing.T) {
	config := configs.KafkaConfig{Topics: configs.KafkaTopics{ErrorLog: "errors"}}
	require.Equal(t, "errors", TopicForLevel(config, "error"))
	require.Equal(t, "classroom-info-log-topic", TopicForLevel(config, "info"))
}
