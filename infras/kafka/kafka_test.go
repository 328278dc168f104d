package kafka_test

import (
	"context"
	"testing"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "b-1",
		Value: map[string]any{"type": "booking.created", "status": "CONFIRMED"},
	}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("b-1"), out.Key)
	assert.JSONEq(t, `{"type":"booking.created","status":"CONFIRMED"}`, string(out.Value))
}

func TestMessage_ToKafkaMessageUnsupported(t *testing.T) {
	msg := kafka.Message{Key: "b-1", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestSendMessages_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false
	cfg.Kafka.Brokers = []string{"127.0.0.1:1"}

	client := kafka.New(cfg, mocks.NewOtel())

	err := client.SendMessages(context.Background(), "booking-events", kafka.Message{Key: "b-1", Value: "x"})
	assert.NoError(t, err)
}
