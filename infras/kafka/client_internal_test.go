package kafka

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient() *kafkaClientImpl {
	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:         kafkaGo.TCP("127.0.0.1:1"),
			Transport:    &kafkaGo.Transport{DialTimeout: 100 * time.Millisecond},
			MaxAttempts:  1,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 200 * time.Millisecond,
		},
	}
}

func TestClose_WaitsForPendingSends(t *testing.T) {
	client := unreachableClient()

	var finished atomic.Bool

	client.SendMessagesAsync(context.Background(), "booking.created", func(err error) {
		assert.Error(t, err)

		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	}, Message{Key: "7", Value: map[string]int{"class_id": 7}})

	require.NoError(t, client.Close())
	assert.True(t, finished.Load(), "Close returned before the pending send reported")
}

func TestSendMessagesAsync_AfterClose(t *testing.T) {
	client := unreachableClient()
	require.NoError(t, client.Close())

	var got error

	client.SendMessagesAsync(context.Background(), "booking.created", func(err error) { got = err }, Message{Key: "1", Value: "x"})

	assert.ErrorIs(t, got, ErrClientClosed)
}
