package kafka_test

import (
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-desk/pkg/kafka"
)

func TestEnqueuer_StateSnapshot(t *testing.T) {
	t.Parallel()
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	defer producer.Close()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var snap kafka.StateSnapshot
		if err := json.Unmarshal(val, &snap); err != nil {
			return err
		}
		require.Equal(t, int64(42), snap.Version)
		require.JSONEq(t, `{"books":[]}`, string(snap.State))
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	q := kafka.NewEnqueuer(producer)
	require.NoError(t, q.Enqueue(kafka.StateTopic, kafka.StateSnapshot{Version: 42, State: json.RawMessage(`{"books":[]}`)}))
	require.ErrorIs(t, q.Enqueue(kafka.StateTopic, kafka.StateSnapshot{Version: 43}), sarama.ErrOutOfBrokers)
}
