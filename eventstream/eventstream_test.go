package eventstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream(t *testing.T) {
	t.Run("With Subscription", func(t *testing.T) {
		stream := New()

		consumer := stream.AddSubscriber()
		require.NotNil(t, consumer)
		stream.Subscribe(consumer, "t1")
		stream.Subscribe(consumer, "t2")

		require.EqualValues(t, 1, stream.SubscribersCount("t1"))
		require.EqualValues(t, 1, stream.SubscribersCount("t2"))

		// removing the consumer detaches it from all topics
		stream.RemoveSubscriber(consumer)
		assert.Zero(t, stream.SubscribersCount("t1"))
		assert.Zero(t, stream.SubscribersCount("t2"))

		// a removed consumer can no longer subscribe
		stream.Subscribe(consumer, "t3")
		assert.Zero(t, stream.SubscribersCount("t3"))

		t.Cleanup(stream.Close)
	})

	t.Run("With Unsubscription", func(t *testing.T) {
		stream := New()

		consumer := stream.AddSubscriber()
		require.NotNil(t, consumer)
		stream.Subscribe(consumer, "t1")
		stream.Subscribe(consumer, "t2")

		stream.Unsubscribe(consumer, "t1")
		assert.Zero(t, stream.SubscribersCount("t1"))
		require.EqualValues(t, 1, stream.SubscribersCount("t2"))

		t.Cleanup(stream.Close)
	})

	t.Run("With Publication", func(t *testing.T) {
		stream := New()

		consumer := stream.AddSubscriber()
		require.NotNil(t, consumer)
		stream.Subscribe(consumer, "t1")
		stream.Subscribe(consumer, "t2")

		stream.Publish("t1", "hi")
		stream.Publish("t2", "hello")
		// nobody listens on t3, the message is dropped
		stream.Publish("t3", "lost")

		var messages []*Message
		for message := range consumer.Iterator() {
			messages = append(messages, message)
		}

		assert.Len(t, messages, 2)
		assert.Len(t, consumer.Topics(), 2)

		t.Cleanup(stream.Close)
	})

	t.Run("With Close", func(t *testing.T) {
		stream := New()

		consumer := stream.AddSubscriber()
		require.NotNil(t, consumer)
		stream.Subscribe(consumer, "t1")

		stream.Close()
		require.False(t, consumer.Active())

		// publishing after close reaches nobody
		stream.Publish("t1", "hi")
		assert.Zero(t, stream.SubscribersCount("t1"))
	})
}
