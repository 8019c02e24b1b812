// MIT License
//
// Copyright (c) 2024-2026 Tether Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnboundedMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		require.True(t, mailbox.IsEmpty())

		for i := 0; i < 10; i++ {
			require.NoError(t, mailbox.Enqueue(i))
		}
		require.EqualValues(t, 10, mailbox.Len())

		for i := 0; i < 10; i++ {
			require.Equal(t, i, mailbox.Dequeue())
		}
		require.True(t, mailbox.IsEmpty())
		require.Nil(t, mailbox.Dequeue())
	})

	t.Run("With concurrent producers no message is lost", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()

		const producers = 8
		const perProducer = 100

		var wg sync.WaitGroup
		wg.Add(producers)
		for p := 0; p < producers; p++ {
			p := p
			go func() {
				defer wg.Done()
				for i := 0; i < perProducer; i++ {
					_ = mailbox.Enqueue(p*perProducer + i)
				}
			}()
		}
		wg.Wait()

		seen := make(map[int]bool, producers*perProducer)
		for {
			msg := mailbox.Dequeue()
			if msg == nil {
				break
			}
			seen[msg.(int)] = true
		}
		require.Len(t, seen, producers*perProducer)
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("With capacity reached the enqueue is rejected", func(t *testing.T) {
		mailbox := NewBoundedMailbox(2)
		require.NoError(t, mailbox.Enqueue("one"))
		require.NoError(t, mailbox.Enqueue("two"))
		require.ErrorIs(t, mailbox.Enqueue("three"), ErrMailboxFull)

		// draining frees capacity again
		require.Equal(t, "one", mailbox.Dequeue())
		require.NoError(t, mailbox.Enqueue("three"))
		require.Equal(t, "two", mailbox.Dequeue())
		require.Equal(t, "three", mailbox.Dequeue())
		require.True(t, mailbox.IsEmpty())
	})

	t.Run("With dispose the mailbox rejects further use", func(t *testing.T) {
		mailbox := NewBoundedMailbox(4)
		require.NoError(t, mailbox.Enqueue("one"))
		mailbox.Dispose()
		require.Error(t, mailbox.Enqueue("two"))
	})

	t.Run("With an actor the overflow is dead-lettered", func(t *testing.T) {
		system := newTestSystem(t)

		// the actor never receives, so the mailbox fills up
		quit := make(chan struct{})
		id, err := system.Spawn(func(*Context) error {
			<-quit
			return nil
		}, WithMailbox(NewBoundedMailbox(1)))
		require.NoError(t, err)
		t.Cleanup(func() { close(quit) })

		subscriber, err := system.Subscribe()
		require.NoError(t, err)
		t.Cleanup(func() { system.Unsubscribe(subscriber) })

		require.NoError(t, system.Tell(id, "kept"))
		require.NoError(t, system.Tell(id, "shed"))

		require.Eventually(t, func() bool {
			for message := range subscriber.Iterator() {
				deadletter, ok := message.Payload().(*Deadletter)
				if ok && deadletter.Receiver() == id && deadletter.Message() == "shed" {
					return true
				}
			}
			return false
		}, 2*time.Second, 10*time.Millisecond)
	})
}
