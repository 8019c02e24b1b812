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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduleOnce(t *testing.T) {
	t.Run("With a delayed message the delivery is no earlier than the delay", func(t *testing.T) {
		system := newTestSystem(t)

		sink := make(chan any, 16)
		id, err := system.Spawn(forwarder(sink))
		require.NoError(t, err)

		delay := 200 * time.Millisecond
		sentAt := time.Now()
		_, err = system.ScheduleOnce(delay, "wake up", id)
		require.NoError(t, err)

		require.Equal(t, "wake up", expectMsg(t, sink))
		require.GreaterOrEqual(t, time.Since(sentAt), delay)
		// at most once
		expectNoMsg(t, sink)
	})

	t.Run("With cancel before the delay the message never fires", func(t *testing.T) {
		system := newTestSystem(t)

		sink := make(chan any, 16)
		id, err := system.Spawn(forwarder(sink))
		require.NoError(t, err)

		ref, err := system.ScheduleOnce(time.Second, "never", id)
		require.NoError(t, err)
		require.True(t, system.Cancel(ref))

		expectNoMsg(t, sink)
		// cancelling twice is a no-op
		require.False(t, system.Cancel(ref))
	})

	t.Run("With a terminated target the delivery is dead-lettered", func(t *testing.T) {
		system := newTestSystem(t)

		id, err := system.Spawn(blocked)
		require.NoError(t, err)

		subscriber, err := system.Subscribe()
		require.NoError(t, err)
		t.Cleanup(func() { system.Unsubscribe(subscriber) })

		_, err = system.ScheduleOnce(100*time.Millisecond, "too late", id)
		require.NoError(t, err)

		require.NoError(t, system.Terminate(id, ReasonNormal))
		eventuallyDead(t, system, id)

		require.Eventually(t, func() bool {
			for message := range subscriber.Iterator() {
				deadletter, ok := message.Payload().(*Deadletter)
				if ok && deadletter.Receiver() == id && deadletter.Message() == "too late" {
					return true
				}
			}
			return false
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("With a stopped system the call is rejected", func(t *testing.T) {
		system, err := NewSystem("testSys")
		require.NoError(t, err)

		_, err = system.ScheduleOnce(time.Second, "x", ID("y"))
		require.ErrorIs(t, err, ErrSystemNotStarted)
		require.False(t, system.Cancel(ScheduleRef("y")))
	})
}

// TestCountdownTimer builds a timeout out of a delayed self-message: the
// actor arms a countdown, keeps handling other traffic, and terminates
// itself when the countdown message arrives.
func TestCountdownTimer(t *testing.T) {
	system := newTestSystem(t)

	type timeout struct{}
	sink := make(chan any, 16)

	id, err := system.Spawn(func(ctx *Context) error {
		if _, err := ctx.ScheduleOnce(200*time.Millisecond, &timeout{}); err != nil {
			return err
		}
		for {
			msg, err := ctx.Receive()
			if err != nil {
				return nil
			}
			if _, expired := msg.(*timeout); expired {
				return nil
			}
			sink <- msg
		}
	})
	require.NoError(t, err)

	// regular traffic keeps flowing while the countdown is pending
	require.NoError(t, system.Tell(id, "tick"))
	require.Equal(t, "tick", expectMsg(t, sink))
	require.True(t, system.IsAlive(id))

	eventuallyDead(t, system, id)
	reason, ok := system.dispatcher.LastReason(id)
	require.True(t, ok)
	require.True(t, IsNormal(reason))
}
