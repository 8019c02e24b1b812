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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/obellion/tether/log"
)

// newTestSystem starts a system with a discarded logger and stops it when
// the test finishes.
func newTestSystem(t *testing.T) *System {
	t.Helper()
	system, err := NewSystem("testSys", WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NotNil(t, system)

	ctx := context.Background()
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() {
		_ = system.Stop(context.Background())
	})
	return system
}

// blocked is a Work that parks in Receive until the actor is terminated.
func blocked(ctx *Context) error {
	for {
		if _, err := ctx.Receive(); err != nil {
			return nil
		}
	}
}

// forwarder returns a Work that pushes every received message into the
// given channel until the actor is terminated.
func forwarder(sink chan<- any) Work {
	return func(ctx *Context) error {
		for {
			msg, err := ctx.Receive()
			if err != nil {
				return nil
			}
			sink <- msg
		}
	}
}

// expectMsg waits for a message on the sink.
func expectMsg(t *testing.T, sink <-chan any) any {
	t.Helper()
	select {
	case msg := <-sink:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a message")
		return nil
	}
}

// expectNoMsg asserts the sink stays silent for a short grace period.
func expectNoMsg(t *testing.T, sink <-chan any) {
	t.Helper()
	select {
	case msg := <-sink:
		t.Fatalf("unexpected message: %#v", msg)
	case <-time.After(500 * time.Millisecond):
	}
}

// eventuallyDead polls until the actor is no longer alive.
func eventuallyDead(t *testing.T, system *System, id ID) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !system.IsAlive(id)
	}, 2*time.Second, 10*time.Millisecond)
}

// stillAlive asserts the actor survives a short grace period.
func stillAlive(t *testing.T, system *System, id ID) {
	t.Helper()
	time.Sleep(300 * time.Millisecond)
	require.True(t, system.IsAlive(id))
}
