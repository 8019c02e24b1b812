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

// Package eventstream provides a lightweight topic-based pub/sub broker used
// by the runtime to surface lifecycle events and dead letters to interested
// consumers without coupling them to the runtime internals.
package eventstream

import "sync"

// Stream is the broker the runtime publishes its events to. Publishing is
// fire-and-forget: a message on a topic nobody subscribed to is dropped.
type Stream interface {
	// AddSubscriber registers a new consumer with no topic subscriptions.
	AddSubscriber() Subscriber
	// RemoveSubscriber detaches the consumer from every topic and retires it.
	RemoveSubscriber(sub Subscriber)
	// Subscribe attaches the consumer to a topic. Retired consumers cannot
	// subscribe again.
	Subscribe(sub Subscriber, topic string)
	// Unsubscribe detaches the consumer from a topic.
	Unsubscribe(sub Subscriber, topic string)
	// SubscribersCount returns the number of consumers attached to a topic.
	SubscribersCount(topic string) int
	// Publish delivers a message to every consumer attached to the topic.
	Publish(topic string, msg any)
	// Close retires every consumer and drops all subscriptions.
	Close()
}

// broker is the default Stream implementation. One read-write mutex guards
// both indexes; Publish snapshots the topic's consumers under the read lock
// and signals them outside it, so a slow consumer never holds up concurrent
// subscription changes.
type broker struct {
	mu sync.RWMutex

	// consumers by id, and per topic the consumers attached to it
	subscribers map[string]Subscriber
	topics      map[string]map[string]Subscriber
}

var _ Stream = (*broker)(nil)

// New creates an empty Stream.
func New() Stream {
	return &broker{
		subscribers: make(map[string]Subscriber),
		topics:      make(map[string]map[string]Subscriber),
	}
}

func (b *broker) AddSubscriber() Subscriber {
	sub := newSubscriber()
	b.mu.Lock()
	b.subscribers[sub.ID()] = sub
	b.mu.Unlock()
	return sub
}

func (b *broker) RemoveSubscriber(sub Subscriber) {
	b.mu.Lock()
	for _, topic := range sub.Topics() {
		sub.unsubscribe(topic)
		b.detach(sub, topic)
	}
	delete(b.subscribers, sub.ID())
	b.mu.Unlock()

	sub.Shutdown()
}

func (b *broker) Subscribe(sub Subscriber, topic string) {
	if !sub.Active() {
		return
	}
	sub.subscribe(topic)

	b.mu.Lock()
	attached, ok := b.topics[topic]
	if !ok {
		attached = make(map[string]Subscriber)
		b.topics[topic] = attached
	}
	attached[sub.ID()] = sub
	b.mu.Unlock()
}

func (b *broker) Unsubscribe(sub Subscriber, topic string) {
	sub.unsubscribe(topic)

	b.mu.Lock()
	b.detach(sub, topic)
	b.mu.Unlock()
}

func (b *broker) SubscribersCount(topic string) int {
	b.mu.RLock()
	count := len(b.topics[topic])
	b.mu.RUnlock()
	return count
}

func (b *broker) Publish(topic string, msg any) {
	b.mu.RLock()
	attached := b.topics[topic]
	if len(attached) == 0 {
		b.mu.RUnlock()
		return
	}
	snapshot := make([]Subscriber, 0, len(attached))
	for _, sub := range attached {
		snapshot = append(snapshot, sub)
	}
	b.mu.RUnlock()

	message := NewMessage(topic, msg)
	for _, sub := range snapshot {
		if sub.Active() {
			sub.signal(message)
		}
	}
}

func (b *broker) Close() {
	b.mu.Lock()
	for _, sub := range b.subscribers {
		if sub.Active() {
			sub.Shutdown()
		}
	}
	b.subscribers = make(map[string]Subscriber)
	b.topics = make(map[string]map[string]Subscriber)
	b.mu.Unlock()
}

// detach removes the consumer from a topic's index, pruning the topic when it
// empties. Callers must hold b.mu.
func (b *broker) detach(sub Subscriber, topic string) {
	attached, ok := b.topics[topic]
	if !ok {
		return
	}
	delete(attached, sub.ID())
	if len(attached) == 0 {
		delete(b.topics, topic)
	}
}
