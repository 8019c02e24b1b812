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

import "time"

// Exit is delivered to the mailbox of a trapping actor when one of its link
// partners terminates. Non-trapping actors never see this message; they are
// terminated instead when the reason is abnormal.
type Exit struct {
	// From is the id of the terminated link partner.
	From ID
	// Reason is the partner's termination reason.
	Reason Reason
}

// Down is delivered exactly once to the watcher's mailbox when a monitored
// actor terminates, for any reason including ReasonNormal. The monitor is
// retired after delivery.
type Down struct {
	// Ref is the reference returned by the Monitor call that created the watch.
	Ref MonitorRef
	// Actor is the id of the terminated actor.
	Actor ID
	// Reason is the termination reason.
	Reason Reason
}

// Event stream topics published by the runtime.
const (
	// TopicLifecycle carries ActorSpawned and ActorTerminated events.
	TopicLifecycle = "tether.lifecycle"
	// TopicDeadletter carries Deadletter events.
	TopicDeadletter = "tether.deadletter"
)

// ActorSpawned defines the actor spawned event
type ActorSpawned struct {
	id        ID
	name      string
	spawnedAt time.Time
}

// NewActorSpawned creates a new ActorSpawned event stamped with the current UTC time.
func NewActorSpawned(id ID, name string) *ActorSpawned {
	return &ActorSpawned{id: id, name: name, spawnedAt: time.Now().UTC()}
}

// ID returns the actor's id.
func (a *ActorSpawned) ID() ID { return a.id }

// Name returns the actor's name.
func (a *ActorSpawned) Name() string { return a.name }

// SpawnedAt returns the time the actor was spawned.
func (a *ActorSpawned) SpawnedAt() time.Time { return a.spawnedAt }

// ActorTerminated defines the actor terminated event
type ActorTerminated struct {
	id           ID
	name         string
	reason       Reason
	terminatedAt time.Time
}

// NewActorTerminated creates a new ActorTerminated event stamped with the current UTC time.
func NewActorTerminated(id ID, name string, reason Reason) *ActorTerminated {
	return &ActorTerminated{id: id, name: name, reason: reason, terminatedAt: time.Now().UTC()}
}

// ID returns the actor's id.
func (a *ActorTerminated) ID() ID { return a.id }

// Name returns the actor's name.
func (a *ActorTerminated) Name() string { return a.name }

// Reason returns the termination reason.
func (a *ActorTerminated) Reason() Reason { return a.reason }

// TerminatedAt returns the time the actor terminated.
func (a *ActorTerminated) TerminatedAt() time.Time { return a.terminatedAt }

// Deadletter defines the deadletter event. It is published whenever a
// message could not be delivered: the receiver is unknown, already
// terminated, or its mailbox rejected the message.
type Deadletter struct {
	receiver ID
	message  any
	sendTime time.Time
	reason   string
}

// NewDeadletter creates a new Deadletter event stamped with the current UTC time.
func NewDeadletter(receiver ID, message any, reason string) *Deadletter {
	return &Deadletter{
		receiver: receiver,
		message:  message,
		sendTime: time.Now().UTC(),
		reason:   reason,
	}
}

// Receiver returns the intended receiver's id.
func (d *Deadletter) Receiver() ID { return d.receiver }

// Message returns the original message that could not be delivered.
func (d *Deadletter) Message() any { return d.message }

// SendTime returns the time the message was sent.
func (d *Deadletter) SendTime() time.Time { return d.sendTime }

// Reason returns the reason the message was dead-lettered.
func (d *Deadletter) Reason() string { return d.reason }
