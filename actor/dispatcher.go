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

	"github.com/google/uuid"
)

// dispatcher is the exit-signal dispatcher. It owns the link table, the
// monitor table and the tombstone index, all guarded by a single coupling
// mutex so that every link, unlink, monitor, demonitor and termination is
// atomic with respect to each other: a registration racing a termination
// either completes before propagation or observes the target as already
// terminated and synthesizes the corresponding signal. Neither outcome
// drops a signal.
type dispatcher struct {
	mu     sync.Mutex
	system *System

	links    *linkTable
	monitors *monitorTable

	// tombstones retains the termination reason of every dead actor so that
	// late Monitor and Link calls can synthesize the correct notification.
	// TODO: cap tombstone retention for long-lived systems.
	tombstones map[ID]Reason
}

func newDispatcher(system *System) *dispatcher {
	return &dispatcher{
		system:     system,
		links:      newLinkTable(),
		monitors:   newMonitorTable(),
		tombstones: make(map[ID]Reason),
	}
}

// Link inserts the symmetric failure-propagation relation between a and b.
// Linking an actor to itself is rejected. Linking to an already-terminated
// endpoint synthesizes the exit signal the link would have carried, using
// the endpoint's recorded reason.
func (d *dispatcher) Link(a, b ID) error {
	if a == b {
		return ErrSelfLink
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pa, aAlive := d.system.actors.Get(a)
	pb, bAlive := d.system.actors.Get(b)

	if !aAlive {
		if _, ok := d.tombstones[a]; !ok {
			return ErrInvalidTarget
		}
	}
	if !bAlive {
		if _, ok := d.tombstones[b]; !ok {
			return ErrInvalidTarget
		}
	}

	switch {
	case aAlive && bAlive:
		d.links.link(a, b)
	case aAlive:
		d.signalExit(pa, b, d.tombstones[b])
	case bAlive:
		d.signalExit(pb, a, d.tombstones[a])
	default:
		// both endpoints already terminated, nothing to couple
	}
	return nil
}

// Unlink removes the symmetric relation between a and b. It is idempotent:
// removing a link that does not exist is a no-op.
func (d *dispatcher) Unlink(a, b ID) error {
	d.mu.Lock()
	d.links.unlink(a, b)
	d.mu.Unlock()
	return nil
}

// Monitor registers a directed watch from watcher to target and returns its
// reference. If target has already terminated, the down notification is
// delivered immediately with its last known reason and the returned
// reference is already retired.
func (d *dispatcher) Monitor(watcher, target ID) (MonitorRef, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, ok := d.system.actors.Get(watcher)
	if !ok {
		return "", ErrInvalidTarget
	}

	ref := MonitorRef(uuid.NewString())
	if _, alive := d.system.actors.Get(target); alive {
		d.monitors.add(&monitor{ref: ref, watcher: w, target: target})
		return ref, nil
	}

	reason, ok := d.tombstones[target]
	if !ok {
		return "", ErrInvalidTarget
	}

	d.notifyDown(w, ref, target, reason)
	return ref, nil
}

// Demonitor retires the monitor with the given reference before it fires.
// It reports whether the monitor was still pending; calling it after the
// notification was delivered is a no-op returning false.
func (d *dispatcher) Demonitor(ref MonitorRef) bool {
	d.mu.Lock()
	pending := d.monitors.remove(ref)
	d.mu.Unlock()
	return pending
}

// Terminate forcibly ends the given actor with the given reason and runs
// link and monitor propagation to completion.
func (d *dispatcher) Terminate(p *pid, reason Reason) {
	d.mu.Lock()
	d.cascade(p, reason)
	d.mu.Unlock()
}

// LastReason returns the recorded termination reason of a dead actor.
func (d *dispatcher) LastReason(id ID) (Reason, bool) {
	d.mu.Lock()
	reason, ok := d.tombstones[id]
	d.mu.Unlock()
	return reason, ok
}

// cascade terminates the root actor and transitively every non-trapping
// link partner reachable through abnormal exit signals. The traversal is an
// explicit FIFO worklist over the link graph: cycles terminate because each
// actor dies at most once (the dead flag flips exactly once), and the
// cascade is bounded by the connected component of the root.
//
// Per-actor order is fixed: record the termination, fire the monitors
// watching the actor, then schedule the link signals. Monitor notifications
// for an actor are therefore always delivered before the cascade proceeds
// to that actor's link partners.
//
// Callers must hold d.mu.
func (d *dispatcher) cascade(root *pid, reason Reason) {
	if reason == nil {
		reason = ReasonNormal
	}

	type exit struct {
		p      *pid
		reason Reason
	}

	worklist := []exit{{p: root, reason: reason}}
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		p := item.p
		if !p.dead.CompareAndSwap(false, true) {
			// already terminated through another path of the cascade
			continue
		}
		close(p.done)

		d.tombstones[p.id] = item.reason
		d.system.removeActor(p)

		// monitors watching p fire first, regardless of the reason
		for _, m := range d.monitors.drain(p.id) {
			d.notifyDown(m.watcher, m.ref, p.id, item.reason)
		}
		// watches owned by p can never fire anymore
		d.monitors.dropWatcher(p.id)

		// exit signals to link partners
		for _, partnerID := range d.links.drop(p.id) {
			partner, ok := d.system.actors.Get(partnerID)
			if !ok || partner.dead.Load() {
				continue
			}
			if partner.trap.Load() {
				d.notifyExit(partner, p.id, item.reason)
				continue
			}
			if !IsNormal(item.reason) {
				worklist = append(worklist, exit{p: partner, reason: item.reason})
			}
		}

		p.mailbox.Dispose()
		d.system.publishTerminated(p, item.reason)
	}
}

// signalExit applies the exit-signal policy for a single synthesized signal
// (source already terminated with reason) aimed at the given live receiver.
// Callers must hold d.mu.
func (d *dispatcher) signalExit(receiver *pid, source ID, reason Reason) {
	if receiver.trap.Load() {
		d.notifyExit(receiver, source, reason)
		return
	}
	if !IsNormal(reason) {
		d.cascade(receiver, reason)
	}
}

func (d *dispatcher) notifyExit(receiver *pid, source ID, reason Reason) {
	msg := &Exit{From: source, Reason: reason}
	if err := receiver.deliver(msg); err != nil {
		d.system.deadletter(receiver.id, msg, err.Error())
	}
}

func (d *dispatcher) notifyDown(watcher *pid, ref MonitorRef, target ID, reason Reason) {
	msg := &Down{Ref: ref, Actor: target, Reason: reason}
	if err := watcher.deliver(msg); err != nil {
		d.system.deadletter(watcher.id, msg, err.Error())
	}
}
