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
	"errors"
	"fmt"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/obellion/tether/eventstream"
	"github.com/obellion/tether/internal/syncmap"
	"github.com/obellion/tether/log"
)

const (
	defaultShutdownTimeout = 3 * time.Second
	defaultPreStartRetries = 5

	preStartInitialDelay = 100 * time.Millisecond
	preStartMaxDelay     = time.Second
)

var systemNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_]*$`)

// System is the runtime context owning every actor, the link and monitor
// registries, the exit-signal dispatcher, the event stream and the message
// scheduler. It replaces process-wide ambient state with an explicit object
// whose lifetime is bounded by Start and Stop.
//
// All methods are safe for concurrent use.
type System struct {
	name   string
	logger log.Logger

	actors *syncmap.SyncMap[ID, *pid]
	names  *syncmap.SyncMap[string, ID]

	dispatcher *dispatcher
	events     eventstream.Stream
	scheduler  *scheduler

	started  *atomic.Bool
	stopping *atomic.Bool

	shutdownTimeout time.Duration

	// runners counts the goroutines of all spawned actors. The last one to
	// unwind drops a token into quiescent so Stop can wait for them without
	// leaving a waiter behind on timeout.
	runners   *atomic.Int64
	quiescent chan struct{}
}

// NewSystem creates a stopped System with the given name. The name must
// consist of word characters with non-leading hyphens or underscores.
func NewSystem(name string, opts ...Option) (*System, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if !systemNamePattern.MatchString(name) {
		return nil, ErrInvalidSystemName
	}

	system := &System{
		name:            name,
		logger:          log.DefaultLogger,
		actors:          syncmap.New[ID, *pid](),
		names:           syncmap.New[string, ID](),
		events:          eventstream.New(),
		started:         atomic.NewBool(false),
		stopping:        atomic.NewBool(false),
		shutdownTimeout: defaultShutdownTimeout,
		runners:         atomic.NewInt64(0),
		quiescent:       make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	system.dispatcher = newDispatcher(system)
	system.scheduler = newScheduler(system.logger, system.shutdownTimeout)
	return system, nil
}

// Name returns the system name.
func (sys *System) Name() string {
	return sys.name
}

// Logger returns the system logger.
func (sys *System) Logger() log.Logger {
	return sys.logger
}

// NumActors returns the number of currently live actors.
func (sys *System) NumActors() int {
	return sys.actors.Len()
}

// Start starts the system. It must be called before any actor is spawned.
func (sys *System) Start(ctx context.Context) error {
	if !sys.started.CompareAndSwap(false, true) {
		return ErrSystemAlreadyStarted
	}
	sys.scheduler.Start(ctx)
	sys.logger.Infof("System %s started", sys.name)
	return nil
}

// Stop stops the system: the scheduler is halted, every live actor is
// terminated with ReasonShutdown (running the usual link and monitor
// propagation), and Stop waits up to the shutdown timeout for the actor
// goroutines to unwind before closing the event stream.
func (sys *System) Stop(ctx context.Context) error {
	if !sys.started.CompareAndSwap(true, false) {
		return ErrSystemNotStarted
	}
	sys.stopping.Store(true)
	defer sys.stopping.Store(false)

	sys.logger.Infof("System %s shutting down...", sys.name)
	sys.scheduler.Stop(ctx)

	eg := new(errgroup.Group)
	for _, p := range sys.actors.Values() {
		p := p
		eg.Go(func() error {
			sys.dispatcher.Terminate(p, ReasonShutdown)
			return nil
		})
	}

	var err error
	multierr.AppendInto(&err, eg.Wait())
	multierr.AppendInto(&err, sys.awaitRunners(ctx))

	sys.events.Close()
	sys.logger.Infof("System %s shut down", sys.name)
	return err
}

// Spawn creates a new actor running work on its own goroutine and returns
// its live id immediately. Scheduling is independent per actor: no actor
// blocks another's progress except through message passing or intentional
// link-propagated termination.
func (sys *System) Spawn(work Work, opts ...SpawnOption) (ID, error) {
	if !sys.started.Load() {
		return "", ErrSystemNotStarted
	}

	config := newSpawnConfig(opts...)

	if config.preStart != nil {
		retrier := retry.NewRetrier(config.preStartRetries, preStartInitialDelay, preStartMaxDelay)
		if err := retrier.Run(config.preStart); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInitFailure, err)
		}
	}

	id := ID(uuid.NewString())
	name := config.name
	if name == "" {
		name = string(id)
	}
	// reserving the name and checking for duplicates is one atomic step so
	// concurrent spawns with the same name cannot both pass
	if !sys.names.SetIfAbsent(name, id) {
		return "", ErrActorAlreadyExists
	}

	mailbox := config.mailbox
	if mailbox == nil {
		mailbox = NewUnboundedMailbox()
	}

	p := newPID(id, name, mailbox, config.trapExit)
	sys.actors.Set(id, p)
	sys.events.Publish(TopicLifecycle, NewActorSpawned(id, name))
	sys.logger.Debugf("Actor %s spawned in system %s", name, sys.name)

	if config.hasLink {
		if err := sys.dispatcher.Link(id, config.linkTo); err != nil {
			sys.dispatcher.Terminate(p, err)
			return "", err
		}
	}

	sys.runners.Inc()
	go sys.run(p, work)
	return id, nil
}

// Tell sends a message to the given actor, fire-and-forget. Sending to a
// terminated or unknown actor is a silent no-op for the caller; the dropped
// message is published as a Deadletter event. Callers needing delivery
// confirmation must use monitors.
func (sys *System) Tell(to ID, message any) error {
	if !sys.started.Load() && !sys.stopping.Load() {
		return ErrSystemNotStarted
	}

	p, ok := sys.actors.Get(to)
	if !ok {
		sys.deadletter(to, message, ErrDead.Error())
		return nil
	}
	if err := p.deliver(message); err != nil {
		sys.deadletter(to, message, err.Error())
	}
	return nil
}

// Terminate forcibly ends the given actor with the given reason, triggering
// link and monitor propagation. It is idempotent on already-terminated
// actors. A nil reason means ReasonNormal.
func (sys *System) Terminate(id ID, reason Reason) error {
	if !sys.started.Load() && !sys.stopping.Load() {
		return ErrSystemNotStarted
	}

	if p, ok := sys.actors.Get(id); ok {
		sys.dispatcher.Terminate(p, reason)
		return nil
	}
	if _, ok := sys.dispatcher.LastReason(id); ok {
		return nil
	}
	return ErrInvalidTarget
}

// Link establishes the symmetric failure-propagation relation between the
// two given actors. It is idempotent; linking an actor to itself is
// rejected with ErrSelfLink, and ids never spawned in this system are
// rejected with ErrInvalidTarget.
func (sys *System) Link(a, b ID) error {
	if !sys.started.Load() {
		return ErrSystemNotStarted
	}
	return sys.dispatcher.Link(a, b)
}

// Unlink removes the link between the two given actors. Removing a link
// that does not exist is a no-op.
func (sys *System) Unlink(a, b ID) error {
	if !sys.started.Load() {
		return ErrSystemNotStarted
	}
	return sys.dispatcher.Unlink(a, b)
}

// Monitor registers a one-shot watch of target on behalf of watcher and
// returns its reference. Exactly one Down notification is delivered to the
// watcher per monitor, for any termination reason including ReasonNormal;
// the watcher never terminates as a result. Monitoring an
// already-terminated actor delivers the notification immediately with its
// last known reason.
func (sys *System) Monitor(watcher, target ID) (MonitorRef, error) {
	if !sys.started.Load() {
		return "", ErrSystemNotStarted
	}
	return sys.dispatcher.Monitor(watcher, target)
}

// Demonitor removes a pending monitor registration before it fires. It
// reports whether the registration was still pending.
func (sys *System) Demonitor(ref MonitorRef) bool {
	if !sys.started.Load() {
		return false
	}
	return sys.dispatcher.Demonitor(ref)
}

// SetTrapExit switches the trap-exit mode of the given actor. When enabled,
// exit signals propagated over links are delivered to the actor as *Exit
// messages instead of terminating it.
func (sys *System) SetTrapExit(id ID, trap bool) error {
	if !sys.started.Load() {
		return ErrSystemNotStarted
	}
	p, ok := sys.actors.Get(id)
	if !ok {
		if _, dead := sys.dispatcher.LastReason(id); dead {
			return ErrDead
		}
		return ErrInvalidTarget
	}
	p.trap.Store(trap)
	return nil
}

// IsAlive reports whether the given actor is currently live.
func (sys *System) IsAlive(id ID) bool {
	p, ok := sys.actors.Get(id)
	return ok && !p.dead.Load()
}

// Lookup resolves a named actor to its id.
func (sys *System) Lookup(name string) (ID, bool) {
	return sys.names.Get(name)
}

// ScheduleOnce schedules a message for delivery to the target actor's
// mailbox no earlier than the given delay, at most once. The returned
// reference cancels the delivery while it is still pending.
func (sys *System) ScheduleOnce(delay time.Duration, message any, to ID) (ScheduleRef, error) {
	if !sys.started.Load() {
		return "", ErrSystemNotStarted
	}
	return sys.scheduler.ScheduleOnce(sys, message, to, delay)
}

// Cancel removes a pending scheduled delivery; it reports whether the
// delivery was still pending.
func (sys *System) Cancel(ref ScheduleRef) bool {
	return sys.scheduler.Cancel(ref)
}

// Subscribe returns a consumer of the runtime's lifecycle and deadletter
// events.
func (sys *System) Subscribe() (eventstream.Subscriber, error) {
	if !sys.started.Load() {
		return nil, ErrSystemNotStarted
	}
	subscriber := sys.events.AddSubscriber()
	sys.events.Subscribe(subscriber, TopicLifecycle)
	sys.events.Subscribe(subscriber, TopicDeadletter)
	return subscriber, nil
}

// Unsubscribe detaches a consumer previously returned by Subscribe.
func (sys *System) Unsubscribe(subscriber eventstream.Subscriber) {
	sys.events.RemoveSubscriber(subscriber)
}

// run executes the actor work and feeds its outcome into the dispatcher as
// the actor's termination reason.
func (sys *System) run(p *pid, work Work) {
	defer func() {
		if sys.runners.Dec() == 0 {
			// a stale token only makes awaitRunners recheck the counter
			select {
			case sys.quiescent <- struct{}{}:
			default:
			}
		}
	}()

	// the actor may have been killed between registration and scheduling,
	// e.g. by WithLinkTo against an abnormally terminated owner
	if p.dead.Load() {
		return
	}

	err := sys.runWork(p, work)

	reason := ReasonNormal
	if err != nil && !errors.Is(err, ErrDead) {
		reason = err
	}
	// idempotent when the actor was already terminated through Terminate,
	// a cascade, or system shutdown
	sys.dispatcher.Terminate(p, reason)
}

func (sys *System) runWork(p *pid, work Work) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = NewPanicError(recovered, debug.Stack())
			sys.logger.Errorf("Actor %s panicked: %v", p.name, recovered)
		}
	}()
	return work(newContext(p, sys))
}

// awaitRunners waits for all actor goroutines to unwind, bounded by the
// shutdown timeout. Giving up leaves nothing behind: the waiting happens on
// this goroutine, and a token arriving after a timeout sits in the buffered
// slot until the next recheck consumes it.
func (sys *System) awaitRunners(ctx context.Context) error {
	deadline := time.After(sys.shutdownTimeout)
	for {
		if sys.runners.Load() == 0 {
			return nil
		}
		select {
		case <-sys.quiescent:
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("system %s: actors did not unwind within %s", sys.name, sys.shutdownTimeout)
		}
	}
}

// removeActor drops the actor from the live registries. Tombstones are kept
// by the dispatcher.
func (sys *System) removeActor(p *pid) {
	sys.actors.Delete(p.id)
	sys.names.Delete(p.name)
}

func (sys *System) deadletter(receiver ID, message any, reason string) {
	sys.events.Publish(TopicDeadletter, NewDeadletter(receiver, message, reason))
}

func (sys *System) publishTerminated(p *pid, reason Reason) {
	sys.events.Publish(TopicLifecycle, NewActorTerminated(p.id, p.name, reason))
	sys.logger.Debugf("Actor %s terminated: %v", p.name, reason)
}
