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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/obellion/tether/log"
)

// ScheduleRef identifies a pending scheduled delivery. It is returned by
// ScheduleOnce and consumed by Cancel.
type ScheduleRef string

// scheduler is the timer collaborator of the runtime. Actors have no
// intrinsic timeouts; any timing behavior is built by scheduling a delayed
// self-message through this scheduler. Delivery happens no earlier than the
// requested delay, at most once, and is cancellable until it fires.
type scheduler struct {
	// helps lock concurrent access
	mu sync.Mutex
	// underlying Scheduler
	quartzScheduler quartz.Scheduler
	// states whether the quartzScheduler has started or not
	started *atomic.Bool
	// define the logger
	logger log.Logger
	// define the shutdown timeout
	stopTimeout time.Duration
}

// newScheduler creates an instance of scheduler
func newScheduler(logger log.Logger, stopTimeout time.Duration) *scheduler {
	// create an instance of quartz scheduler with logger off
	quartzScheduler, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	return &scheduler{
		started:         atomic.NewBool(false),
		quartzScheduler: quartzScheduler,
		logger:          logger,
		stopTimeout:     stopTimeout,
	}
}

// Start starts the scheduler
func (x *scheduler) Start(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.quartzScheduler.Start(ctx)
	x.started.Store(x.quartzScheduler.IsStarted())
	x.logger.Info("messages scheduler started")
}

// Stop stops the scheduler and waits for in-flight jobs up to the stop
// timeout.
func (x *scheduler) Stop(ctx context.Context) {
	if !x.started.Load() {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	_ = x.quartzScheduler.Clear()
	x.quartzScheduler.Stop()
	x.started.Store(x.quartzScheduler.IsStarted())

	ctx, cancel := context.WithTimeout(ctx, x.stopTimeout)
	defer cancel()
	x.quartzScheduler.Wait(ctx)
	x.logger.Info("messages scheduler stopped")
}

// ScheduleOnce schedules the given message for delivery to the target
// actor's mailbox no earlier than the given delay. Delivery is at-most-once:
// if the target terminates before the timer fires, the message is
// dead-lettered like any other send to a dead actor.
func (x *scheduler) ScheduleOnce(system *System, message any, to ID, delay time.Duration) (ScheduleRef, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return "", ErrSchedulerNotStarted
	}

	fnJob := job.NewFunctionJob[bool](
		func(context.Context) (bool, error) {
			err := system.Tell(to, message)
			return err == nil, err
		},
	)

	key := uuid.NewString()
	detail := quartz.NewJobDetail(fnJob, quartz.NewJobKey(key))
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewRunOnceTrigger(delay)); err != nil {
		return "", err
	}
	return ScheduleRef(key), nil
}

// Cancel removes a pending scheduled delivery. It reports whether the
// delivery was still pending; cancelling after the message fired is a no-op
// returning false.
func (x *scheduler) Cancel(ref ScheduleRef) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return false
	}
	return x.quartzScheduler.DeleteJob(quartz.NewJobKey(string(ref))) == nil
}
