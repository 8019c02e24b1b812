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

import "errors"

var (
	// ErrInvalidSystemName is returned when the actor system name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidSystemName = errors.New("invalid System name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNameRequired is returned when an actor system name is required but not provided.
	ErrNameRequired = errors.New("system name is required")

	// ErrInvalidTarget is returned when an operation references an actor id
	// that was never spawned in this system.
	ErrInvalidTarget = errors.New("actor is not defined")

	// ErrSelfLink is returned when an actor attempts to link itself.
	ErrSelfLink = errors.New("actor cannot link itself")

	// ErrDead indicates that the actor is no longer alive or has been terminated.
	ErrDead = errors.New("actor is not alive")

	// ErrSystemNotStarted indicates that the system has not been started before use.
	ErrSystemNotStarted = errors.New("system has not started yet")

	// ErrSystemAlreadyStarted is returned when starting a system that is already running.
	ErrSystemAlreadyStarted = errors.New("system has already started")

	// ErrActorAlreadyExists is returned when trying to spawn an actor with a name that already exists.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrSchedulerNotStarted is returned when attempting to use the scheduler before it has started.
	ErrSchedulerNotStarted = errors.New("scheduler has not started")

	// ErrMailboxFull is returned by a bounded mailbox when it has reached capacity.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrInitFailure is returned when the actor's pre-start hook fails during spawning.
	ErrInitFailure = errors.New("preStart failed")
)
