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

// spawnConfig collects the per-actor settings applied during Spawn.
type spawnConfig struct {
	name            string
	mailbox         Mailbox
	trapExit        bool
	linkTo          ID
	hasLink         bool
	preStart        func() error
	preStartRetries int
}

func newSpawnConfig(opts ...SpawnOption) *spawnConfig {
	config := &spawnConfig{
		preStartRetries: defaultPreStartRetries,
	}
	for _, opt := range opts {
		opt.Apply(config)
	}
	return config
}

// SpawnOption is the interface that applies a per-actor configuration option.
type SpawnOption interface {
	// Apply sets the Option value of a config.
	Apply(config *spawnConfig)
}

// enforce compilation error
var _ SpawnOption = spawnOption(nil)

// spawnOption implements the SpawnOption interface.
type spawnOption func(config *spawnConfig)

func (f spawnOption) Apply(config *spawnConfig) {
	f(config)
}

// WithName gives the actor a unique human-readable name within the system.
// Spawn fails with ErrActorAlreadyExists when the name is taken. Without
// this option a name is generated.
func WithName(name string) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.name = name
	})
}

// WithMailbox replaces the default unbounded mailbox of the actor.
func WithMailbox(mailbox Mailbox) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.mailbox = mailbox
	})
}

// WithTrapExit spawns the actor with trap-exit already enabled, closing the
// window between spawning and the first TrapExit call.
func WithTrapExit() SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.trapExit = true
	})
}

// WithLinkTo atomically links the new actor to the given owner as part of
// the spawn, so the owner can never miss the new actor's termination. If the
// owner has already terminated abnormally, the new actor is terminated
// before its work runs.
func WithLinkTo(owner ID) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.linkTo = owner
		config.hasLink = true
	})
}

// WithPreStart runs the given hook before the actor's work is scheduled,
// attempting it up to maxRetries times with backoff. Spawn fails with
// ErrInitFailure when the hook keeps failing.
func WithPreStart(hook func() error, maxRetries int) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.preStart = hook
		config.preStartRetries = maxRetries
	})
}
