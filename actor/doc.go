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

// Package actor implements a minimal actor runtime whose focus is lifecycle
// coupling: links (symmetric failure propagation), monitors (directed
// one-shot termination notification) and trap-exit (converting incoming exit
// signals into ordinary messages).
//
// Actors are spawned as independent goroutines owning a private mailbox;
// they share no memory and interact only through messages. An actor
// suspends exclusively inside Context.Receive, optionally with selector
// predicates for selective receive.
//
// A typical owner/child arrangement links a coordinator to a worker, traps
// exits on the coordinator, and adds a monitor for the reason-carrying
// notification:
//
//	coordinator, _ := system.Spawn(func(ctx *actor.Context) error {
//		ctx.TrapExit(true)
//		worker, _ := ctx.System().Spawn(tick, actor.WithLinkTo(ctx.Self()))
//		ref, _ := ctx.Monitor(worker)
//		_ = ref
//		for {
//			msg, err := ctx.Receive()
//			if err != nil {
//				return nil
//			}
//			switch m := msg.(type) {
//			case *actor.Exit:
//				// worker is gone; clean up resources tied to m.From
//			case *actor.Down:
//				// one-shot notification with m.Reason
//			}
//		}
//	})
package actor
