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

// monitor is a single directed watch from a watcher to a target actor.
type monitor struct {
	ref     MonitorRef
	watcher *pid
	target  ID
}

// monitorTable is the unidirectional termination-notification registry. Each
// entry fires exactly once and is retired on delivery, demonitor, or watcher
// death.
//
// monitorTable is not safe for concurrent use on its own: every access
// happens under the dispatcher's coupling mutex.
type monitorTable struct {
	byRef     map[MonitorRef]*monitor
	byTarget  map[ID]map[MonitorRef]*monitor
	byWatcher map[ID]map[MonitorRef]*monitor
}

func newMonitorTable() *monitorTable {
	return &monitorTable{
		byRef:     make(map[MonitorRef]*monitor),
		byTarget:  make(map[ID]map[MonitorRef]*monitor),
		byWatcher: make(map[ID]map[MonitorRef]*monitor),
	}
}

// add registers a pending monitor.
func (t *monitorTable) add(m *monitor) {
	t.byRef[m.ref] = m

	targets, ok := t.byTarget[m.target]
	if !ok {
		targets = make(map[MonitorRef]*monitor)
		t.byTarget[m.target] = targets
	}
	targets[m.ref] = m

	watchers, ok := t.byWatcher[m.watcher.id]
	if !ok {
		watchers = make(map[MonitorRef]*monitor)
		t.byWatcher[m.watcher.id] = watchers
	}
	watchers[m.ref] = m
}

// remove retires the monitor with the given ref before it fires. It reports
// whether the monitor was still pending.
func (t *monitorTable) remove(ref MonitorRef) bool {
	m, ok := t.byRef[ref]
	if !ok {
		return false
	}
	t.unindex(m)
	return true
}

// drain retires and returns every pending monitor whose target is the given
// actor. The order of the returned monitors is not specified.
func (t *monitorTable) drain(target ID) []*monitor {
	targets, ok := t.byTarget[target]
	if !ok {
		return nil
	}
	drained := make([]*monitor, 0, len(targets))
	for _, m := range targets {
		drained = append(drained, m)
		t.unindex(m)
	}
	return drained
}

// dropWatcher retires every pending monitor owned by the given watcher. Used
// when the watcher itself terminates: a dead actor can never consume a down
// notification.
func (t *monitorTable) dropWatcher(watcher ID) {
	watchers, ok := t.byWatcher[watcher]
	if !ok {
		return
	}
	for _, m := range watchers {
		t.unindex(m)
	}
}

func (t *monitorTable) unindex(m *monitor) {
	delete(t.byRef, m.ref)

	if targets, ok := t.byTarget[m.target]; ok {
		delete(targets, m.ref)
		if len(targets) == 0 {
			delete(t.byTarget, m.target)
		}
	}

	if watchers, ok := t.byWatcher[m.watcher.id]; ok {
		delete(watchers, m.ref)
		if len(watchers) == 0 {
			delete(t.byWatcher, m.watcher.id)
		}
	}
}
