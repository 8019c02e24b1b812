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
	mapset "github.com/deckarep/golang-set/v2"
)

// linkTable is the bidirectional failure-propagation registry. A link
// between a and b is stored on both sides so either termination finds the
// other endpoint in one lookup.
//
// linkTable is not safe for concurrent use on its own: every access happens
// under the dispatcher's coupling mutex, which is what makes link and
// unlink atomic with respect to concurrent terminations.
type linkTable struct {
	links map[ID]mapset.Set[ID]
}

func newLinkTable() *linkTable {
	return &linkTable{
		links: make(map[ID]mapset.Set[ID]),
	}
}

// link inserts the symmetric relation between a and b. Idempotent.
func (t *linkTable) link(a, b ID) {
	t.side(a).Add(b)
	t.side(b).Add(a)
}

// unlink removes the symmetric relation between a and b. Idempotent; a
// missing link is a no-op.
func (t *linkTable) unlink(a, b ID) {
	if set, ok := t.links[a]; ok {
		set.Remove(b)
		if set.Cardinality() == 0 {
			delete(t.links, a)
		}
	}
	if set, ok := t.links[b]; ok {
		set.Remove(a)
		if set.Cardinality() == 0 {
			delete(t.links, b)
		}
	}
}

// linked reports whether a and b are currently linked.
func (t *linkTable) linked(a, b ID) bool {
	set, ok := t.links[a]
	return ok && set.Contains(b)
}

// drop removes every link involving a and returns the former partners.
func (t *linkTable) drop(a ID) []ID {
	set, ok := t.links[a]
	if !ok {
		return nil
	}
	partners := set.ToSlice()
	delete(t.links, a)
	for _, partner := range partners {
		if peer, ok := t.links[partner]; ok {
			peer.Remove(a)
			if peer.Cardinality() == 0 {
				delete(t.links, partner)
			}
		}
	}
	return partners
}

func (t *linkTable) side(a ID) mapset.Set[ID] {
	set, ok := t.links[a]
	if !ok {
		set = mapset.NewThreadUnsafeSet[ID]()
		t.links[a] = set
	}
	return set
}
