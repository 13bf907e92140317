// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package intern implements a manually managed string interner.
//
// An Interner deduplicates equal strings into a single canonical allocation
// and hands out reference-counted handles to it. Every handle returned by
// Acquire must be given back with Release on the same Interner. Handles are
// never copied by the interner: each *Handle accounts for exactly one unit of
// reference count.
//
// Mismanagement is loud rather than a slow leak:
//   - releasing a handle the interner does not know panics with NotFoundErr,
//   - releasing a handle twice or using it after release panics with ReleasedErr,
//   - dropping a handle that was never released panics with LeakErr,
//   - closing an interner that still has entries panics with LeakErr.
//
// An Interner is not safe for concurrent use; callers must serialize access.
package intern

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/open-policy-agent/intern/v1/intern/arena"
)

// Interner maps string content to canonical allocations and their
// reference counts.
type Interner struct {
	// arena owns the canonical allocations.
	arena *arena.Arena

	// index maps content to its slot. The key is the slot's own text, so
	// no second copy of the string is kept.
	index map[string]*arena.Slot

	logger     logrus.FieldLogger
	metrics    *metrics
	trackLeaks bool
	onLeak     func(Leak)
	closed     bool
}

// Entry describes one interned string.
type Entry struct {
	Value string
	Refs  int
}

// New creates an empty interner.
func New(opts ...Opt) *Interner {
	i := &Interner{
		arena:   arena.New(),
		index:   make(map[string]*arena.Slot),
		logger:  logrus.StandardLogger(),
		metrics: newMetrics(),
	}

	for _, opt := range opts {
		opt(i)
	}

	if i.onLeak == nil {
		i.onLeak = defaultLeakHandler(i.logger)
	}

	return i
}

// Acquire returns a handle to the canonical allocation for s, creating it
// on first use. The handle must be returned with Release.
//
// The number of distinct values is bounded by the arena: with the default
// of arena.MaxSegments segments that is about 33.5M live values (see
// WithMaxSegments). Acquiring a new value past the bound panics.
func (i *Interner) Acquire(s string) *Handle {
	if i.closed {
		panic(errClosed)
	}

	slot, ok := i.index[s]
	if !ok {
		segments := i.arena.Segments()
		slot = i.arena.Alloc(s)
		i.index[slot.Text()] = slot
		i.logger.WithField("value", slot.Text()).Debug("Interned new value.")
		if n := i.arena.Segments(); n != segments {
			i.logger.WithField("segments", n).Debug("Extended arena.")
		}
	}

	slot.Retain()
	i.metrics.acquired(!ok)

	h := &Handle{slot: slot, owner: i}
	if i.trackLeaks {
		i.track(h)
	}
	return h
}

// AcquireOptional returns nil if s is nil, otherwise it behaves like
// Acquire.
func (i *Interner) AcquireOptional(s *string) *Handle {
	if s == nil {
		return nil
	}
	return i.Acquire(*s)
}

// Release gives back the reference held by h and neutralizes h. When the
// last reference to a value is released, the entry and its canonical
// allocation are removed.
//
// Release panics if h was issued by another interner, was already released,
// or has no entry in this interner.
func (i *Interner) Release(h *Handle) {
	if h == nil || h.Released() {
		panic(errReleased)
	}

	slot, ok := i.index[h.slot.Text()]
	if !ok {
		panic(errNotFound)
	}
	if h.owner != i || slot != h.slot {
		panic(errForeign)
	}

	h.neutralize()

	freed := slot.Unref() == 0
	if freed {
		delete(i.index, slot.Text())
		i.logger.WithField("value", slot.Text()).Debug("Removed interned value.")
		i.arena.Free(slot)
	}

	i.metrics.released(freed)
}

// ReleaseOptional is a no-op if h is nil, otherwise it behaves like
// Release.
func (i *Interner) ReleaseOptional(h *Handle) {
	if h == nil {
		return
	}
	i.Release(h)
}

// Len returns the number of distinct interned strings.
func (i *Interner) Len() int {
	return len(i.index)
}

// Contains returns true if s is currently interned.
func (i *Interner) Contains(s string) bool {
	_, ok := i.index[s]
	return ok
}

// Refs returns the number of outstanding handles for s.
func (i *Interner) Refs(s string) int {
	if slot, ok := i.index[s]; ok {
		return int(slot.Refs())
	}
	return 0
}

// Entries returns the interned strings and their reference counts, sorted
// by value.
func (i *Interner) Entries() []Entry {
	entries := make([]Entry, 0, len(i.index))
	i.arena.Each(func(s *arena.Slot) {
		entries = append(entries, Entry{Value: s.Text(), Refs: int(s.Refs())})
	})
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Value, b.Value)
	})
	return entries
}

// Close tears down the interner. Any remaining entry means a handle was
// never released: each is logged and Close panics with LeakErr. Acquire on
// a closed interner panics with ClosedErr; outstanding handles may still be
// released.
func (i *Interner) Close() {
	if i.closed {
		return
	}
	i.closed = true

	if len(i.index) == 0 {
		return
	}

	leaked := i.Entries()
	refs := 0
	for _, e := range leaked {
		refs += e.Refs
		i.logger.WithFields(logrus.Fields{
			"value": e.Value,
			"refs":  e.Refs,
		}).Error("Interned value leaked.")
	}
	i.metrics.leaks.Add(float64(refs))

	panic(leakError(fmt.Sprintf("%d interned values leaked at close", len(leaked))))
}
