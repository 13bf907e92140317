// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import (
	"sync/atomic"
)

// SlotState identifies the lifecycle state of a Slot.
type SlotState uint32

const (
	StateFree SlotState = iota // Slot is free and can be reused
	StateLive                  // Slot holds a canonical string
	StateNull                  // Process-wide sentinel, never allocated
)

func (s SlotState) String() string {
	switch s {
	case StateFree:
		return "free"
	case StateLive:
		return "live"
	case StateNull:
		return "null"
	default:
		return "unknown"
	}
}

const (
	// SegmentSize defines how many slots fit in one segment.
	SegmentSize = 512

	// MaxSegments is the default limit on segments per arena, about 33.5M
	// live slots. Allocating past it panics.
	MaxSegments = 1 << 16
)

// Slot is the canonical allocation for one distinct string value.
//
// The address of a Slot never changes while it is live: segments are
// allocated once and never moved. The text is immutable between Alloc and
// Free.
type Slot struct {
	text  string
	fold  atomic.Pointer[string] // lazily computed case-folded text
	refs  int32                  // outstanding references, owned by the caller
	idx   int32                  // index of this slot in its arena
	next  int32                  // next free slot (-1 = none), only while free
	state SlotState
}

// null is the sentinel used for neutralized references.
var null = &Slot{
	text:  "NULLPTR",
	idx:   -1,
	next:  -1,
	state: StateNull,
}

// Null returns the process-wide sentinel slot. It is never handed out by
// an arena and must only be compared by address.
func Null() *Slot {
	return null
}

// Text returns the canonical string held by the slot.
func (s *Slot) Text() string {
	return s.text
}

// Refs returns the current reference count.
func (s *Slot) Refs() int32 {
	return s.refs
}

// Retain increments the reference count and returns the new value.
func (s *Slot) Retain() int32 {
	s.refs++
	return s.refs
}

// Unref decrements the reference count and returns the new value.
func (s *Slot) Unref() int32 {
	if s.refs <= 0 {
		panic("arena: reference count underflow")
	}
	s.refs--
	return s.refs
}

// Index returns the slot index inside its arena, or -1 for the sentinel.
func (s *Slot) Index() int32 {
	return s.idx
}

// State returns the lifecycle state.
func (s *Slot) State() SlotState {
	return s.state
}

// IsLive returns true if the slot currently holds a canonical string.
func (s *Slot) IsLive() bool {
	return s.state == StateLive
}

// IsNull returns true for the sentinel slot.
func (s *Slot) IsNull() bool {
	return s == null
}

// Folded returns the case-folded form of the text, computing it with fold
// on first use. The result is cached until the slot is freed.
func (s *Slot) Folded(fold func(string) string) string {
	if f := s.fold.Load(); f != nil {
		return *f
	}
	f := fold(s.text)
	s.fold.Store(&f)
	return f
}

// Reset clears the slot for reuse.
func (s *Slot) Reset() {
	s.text = ""
	s.fold.Store(nil)
	s.refs = 0
	s.next = -1
	s.state = StateFree
}
