// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package arena implements the canonical allocations backing interned
// strings.
//
// An Arena hands out Slots from fixed-size segments. Segments are never
// moved or released while the arena is reachable, so a *Slot is a stable
// identity for the string it holds from Alloc until Free. Freed slots are
// threaded onto a freelist and reused by later allocations.
//
// An Arena is not safe for concurrent use.
package arena

import (
	"strings"
)

// Arena is a segmented allocator of Slots.
type Arena struct {
	// segments holds the allocated slot segments. A segment is never
	// reallocated once created, only the slice of pointers grows.
	segments []*[SegmentSize]Slot

	// maxSegments bounds the number of segments.
	maxSegments int

	// slotCnt tracks the number of slots handed out from segments,
	// including slots that are currently on the freelist.
	slotCnt int32

	// freeHead points to the head of the freelist.
	// -1 indicates an empty freelist.
	freeHead int32

	// live is the number of slots in StateLive.
	live int
}

// Opt is a configuration option for the arena.
type Opt func(*Arena)

// WithMaxSegments limits the number of segments the arena may allocate.
// Allocating past the limit panics.
func WithMaxSegments(n int) Opt {
	return func(a *Arena) {
		if n > 0 {
			a.maxSegments = n
		}
	}
}

// New creates an empty arena. No segment is allocated until the first Alloc.
func New(opts ...Opt) *Arena {
	a := &Arena{
		maxSegments: MaxSegments,
		freeHead:    -1,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// extend allocates a new segment.
func (a *Arena) extend() {
	if len(a.segments) >= a.maxSegments {
		panic("arena: maximum segments exceeded")
	}

	seg := new([SegmentSize]Slot)
	base := int32(len(a.segments)) * SegmentSize
	for i := range seg {
		seg[i].Reset()
		seg[i].idx = base + int32(i)
	}

	a.segments = append(a.segments, seg)
}

// getSlot returns a pointer to the slot at the given index.
func (a *Arena) getSlot(idx int32) *Slot {
	if idx < 0 || idx >= a.slotCnt {
		return nil
	}
	return &a.segments[idx/SegmentSize][idx%SegmentSize]
}

// Alloc copies text into a fresh slot and returns it with a reference
// count of zero. The slot keeps its own copy, so the caller's memory may
// be reused afterwards.
func (a *Arena) Alloc(text string) *Slot {
	var s *Slot

	if a.freeHead != -1 {
		// Reuse from freelist first
		s = a.getSlot(a.freeHead)
		a.freeHead = s.next
		s.Reset()
	} else {
		idx := a.slotCnt
		if int(idx/SegmentSize) >= len(a.segments) {
			a.extend()
		}
		a.slotCnt++
		s = a.getSlot(idx)
	}

	s.text = strings.Clone(text)
	s.state = StateLive
	a.live++
	return s
}

// Free returns a live slot to the freelist. Freeing a slot that is not live
// or that belongs to another arena panics.
func (a *Arena) Free(s *Slot) {
	if s == nil || s.IsNull() {
		panic("arena: free of sentinel slot")
	}
	if a.getSlot(s.idx) != s {
		panic("arena: slot does not belong to this arena")
	}
	if !s.IsLive() {
		panic("arena: double free")
	}

	s.Reset()
	s.next = a.freeHead
	a.freeHead = s.idx
	a.live--
}

// Len returns the number of live slots.
func (a *Arena) Len() int {
	return a.live
}

// Cap returns the number of slots handed out from segments, live or free.
func (a *Arena) Cap() int {
	return int(a.slotCnt)
}

// Segments returns the number of allocated segments.
func (a *Arena) Segments() int {
	return len(a.segments)
}

// Each calls fn for every live slot in index order. fn must not allocate
// or free slots.
func (a *Arena) Each(fn func(*Slot)) {
	for i := int32(0); i < a.slotCnt; i++ {
		s := a.getSlot(i)
		if s.IsLive() {
			fn(s)
		}
	}
}
