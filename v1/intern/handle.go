// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"runtime"
	"strconv"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/open-policy-agent/intern/v1/intern/arena"
)

// Handle is a reference to an interned string. It is produced only by
// Interner.Acquire and must be consumed by Interner.Release on the same
// interner.
//
// A *Handle accounts for exactly one reference. Handles cannot be cloned;
// acquire again to obtain another reference. After Release the handle is
// neutralized and any further use panics with ReleasedErr.
//
// Equality compares canonical allocations by address, which within one
// interner is equivalent to comparing content. Ordering and hashing use the
// content.
type Handle struct {
	_ [0]func() // not comparable, use Equal

	slot  *arena.Slot
	owner *Interner

	cleanup runtime.Cleanup
	tracked bool
}

// neutralize points h at the null sentinel so that Drop no longer reports
// it as leaked.
func (h *Handle) neutralize() {
	h.slot = arena.Null()
	h.untrack()
}

// Released returns true once h has been given back to its interner.
func (h *Handle) Released() bool {
	return h.slot == arena.Null()
}

// text returns the interned content, panicking if h was released.
func (h *Handle) text() string {
	if h.Released() {
		panic(errReleased)
	}
	return h.slot.Text()
}

// folded returns the case-folded content, cached on the canonical
// allocation.
func (h *Handle) folded() string {
	if h.Released() {
		panic(errReleased)
	}
	return h.slot.Folded(foldString)
}

// String returns the interned string.
func (h *Handle) String() string {
	return h.text()
}

// GoString returns the quoted interned string.
func (h *Handle) GoString() string {
	return strconv.Quote(h.text())
}

// Addr returns the address of the canonical allocation. Two live handles
// from the same interner have the same address if and only if they hold
// the same content.
func (h *Handle) Addr() uintptr {
	if h.Released() {
		panic(errReleased)
	}
	return uintptr(unsafe.Pointer(h.slot))
}

// Equal reports whether h and other refer to the same canonical
// allocation.
func (h *Handle) Equal(other *Handle) bool {
	if h.Released() || other.Released() {
		panic(errReleased)
	}
	return h.slot == other.slot
}

// EqualString reports whether h holds s.
func (h *Handle) EqualString(s string) bool {
	return h.text() == s
}

// Compare compares the content of h and other. Handles from different
// interners holding the same content compare as 0 even though Equal
// reports false, so Compare is not an identity test.
func (h *Handle) Compare(other *Handle) int {
	if h.Equal(other) {
		return 0
	}
	return strings.Compare(h.slot.Text(), other.slot.Text())
}

// CompareString compares the content of h with s.
func (h *Handle) CompareString(s string) int {
	return strings.Compare(h.text(), s)
}

// Hash returns the hash of the content. It equals the hash of a Str with
// the same content.
func (h *Handle) Hash() uint64 {
	return xxhash.Sum64String(h.text())
}

// FoldCase wraps h into its case-insensitive view.
func (h *Handle) FoldCase() HandleCI {
	return HandleCI{h: h}
}

// Drop ends the life of h. A handle must be released before it is dropped;
// dropping a live handle means a Release was skipped and panics with
// LeakErr.
func (h *Handle) Drop() {
	if h == nil || h.Released() {
		return
	}
	panic(leakError("interned value " + strconv.Quote(h.slot.Text()) + " leaked"))
}
