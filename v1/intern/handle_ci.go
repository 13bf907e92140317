// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// HandleCI is a case-insensitive view of a Handle. It owns the wrapped
// handle, which still has to be released through its interner; only
// equality, ordering and hashing change.
type HandleCI struct {
	h *Handle
}

// Handle returns the wrapped handle, for example to release it.
func (c HandleCI) Handle() *Handle {
	return c.h
}

// String returns the interned string with its original case.
func (c HandleCI) String() string {
	return c.h.String()
}

// GoString returns the quoted interned string.
func (c HandleCI) GoString() string {
	return c.h.GoString()
}

// Key returns the case-folded content. Values that are equal under Equal
// have the same Key, which makes it suitable as a Go map key.
func (c HandleCI) Key() string {
	return c.h.folded()
}

// Equal reports whether c and other hold the same content ignoring case.
func (c HandleCI) Equal(other HandleCI) bool {
	if c.h.Equal(other.h) {
		return true
	}
	return c.Key() == other.Key()
}

// EqualString reports whether c holds s ignoring case.
func (c HandleCI) EqualString(s string) bool {
	return equalFold(c.h.text(), s)
}

// Compare compares the case-folded content of c and other.
func (c HandleCI) Compare(other HandleCI) int {
	if c.h.Equal(other.h) {
		return 0
	}
	return strings.Compare(c.Key(), other.Key())
}

// CompareString compares the case-folded content of c with s.
func (c HandleCI) CompareString(s string) int {
	return compareFold(c.h.text(), s)
}

// Hash returns the hash of the case-folded content.
func (c HandleCI) Hash() uint64 {
	return xxhash.Sum64String(c.Key())
}

// Drop ends the life of the wrapped handle, see Handle.Drop.
func (c HandleCI) Drop() {
	c.h.Drop()
}
