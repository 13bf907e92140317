// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// StrCI is the case-insensitive counterpart of Str. It holds either a
// borrowed string or an owned Handle and compares, orders and hashes by
// case-folded content.
type StrCI struct {
	s string
	h *Handle
}

// BorrowCI returns a StrCI viewing s.
func BorrowCI(s string) StrCI {
	return StrCI{s: s}
}

// OwnCI returns a StrCI taking ownership of h.
func OwnCI(h *Handle) StrCI {
	return StrCI{h: h}
}

// Owned returns true if s holds a Handle.
func (s StrCI) Owned() bool {
	return s.h != nil
}

// String returns the content with its original case.
func (s StrCI) String() string {
	if s.h != nil {
		return s.h.text()
	}
	return s.s
}

// GoString returns the quoted content.
func (s StrCI) GoString() string {
	return strconv.Quote(s.String())
}

// Key returns the case-folded content, suitable as a Go map key.
func (s StrCI) Key() string {
	if s.h != nil {
		return s.h.folded()
	}
	return foldString(s.s)
}

// Take moves the handle out of s. It returns nil for a borrowed StrCI.
// After Take, s is a borrowed empty string.
func (s *StrCI) Take() *Handle {
	h := s.h
	*s = StrCI{}
	return h
}

// Equal reports whether s and other have the same content ignoring case.
func (s StrCI) Equal(other StrCI) bool {
	switch {
	case s.h != nil && other.h != nil:
		return s.h.Equal(other.h) || s.Key() == other.Key()
	case s.h != nil || other.h != nil:
		return s.Key() == other.Key()
	}
	return equalFold(s.s, other.s)
}

// EqualString reports whether s holds v ignoring case.
func (s StrCI) EqualString(v string) bool {
	return equalFold(s.String(), v)
}

// Compare compares the case-folded content of s and other.
func (s StrCI) Compare(other StrCI) int {
	if s.h == nil && other.h == nil {
		return compareFold(s.s, other.s)
	}
	return strings.Compare(s.Key(), other.Key())
}

// CompareString compares the case-folded content of s with v.
func (s StrCI) CompareString(v string) int {
	return compareFold(s.String(), v)
}

// Hash returns the hash of the case-folded content.
func (s StrCI) Hash() uint64 {
	if s.h != nil {
		return xxhash.Sum64String(s.h.folded())
	}
	return hashFold(s.s)
}

// Drop ends the life of s, see Str.Drop.
func (s StrCI) Drop() {
	if s.h != nil {
		s.h.Drop()
	}
}
