// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Str holds either a borrowed string or an owned Handle. It lets callers
// pass strings around without forcing them to be interned.
//
// Equality, ordering and hashing look only at the content: a borrowed "foo"
// and an owned handle to "foo" are equal. An owned Str inherits the release
// obligation of its handle; use Take to get the handle back for Release.
//
// The zero value is a borrowed empty string.
type Str struct {
	s string
	h *Handle
}

// Borrow returns a Str viewing s. It carries no release obligation.
func Borrow(s string) Str {
	return Str{s: s}
}

// Own returns a Str taking ownership of h.
func Own(h *Handle) Str {
	return Str{h: h}
}

// Owned returns true if s holds a Handle.
func (s Str) Owned() bool {
	return s.h != nil
}

// String returns the content.
func (s Str) String() string {
	if s.h != nil {
		return s.h.text()
	}
	return s.s
}

// GoString returns the quoted content.
func (s Str) GoString() string {
	return strconv.Quote(s.String())
}

// Take moves the handle out of s. It returns nil for a borrowed Str. After
// Take, s is a borrowed empty string.
func (s *Str) Take() *Handle {
	h := s.h
	*s = Str{}
	return h
}

// FoldCase moves the content of s into a case-insensitive StrCI. After
// FoldCase, s is a borrowed empty string.
func (s *Str) FoldCase() StrCI {
	out := StrCI{s: s.s, h: s.h}
	*s = Str{}
	return out
}

// Equal reports whether s and other have the same content.
func (s Str) Equal(other Str) bool {
	if s.h != nil && other.h != nil && s.h.owner == other.h.owner {
		return s.h.Equal(other.h)
	}
	return s.String() == other.String()
}

// EqualString reports whether s holds v.
func (s Str) EqualString(v string) bool {
	return s.String() == v
}

// Compare compares the content of s and other.
func (s Str) Compare(other Str) int {
	return strings.Compare(s.String(), other.String())
}

// CompareString compares the content of s with v.
func (s Str) CompareString(v string) int {
	return strings.Compare(s.String(), v)
}

// Hash returns the hash of the content.
func (s Str) Hash() uint64 {
	return xxhash.Sum64String(s.String())
}

// Drop ends the life of s. Dropping an owned Str whose handle was not
// released panics with LeakErr, see Handle.Drop.
func (s Str) Drop() {
	if s.h != nil {
		s.h.Drop()
	}
}
