// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Case-insensitive comparison uses locale-independent simple case folding,
// the relation strings.EqualFold implements: runes match when they share a
// unicode.SimpleFold orbit. Folding never changes the number of runes, so
// "ß" and "ss" stay distinct. Pure ASCII input takes a byte-wise path that
// produces the same result without allocating.

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// foldRune maps r to the canonical member of its simple folding orbit: the
// lower case form of the smallest rune in the orbit. Every rune of an orbit
// maps to the same value.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		return rune(lowerASCII(byte(r)))
	}

	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		lowest = min(lowest, f)
	}
	return unicode.ToLower(lowest)
}

// foldString returns the simple case-folded form of s. Bytes that are not
// valid UTF-8 are kept as is.
func foldString(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n == 1 {
			sb.WriteByte(s[0])
		} else {
			sb.WriteRune(foldRune(r))
		}
		s = s[n:]
	}
	return sb.String()
}

// equalFold reports whether a and b are equal after case folding.
func equalFold(a, b string) bool {
	if isASCII(a) && isASCII(b) {
		if len(a) != len(b) {
			return false
		}
		for i := 0; i < len(a); i++ {
			if lowerASCII(a[i]) != lowerASCII(b[i]) {
				return false
			}
		}
		return true
	}
	return foldString(a) == foldString(b)
}

// compareFold compares a and b after case folding.
func compareFold(a, b string) int {
	if isASCII(a) && isASCII(b) {
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
			if ca != cb {
				if ca < cb {
					return -1
				}
				return 1
			}
		}
		switch {
		case len(a) < len(b):
			return -1
		case len(a) > len(b):
			return 1
		}
		return 0
	}
	return strings.Compare(foldString(a), foldString(b))
}

// hashFold hashes the case-folded form of s. The result equals
// xxhash.Sum64String(foldString(s)).
func hashFold(s string) uint64 {
	if !isASCII(s) {
		return xxhash.Sum64String(foldString(s))
	}

	var buf [64]byte
	d := xxhash.New()
	for len(s) > 0 {
		n := min(len(s), len(buf))
		for i := 0; i < n; i++ {
			buf[i] = lowerASCII(s[i])
		}
		_, _ = d.Write(buf[:n])
		s = s[n:]
	}
	return d.Sum64()
}
