// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestFoldString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"lower", "lower"},
		{"UPPER", "upper"},
		{"MiXeD 123!", "mixed 123!"},
		{"Straße", "straße"},
		{"STRASSE", "strasse"},
		{"ΣΊΣΥΦΟΣ", "σίσυφοσ"},
		{"σίσυφος", "σίσυφοσ"},
		{"\u212a", "k"},
		{"\u017f", "s"},
		{"A\xffB", "a\xffb"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := foldString(tc.in); got != tc.want {
				t.Fatalf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFoldConsistency(t *testing.T) {
	values := []string{
		"", "a", "A", "b", "ab", "AB", "aB", "abc",
		"Straße", "STRASSE", "strasse", "\u212a", "k", "K",
		"ΣΊΣΥΦΟΣ", "σίσυφος", "zzz", strings.Repeat("Long", 40),
		"straße", "STRAßE", "\u017f", "S", "ǅ", "ǆ", "Ǆ",
	}

	for _, a := range values {
		for _, b := range values {
			eq := equalFold(a, b)
			if eq != strings.EqualFold(a, b) {
				t.Fatalf("equalFold(%q, %q) = %v, strings.EqualFold disagrees", a, b, eq)
			}
			if eq != (foldString(a) == foldString(b)) {
				t.Fatalf("equalFold(%q, %q) disagrees with folded equality", a, b)
			}
			if eq != (compareFold(a, b) == 0) {
				t.Fatalf("compareFold(%q, %q) disagrees with equalFold", a, b)
			}
			if c := compareFold(a, b); c != -compareFold(b, a) {
				t.Fatalf("compareFold(%q, %q) is not antisymmetric", a, b)
			}
			if eq && hashFold(a) != hashFold(b) {
				t.Fatalf("Expected equal hashes for %q and %q", a, b)
			}
		}
		if hashFold(a) != xxhash.Sum64String(foldString(a)) {
			t.Fatalf("hashFold(%q) differs from hash of folded string", a)
		}
	}
}

func TestFoldASCIIOrderMatchesFolded(t *testing.T) {
	values := []string{"apple", "Apple", "APPLE", "banana", "Bananas", "b", "", "_", "Z", "z", "["}

	for _, a := range values {
		for _, b := range values {
			want := strings.Compare(foldString(a), foldString(b))
			if got := compareFold(a, b); got != want {
				t.Fatalf("compareFold(%q, %q) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFoldKeepsRuneCount(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"straße", "STRASSE"},
		{"ß", "ss"},
		{"ﬁ", "fi"},
		{"İ", "i̇"},
	}

	for _, tc := range tests {
		t.Run(tc.a, func(t *testing.T) {
			if equalFold(tc.a, tc.b) || equalFold(tc.b, tc.a) {
				t.Fatalf("Expected %q and %q to differ under simple folding", tc.a, tc.b)
			}
			if compareFold(tc.a, tc.b) == 0 {
				t.Fatalf("Expected %q and %q to order apart", tc.a, tc.b)
			}
			if foldString(tc.a) == foldString(tc.b) {
				t.Fatalf("Expected distinct folded forms, both %q", foldString(tc.a))
			}
		})
	}
}
