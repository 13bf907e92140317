// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern_test

import (
	"fmt"

	"github.com/open-policy-agent/intern/v1/intern"
)

func ExampleInterner() {
	interner := intern.New()

	// Equal strings share one canonical allocation
	a := interner.Acquire("policy")
	b := interner.Acquire("policy")
	fmt.Println(a.Equal(b), interner.Refs("policy"))

	// Every handle is given back exactly once
	interner.Release(a)
	interner.Release(b)
	fmt.Println(interner.Len())

	interner.Close()

	// Output:
	// true 2
	// 0
}

func ExampleHandle_FoldCase() {
	interner := intern.New()

	upper := interner.Acquire("Content-Type").FoldCase()
	lower := interner.Acquire("content-type").FoldCase()
	fmt.Println(upper.Equal(lower), upper.Handle().Equal(lower.Handle()))

	interner.Release(upper.Handle())
	interner.Release(lower.Handle())

	// Output: true false
}

func ExampleStr() {
	interner := intern.New()

	owned := intern.Own(interner.Acquire("user"))
	borrowed := intern.Borrow("user")
	fmt.Println(owned.Equal(borrowed), owned.Hash() == borrowed.Hash())

	// Take the handle back out to release it
	interner.ReleaseOptional(owned.Take())
	interner.ReleaseOptional(borrowed.Take())
	fmt.Println(interner.Len())

	// Output:
	// true true
	// 0
}
