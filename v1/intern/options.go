// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/open-policy-agent/intern/v1/intern/arena"
)

// Opt is a configuration option for the interner.
type Opt func(*Interner)

// WithLogger sets the logger used for diagnostics. Entry creation and
// removal are logged at debug level, leaks at error level.
func WithLogger(logger logrus.FieldLogger) Opt {
	return func(i *Interner) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithRegisterer registers the interner metrics with reg. Use
// prometheus.WrapRegistererWith to distinguish several interners on one
// registry.
func WithRegisterer(reg prometheus.Registerer) Opt {
	return func(i *Interner) {
		if reg != nil {
			i.metrics.register(reg)
		}
	}
}

// WithCapacity pre-sizes the lookup table for n distinct strings.
func WithCapacity(n int) Opt {
	return func(i *Interner) {
		if n > 0 {
			i.index = make(map[string]*arena.Slot, n)
		}
	}
}

// WithMaxSegments bounds the canonical allocations to n segments of
// arena.SegmentSize values each. Acquiring a new value once the bound is
// reached panics. The default is arena.MaxSegments.
func WithMaxSegments(n int) Opt {
	return func(i *Interner) {
		if n > 0 {
			i.arena = arena.New(arena.WithMaxSegments(n))
		}
	}
}

// WithLeakTracking attaches a GC cleanup to every handle and reports
// handles that become unreachable without having been released. Reports
// are asynchronous and depend on garbage collection; Handle.Drop and
// Interner.Close are the deterministic checks.
func WithLeakTracking() Opt {
	return func(i *Interner) {
		i.trackLeaks = true
	}
}

// WithLeakHandler sets the function called for every leaked handle found by
// leak tracking. It runs on the runtime cleanup goroutine and must not
// touch the interner. The default logs the leak at error level.
func WithLeakHandler(fn func(Leak)) Opt {
	return func(i *Interner) {
		if fn != nil {
			i.onLeak = fn
		}
	}
}
