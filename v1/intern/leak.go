// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Leak describes a handle that became unreachable without being released.
type Leak struct {
	Value string
}

// leakReport is the cleanup argument. It must not reference the handle,
// otherwise the handle would never become unreachable.
type leakReport struct {
	value   string
	onLeak  func(Leak)
	metrics *metrics
}

func reportLeak(r leakReport) {
	r.metrics.leaks.Inc()
	r.onLeak(Leak{Value: r.value})
}

func (i *Interner) track(h *Handle) {
	h.cleanup = runtime.AddCleanup(h, reportLeak, leakReport{
		value:   h.slot.Text(),
		onLeak:  i.onLeak,
		metrics: i.metrics,
	})
	h.tracked = true
}

func (h *Handle) untrack() {
	if h.tracked {
		h.cleanup.Stop()
		h.tracked = false
	}
}

func defaultLeakHandler(logger logrus.FieldLogger) func(Leak) {
	return func(l Leak) {
		logger.WithField("value", l.Value).Error("Interned handle garbage collected without release.")
	}
}
