// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"errors"
	"fmt"
)

const (
	// NotFoundErr indicates a released handle has no entry in the interner.
	NotFoundErr = "intern_not_found_error"

	// ReleasedErr indicates a handle was used after it was released.
	ReleasedErr = "intern_released_error"

	// ForeignHandleErr indicates a handle was released into an interner
	// other than the one that issued it.
	ForeignHandleErr = "intern_foreign_handle_error"

	// LeakErr indicates a handle reached the end of its life without being
	// released.
	LeakErr = "intern_leak_error"

	// ClosedErr indicates the interner was used after Close.
	ClosedErr = "intern_closed_error"
)

// Error is the error type raised by the interner. All of these are
// programmer errors: the interner raises them with panic and they are not
// meant to be recovered in production code.
type Error struct {
	Code    string
	Message string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v: %v", err.Code, err.Message)
}

// IsNotFound returns true if err is a NotFoundErr.
func IsNotFound(err error) bool {
	return hasCode(err, NotFoundErr)
}

// IsLeak returns true if err is a LeakErr.
func IsLeak(err error) bool {
	return hasCode(err, LeakErr)
}

// IsReleased returns true if err is a ReleasedErr.
func IsReleased(err error) bool {
	return hasCode(err, ReleasedErr)
}

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

var (
	errNotFound = &Error{Code: NotFoundErr, Message: "interned value not found"}
	errReleased = &Error{Code: ReleasedErr, Message: "use of released interned value"}
	errForeign  = &Error{Code: ForeignHandleErr, Message: "interned value released into foreign interner"}
	errClosed   = &Error{Code: ClosedErr, Message: "interner is closed"}
)

func leakError(msg string) *Error {
	return &Error{Code: LeakErr, Message: msg}
}
