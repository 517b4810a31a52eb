// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"fmt"
	"strings"
)

// Per-matrix status codes written to the info outputs. Positive values other
// than StatusNotConverged are backend specific; the LU kernels report the
// one-based index of the first zero pivot.
const (
	StatusOK              int32 = 0
	StatusNotConverged    int32 = 1
	StatusIllegalArgument int32 = -1
)

// runElement runs fn for element i of a batch processed by kernel and
// returns its status. Parameter panics raised by the BLAS and LAPACK backends
// are turned into StatusIllegalArgument so that one bad element does not
// abort the batch; any other panic is propagated.
func runElement(kernel string, i int, fn func() int32) (status int32) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		msg, ok := backendPanic(r)
		if !ok {
			panic(r)
		}
		l := logger()
		l.Error().Str("kernel", kernel).Int("element", i).Str("panic", msg).Msg("illegal backend argument")
		status = StatusIllegalArgument
	}()

	status = fn()
	if status != StatusOK {
		l := logger()
		l.Debug().Str("kernel", kernel).Int("element", i).Int32("status", status).Msg("numerical failure")
	}
	return status
}

// backendPanic reports whether r is a parameter panic from gonum's blas or
// lapack packages and returns its message.
func backendPanic(r any) (string, bool) {
	var msg string
	switch v := r.(type) {
	case string:
		msg = v
	case error:
		msg = v.Error()
	default:
		return fmt.Sprint(r), false
	}
	return msg, strings.HasPrefix(msg, "lapack: ") || strings.HasPrefix(msg, "blas: ")
}
