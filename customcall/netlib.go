// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && netlib

package customcall

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/netlib/blas/netlib"
)

// Route BLAS calls through the system CBLAS (OpenBLAS, Accelerate, ...).
// The complex LU factorization of lapack/gonum picks this up through
// cblas128 as well.
func init() {
	blas64.Use(netlib.Implementation{})
	cblas128.Use(netlib.Implementation{})
	backendName = "netlib"
	l := logger()
	l.Debug().Str("backend", backendName).Msg("registered BLAS implementation")
}
