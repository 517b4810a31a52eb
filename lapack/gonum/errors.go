// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonum

// Panic strings use the same wording as gonum.org/v1/gonum/lapack/gonum.
const (
	// Panic strings for bad enumeration values.
	absIncNotOne = "lapack: increment not one or negative one"

	// Panic strings for bad numerical and string values.
	badK1 = "lapack: k1 out of range"
	badK2 = "lapack: k2 out of range"
	mLT0  = "lapack: m < 0"
	nLT0  = "lapack: n < 0"

	// Panic strings for bad leading dimensions of matrices.
	badLdA = "lapack: bad leading dimension of A"

	// Panic strings for bad lengths of input slices.
	badLenIpiv = "lapack: bad length of ipiv"
	shortA     = "lapack: insufficient length of a"
)
