// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import "unsafe"

// stage prepares dst as the working copy of src for a routine that works in
// place. When dst and src start at the same address the caller has asked for
// the operation to happen in place and nothing is copied.
func stage[T any](dst, src []T) {
	if len(src) == 0 {
		return
	}
	if unsafe.SliceData(dst) == unsafe.SliceData(src) {
		return
	}
	copy(dst, src)
}
