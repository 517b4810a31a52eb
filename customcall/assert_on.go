// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build catalystdebug

package customcall

const debugAssertions = true
