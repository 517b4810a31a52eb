// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var baseLogger atomic.Pointer[zerolog.Logger]

func init() {
	l := defaultLogger()
	baseLogger.Store(&l)
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", "customcall").Logger()
}

// SetLogger replaces the destination of the package's log messages. The
// level is still taken from Config.LogLevel.
func SetLogger(l zerolog.Logger) {
	baseLogger.Store(&l)
}

// logger returns the package logger at the configured level.
func logger() zerolog.Logger {
	return baseLogger.Load().Level(CurrentConfig().LogLevel)
}
