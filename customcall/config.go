// Copyright ©2026 The Catalyst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package customcall

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvWorkers  = "CATALYST_LAPACK_WORKERS"
	EnvLogLevel = "CATALYST_LAPACK_LOG"
)

// Config holds the settings shared by all kernels.
type Config struct {
	// Workers is the number of goroutines a kernel may use to process the
	// elements of a batch. Values below 2 process the batch sequentially on
	// the calling goroutine.
	Workers int

	// LogLevel is the minimum level of the messages written by the package
	// logger. zerolog.Disabled turns logging off.
	LogLevel zerolog.Level
}

// DefaultConfig returns the configuration used when the environment sets
// nothing: sequential batches and no logging.
func DefaultConfig() Config {
	return Config{Workers: 1, LogLevel: zerolog.Disabled}
}

// ConfigFromEnv returns DefaultConfig overridden by the CATALYST_LAPACK_WORKERS
// and CATALYST_LAPACK_LOG environment variables. A value that cannot be parsed
// leaves the default in place and is reported in the returned error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var errs []string

	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q: not an integer", EnvWorkers, v))
		} else {
			cfg.Workers = max(1, w)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q: %v", EnvLogLevel, v, err))
		} else {
			cfg.LogLevel = l
		}
	}

	if errs != nil {
		return cfg, fmt.Errorf("customcall: bad environment: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

var config atomic.Pointer[Config]

// Configure installs cfg for all subsequent kernel calls. Calls already in
// progress keep the configuration they started with.
func Configure(cfg Config) {
	cfg.Workers = max(1, cfg.Workers)
	config.Store(&cfg)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return *config.Load()
}

func init() {
	cfg, err := ConfigFromEnv()
	Configure(cfg)
	if err != nil {
		// Written regardless of the configured level.
		l := defaultLogger()
		l.Warn().Err(err).Msg("ignoring invalid settings")
	}
}
