// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// lint_driver sits between a build tool and the compiler. It either forwards
// the invocation to the compiler, runs the compiler with additional lint
// arguments, or exits early for version and help queries.
//
// This binary supports the following linker variables:
//   - main.DevBuild: Whether to track the driver executable as a build
//     dependency. Useful while developing the driver.
//   - main.CompilerName: Conventional name of the wrapped compiler.
//
// E.g. go build -ldflags '-X main.DevBuild=true' builds a development binary.
//
// Runtime environment:
//   - SYSROOT: sysroot passed as --sysroot unless one is given.
//   - LINT_DRIVER_ARGS: extra analysis arguments, split like a shell would.
//   - LINT_DRIVER_CONF_DIR: directory containing lint_driver.toml.
//   - LINT_DRIVER_DEP_INFO: where to write the tracked dependencies.
//   - LINT_DRIVER_PRINT_CMDLINE: print the compiler command to stderr.
//   - LINT_DRIVER_LOG: log level (debug, info, warn, error).
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

const logLevelEnvVar = "LINT_DRIVER_LOG"

func main() {
	env, err := newProcessEnv()
	if err != nil {
		log.Fatal(err)
	}
	setupLogging(env)
	cfg, err := getRealConfig()
	if err != nil {
		log.Fatal(err)
	}
	// Note: callDriver will exec the compiler. Only in case of an error or
	// an early exit will this os.Exit be called.
	os.Exit(callDriver(env, cfg, newProcessArgs()))
}

func setupLogging(env env) {
	log.SetOutput(env.stderr())
	log.SetReportTimestamp(false)
	log.SetPrefix("lint_driver")
	log.SetLevel(log.WarnLevel)
	if value, ok := env.getenv(logLevelEnvVar); ok {
		if level, err := log.ParseLevel(value); err == nil {
			log.SetLevel(level)
		}
	}
}
