// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

func callDriver(env env, cfg *config, args []string) int {
	exitCode, driverErr := callDriverInternal(env, cfg, args)
	if driverErr != nil {
		printDriverError(env.stderr(), driverErr)
		exitCode = 1
	}
	return exitCode
}

func callDriverInternal(env env, cfg *config, args []string) (exitCode int, err error) {
	deps := newDependencySet()
	trackExtraArgs(env, cfg, deps)
	trackFiles(env, cfg, deps)

	decision := decideDispatch(env, cfg, args)
	log.Debug("dispatch", "decision", decision.kind, "args", decision.args)

	var cmd *command
	switch decision.kind {
	case exitEarly:
		return decision.exitCode, nil
	case forwardToCompiler:
		cmd = &command{
			path: decision.args[0],
			args: userArgs(decision.args),
		}
	case runAnalysis:
		if cmd, err = calcAnalysisCommand(env, cfg, deps, decision); err != nil {
			return 0, err
		}
	default:
		return 0, newErrorwithSourceLocf("unknown dispatch decision %d", decision.kind)
	}

	log.Debug("dependencies", "files", deps.sortedFiles(), "env", deps.sortedEnvKeys())
	if err := writeDepInfo(env, cfg, deps); err != nil {
		return 0, err
	}
	env = processPrintCmdlineEnv(env, cfg)
	log.Debug("exec", "path", cmd.path, "args", cmd.args)
	// Note: The process env replaces the driver with the compiler, so this
	// only returns on failure or when env does not really exec.
	return wrapSubprocessErrorWithSourceLoc(cmd, env.exec(cmd))
}

func printDriverError(writer io.Writer, driverErr error) {
	if _, ok := driverErr.(userError); ok {
		fmt.Fprintf(writer, "%s\n", driverErr)
	} else {
		fmt.Fprintf(writer, "Internal error in lint_driver.\n%s\n", driverErr)
	}
}
