// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"
)

type dispatchKind int32

const (
	forwardToCompiler dispatchKind = iota
	runAnalysis
	exitEarly
)

func (kind dispatchKind) String() string {
	switch kind {
	case forwardToCompiler:
		return "forward"
	case runAnalysis:
		return "analysis"
	case exitEarly:
		return "exit"
	default:
		return "unknown"
	}
}

// dispatchDecision is the outcome of decideDispatch. args is the full
// argument vector to hand on, with the program name at index 0. It is only
// set for forwardToCompiler and runAnalysis; exitCode only for exitEarly.
type dispatchDecision struct {
	kind     dispatchKind
	args     []string
	noDeps   bool
	exitCode int
}

// decideDispatch decides what to do with the driver arguments. It only
// reads from env and never modifies args.
func decideDispatch(env env, cfg *config, args []string) dispatchDecision {
	origArgs := append([]string(nil), args...)
	// Computed before anything is removed from the arguments.
	hasSysrootArg := hasSysrootFlag(origArgs)
	sysrootEnv, sysrootSet := env.getenv(cfg.sysrootEnvVar)
	withSysroot := func(args []string) []string {
		return processSysrootFlag(args, hasSysrootArg, sysrootEnv, sysrootSet)
	}

	// "driver --rustc ..." behaves like the compiler, e.g.
	// "driver --rustc --version" prints the compiler version.
	if pos := indexOfArg(origArgs, cfg.passthroughFlag); pos >= 0 {
		origArgs = append(origArgs[:pos], origArgs[pos+1:]...)
		if len(origArgs) == 0 {
			origArgs = []string{cfg.compilerName}
		} else {
			origArgs[0] = cfg.compilerName
		}
		return dispatchDecision{
			kind: forwardToCompiler,
			args: withSysroot(origArgs),
		}
	}

	if hasArg(origArgs, "--version", "-V") {
		return dispatchDecision{kind: exitEarly, exitCode: 0}
	}

	// Build tools that support compiler wrappers pass the compiler path as
	// the first argument. The driver invokes the compiler itself, so the
	// path is dropped.
	wrapperMode := len(origArgs) > 1 && fileStem(origArgs[1]) == cfg.compilerName
	if wrapperMode {
		origArgs = append(origArgs[:1], origArgs[2:]...)
	}

	if !wrapperMode && (hasArg(origArgs, "--help", "-h") || len(origArgs) == 1) {
		return dispatchDecision{kind: exitEarly, exitCode: 0}
	}

	return dispatchDecision{
		kind:   runAnalysis,
		args:   withSysroot(origArgs),
		noDeps: false,
	}
}

func indexOfArg(args []string, name string) int {
	for i, arg := range args {
		if arg == name {
			return i
		}
	}
	return -1
}

func fileStem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if strings.HasPrefix(base, ".") && strings.Count(base, ".") == 1 {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
