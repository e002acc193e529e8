// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"mvdan.cc/sh/v3/shell"
)

const noDepsArg = "--no-deps"

// parseExtraArgs splits the extra analysis arguments with shell quoting
// rules. Variable references are resolved against env and tracked in deps,
// since they change the command just like the extra arguments do. Command
// substitutions are rejected.
func parseExtraArgs(env env, cfg *config, deps *dependencySet) (args []string, noDeps bool, err error) {
	value, ok := env.getenv(cfg.extraArgsEnvVar)
	if !ok || value == "" {
		return nil, false, nil
	}
	fields, err := shell.Fields(value, func(name string) string {
		deps.trackEnv(env, name)
		v, _ := env.getenv(name)
		return v
	})
	if err != nil {
		return nil, false, newUserErrorf("failed to parse %s=%q: %s", cfg.extraArgsEnvVar, value, err)
	}
	for _, field := range fields {
		if field == noDepsArg {
			noDeps = true
			continue
		}
		args = append(args, field)
	}
	return args, noDeps, nil
}

// calcAnalysisCommand builds the compiler invocation for a runAnalysis
// decision. Dependencies of the primary package are compiled without
// analysis when --no-deps was requested.
func calcAnalysisCommand(env env, cfg *config, deps *dependencySet, decision dispatchDecision) (*command, error) {
	extraArgs, noDeps, err := parseExtraArgs(env, cfg, deps)
	if err != nil {
		return nil, err
	}
	noDeps = noDeps || decision.noDeps

	builder := newCommandBuilder(cfg, cfg.compilerName, userArgs(decision.args))
	if _, isPrimary := env.getenv(cfg.primaryPackageEnvVar); noDeps && !isPrimary {
		return builder.build(), nil
	}

	lintCfg, err := loadLintConfig(env, cfg, deps)
	if err != nil {
		return nil, err
	}
	processCfgFlag(builder)
	builder.addPostUserArgs(lintCfg.levelArgs()...)
	builder.addPostUserArgs(lintCfg.ExtraArgs...)
	builder.addPostUserArgs(extraArgs...)
	return builder.build(), nil
}

func processCfgFlag(builder *commandBuilder) {
	builder.addPostUserArgs("--cfg", builder.cfg.cfgName)
}

// userArgs drops the program name from an argument vector.
func userArgs(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}
