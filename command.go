// Copyright 2019 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"os"
	"os/exec"
)

type command struct {
	path string
	args []string
}

// newProcessArgs returns the argument vector of the driver, including the
// program name at index 0.
func newProcessArgs() []string {
	return append([]string(nil), os.Args...)
}

func newExecCmd(env env, cmd *command) (*exec.Cmd, error) {
	execCmd := exec.Command(cmd.path, cmd.args...)
	if execCmd.Err != nil {
		return nil, wrapErrorwithSourceLocf(execCmd.Err, "failed to find %s", cmd.path)
	}
	execCmd.Env = env.environ()
	execCmd.Dir = env.getwd()
	return execCmd, nil
}

type commandBuilder struct {
	path     string
	userArgs []string
	postArgs []string
	cfg      *config
}

func newCommandBuilder(cfg *config, path string, userArgs []string) *commandBuilder {
	return &commandBuilder{
		path:     path,
		userArgs: append([]string(nil), userArgs...),
		cfg:      cfg,
	}
}

// User arguments always come first and keep their order.
func (builder *commandBuilder) addPostUserArgs(args ...string) {
	builder.postArgs = append(builder.postArgs, args...)
}

func (builder *commandBuilder) build() *command {
	cmdArgs := make([]string, 0, len(builder.userArgs)+len(builder.postArgs))
	cmdArgs = append(cmdArgs, builder.userArgs...)
	cmdArgs = append(cmdArgs, builder.postArgs...)
	return &command{
		path: builder.path,
		args: cmdArgs,
	}
}
