// Copyright 2019 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

type env interface {
	getenv(key string) (string, bool)
	environ() []string
	getwd() string
	executable() (string, error)
	stat(path string) (fs.FileInfo, error)
	stderr() io.Writer
	exec(cmd *command) error
}

type processEnv struct {
	wd string
}

func newProcessEnv() (env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, wrapErrorwithSourceLocf(err, "failed to read working directory")
	}
	return &processEnv{wd: wd}, nil
}

var _ env = (*processEnv)(nil)

func (env *processEnv) getenv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (env *processEnv) environ() []string {
	return os.Environ()
}

func (env *processEnv) getwd() string {
	return env.wd
}

func (env *processEnv) executable() (string, error) {
	return os.Executable()
}

func (env *processEnv) stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (env *processEnv) stderr() io.Writer {
	return os.Stderr
}

func (env *processEnv) exec(cmd *command) error {
	execCmd, err := newExecCmd(env, cmd)
	if err != nil {
		return err
	}
	return unix.Exec(execCmd.Path, execCmd.Args, execCmd.Env)
}

type printingEnv struct {
	env
}

var _ env = (*printingEnv)(nil)

func (env *printingEnv) exec(cmd *command) error {
	printCmd(env, cmd)
	return env.env.exec(cmd)
}

func printCmd(env env, cmd *command) {
	fmt.Fprintf(env.stderr(), "cd '%s' &&", env.getwd())
	fmt.Fprintf(env.stderr(), " '%s'", cmd.path)
	if len(cmd.args) > 0 {
		fmt.Fprintf(env.stderr(), " '%s'", strings.Join(cmd.args, "' '"))
	}
	io.WriteString(env.stderr(), "\n")
}
