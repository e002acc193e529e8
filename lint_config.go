// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// lintConfig is the project lint configuration, e.g.
//
//	extra_args = ["-Zunstable-options"]
//
//	[lints]
//	allow = ["dead_code"]
//	warn = ["unused_results"]
//	deny = ["unsafe_code"]
type lintConfig struct {
	ExtraArgs []string   `toml:"extra_args"`
	Lints     lintLevels `toml:"lints"`
}

type lintLevels struct {
	Allow  []string `toml:"allow"`
	Warn   []string `toml:"warn"`
	Deny   []string `toml:"deny"`
	Forbid []string `toml:"forbid"`
}

func lintConfigDir(env env, cfg *config) string {
	dir, ok := env.getenv(cfg.confDirEnvVar)
	if !ok || dir == "" {
		return env.getwd()
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(env.getwd(), dir)
	}
	return dir
}

// loadLintConfig reads the lint config and registers it in deps. A missing
// file yields an empty config.
func loadLintConfig(env env, cfg *config, deps *dependencySet) (*lintConfig, error) {
	deps.trackEnv(env, cfg.confDirEnvVar)

	path := filepath.Join(lintConfigDir(env, cfg), cfg.lintConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &lintConfig{}, nil
		}
		return nil, wrapErrorwithSourceLocf(err, "failed to read %s", path)
	}
	deps.trackFile(path)

	lintCfg := &lintConfig{}
	md, err := toml.Decode(string(data), lintCfg)
	if err != nil {
		return nil, newUserErrorf("error reading %s: %s", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, newUserErrorf("error reading %s: unknown key %q", path, undecoded[0].String())
	}
	return lintCfg, nil
}

func (lintCfg *lintConfig) levelArgs() []string {
	var args []string
	for _, level := range []struct {
		flag  string
		lints []string
	}{
		{"-A", lintCfg.Lints.Allow},
		{"-W", lintCfg.Lints.Warn},
		{"-D", lintCfg.Lints.Deny},
		{"-F", lintCfg.Lints.Forbid},
	} {
		for _, lint := range level.lints {
			args = append(args, level.flag, lint)
		}
	}
	return args
}
