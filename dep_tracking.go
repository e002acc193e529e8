// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// envDep is the captured value of a tracked environment variable. An unset
// variable is tracked too, so that setting it later invalidates the build.
type envDep struct {
	value string
	set   bool
}

// dependencySet accumulates the inputs the driver looked at. Entries are
// only ever inserted; the first insert for a name wins.
type dependencySet struct {
	envVars map[string]envDep
	files   map[string]bool
}

func newDependencySet() *dependencySet {
	return &dependencySet{
		envVars: map[string]envDep{},
		files:   map[string]bool{},
	}
}

func (deps *dependencySet) trackEnv(env env, key string) {
	if _, ok := deps.envVars[key]; ok {
		return
	}
	value, set := env.getenv(key)
	deps.envVars[key] = envDep{value: value, set: set}
}

func (deps *dependencySet) trackFile(path string) {
	deps.files[path] = true
}

func (deps *dependencySet) sortedEnvKeys() []string {
	keys := make([]string, 0, len(deps.envVars))
	for key := range deps.envVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (deps *dependencySet) sortedFiles() []string {
	files := make([]string, 0, len(deps.files))
	for file := range deps.files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// trackExtraArgs records the extra analysis arguments so that the build tool
// reruns the driver when they change.
func trackExtraArgs(env env, cfg *config, deps *dependencySet) {
	deps.trackEnv(env, cfg.extraArgsEnvVar)
}

// trackFiles records files that may be read at runtime. Failures to look
// them up mean the file is simply not tracked.
func trackFiles(env env, cfg *config, deps *dependencySet) {
	// The build tool runs the driver in the manifest directory, so a
	// relative path is fine.
	if _, err := env.stat(filepath.Join(env.getwd(), cfg.manifestFile)); err == nil {
		deps.trackFile(cfg.manifestFile)
	}

	// The lint config registers itself when it is loaded.

	// Track the driver itself in development builds so that rebuilding it
	// reruns the driver.
	if cfg.trackDriverExecutable {
		if exe, err := env.executable(); err == nil && exe != "" {
			deps.trackFile(exe)
		} else if err != nil {
			log.Debugf("not tracking driver executable: %v", err)
		}
	}
}
