// Copyright 2019 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
)

type config struct {
	// Conventional name of the real compiler. Used to invoke it and to
	// detect wrapper mode.
	compilerName string
	// Flag that turns the driver into a plain compiler invocation.
	passthroughFlag string
	// Name passed as --cfg to analysis builds.
	cfgName string
	// Environment variable holding an override sysroot.
	sysrootEnvVar string
	// Environment variable holding extra analysis arguments.
	extraArgsEnvVar string
	// Environment variable overriding the directory of the lint config.
	confDirEnvVar string
	// Environment variable naming the dep-info output file.
	depInfoEnvVar string
	// Environment variable set by the build tool for workspace members.
	primaryPackageEnvVar string
	// Environment variable enabling command printing.
	printCmdlineEnvVar string
	// Manifest of the project, relative to the working directory.
	manifestFile string
	// Lint configuration file name.
	lintConfigFile string
	// Whether to track the driver executable itself.
	trackDriverExecutable bool
}

// DevBuild can be set via a linker flag.
// Value will be passed to strconv.ParseBool.
// E.g. go build -ldflags '-X main.DevBuild=true'.
var DevBuild = "false"

// CompilerName can be set via a linker flag to wrap a compiler with a
// different conventional name.
var CompilerName = ""

// Returns the configuration matching DevBuild and CompilerName.
func getRealConfig() (*config, error) {
	devBuild, err := strconv.ParseBool(DevBuild)
	if err != nil {
		return nil, fmt.Errorf("parse error for DevBuild: %s", err)
	}
	cfg := getDefaultConfig(devBuild)
	if CompilerName != "" {
		cfg.compilerName = CompilerName
		cfg.passthroughFlag = "--" + CompilerName
	}
	return cfg, nil
}

func getDefaultConfig(devBuild bool) *config {
	return &config{
		compilerName:          "rustc",
		passthroughFlag:       "--rustc",
		cfgName:               "lint_driver",
		sysrootEnvVar:         "SYSROOT",
		extraArgsEnvVar:       "LINT_DRIVER_ARGS",
		confDirEnvVar:         "LINT_DRIVER_CONF_DIR",
		depInfoEnvVar:         "LINT_DRIVER_DEP_INFO",
		primaryPackageEnvVar:  "CARGO_PRIMARY_PACKAGE",
		printCmdlineEnvVar:    "LINT_DRIVER_PRINT_CMDLINE",
		manifestFile:          "Cargo.toml",
		lintConfigFile:        "lint_driver.toml",
		trackDriverExecutable: devBuild,
	}
}
