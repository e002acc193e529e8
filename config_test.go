// Copyright 2019 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"testing"
)

func TestRealConfigDefaults(t *testing.T) {
	cfg, err := getRealConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.compilerName != "rustc" || cfg.passthroughFlag != "--rustc" {
		t.Errorf("unexpected compiler config: %+v", cfg)
	}
	if cfg.trackDriverExecutable {
		t.Errorf("expected release builds not to track the driver executable")
	}
}

func TestDevBuildTracksExecutable(t *testing.T) {
	if cfg := getDefaultConfig( /*devBuild=*/ true); !cfg.trackDriverExecutable {
		t.Errorf("expected dev builds to track the driver executable")
	}
}

func TestPassthroughFlagFollowsCompilerName(t *testing.T) {
	withTestContext(t, func(ctx *testContext) {
		ctx.cfg.compilerName = "clippy-rustc"
		ctx.cfg.passthroughFlag = "--clippy-rustc"
		decision := decideDispatch(ctx, ctx.cfg, []string{driverPath, "/bin/clippy-rustc", mainRs})
		if decision.kind != runAnalysis || len(decision.args) != 2 {
			t.Errorf("expected wrapper mode for the configured compiler. Got: %+v", decision)
		}
		decision = decideDispatch(ctx, ctx.cfg, []string{driverPath, "--clippy-rustc", mainRs})
		if decision.kind != forwardToCompiler || decision.args[0] != "clippy-rustc" {
			t.Errorf("expected passthrough for the configured compiler. Got: %+v", decision)
		}
	})
}
