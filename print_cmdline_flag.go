// Copyright 2019 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

func processPrintCmdlineEnv(env env, cfg *config) env {
	if value, _ := env.getenv(cfg.printCmdlineEnvVar); value != "" {
		return &printingEnv{env}
	}
	return env
}
