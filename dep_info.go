// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// writeDepInfo writes deps as a make style dep-info file to the path given
// by the dep-info environment variable. Nothing is written if it is unset.
//
//	out.d: Cargo.toml lint_driver.toml
//
//	Cargo.toml:
//	lint_driver.toml:
//
//	# env-dep:LINT_DRIVER_ARGS=-Wfoo
func writeDepInfo(env env, cfg *config, deps *dependencySet) error {
	out, ok := env.getenv(cfg.depInfoEnvVar)
	if !ok || out == "" {
		return nil
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(env.getwd(), out)
	}
	log.Debugf("writing dep-info to %s", out)
	if err := os.WriteFile(out, formatDepInfo(out, deps), 0644); err != nil {
		return wrapErrorwithSourceLocf(err, "failed to write dep-info")
	}
	return nil
}

func formatDepInfo(target string, deps *dependencySet) []byte {
	var buf bytes.Buffer
	files := deps.sortedFiles()
	buf.WriteString(escapeDepPath(target))
	buf.WriteByte(':')
	for _, file := range files {
		buf.WriteByte(' ')
		buf.WriteString(escapeDepPath(file))
	}
	buf.WriteString("\n\n")
	for _, file := range files {
		fmt.Fprintf(&buf, "%s:\n", escapeDepPath(file))
	}
	if len(files) > 0 {
		buf.WriteByte('\n')
	}
	for _, key := range deps.sortedEnvKeys() {
		dep := deps.envVars[key]
		if dep.set {
			fmt.Fprintf(&buf, "# env-dep:%s=%s\n", key, escapeDepEnv(dep.value))
		} else {
			fmt.Fprintf(&buf, "# env-dep:%s\n", key)
		}
	}
	return buf.Bytes()
}

var depPathReplacer = strings.NewReplacer(" ", `\ `, "#", `\#`, "$", "$$")

func escapeDepPath(path string) string {
	return depPathReplacer.Replace(path)
}

func escapeDepEnv(value string) string {
	return strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`).Replace(value)
}
