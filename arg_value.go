// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import "strings"

// argValue looks for findArg in args and returns its value if pred accepts
// it. Both "--arg=value" and "--arg value" are recognized. The first
// accepted occurrence wins.
func argValue(args []string, findArg string, pred func(value string) bool) (string, bool) {
	for i := 0; i < len(args); i++ {
		key, value, hasValue := strings.Cut(args[i], "=")
		if key != findArg {
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				continue
			}
			// The value is consumed with the flag, so it is not inspected
			// as a flag itself.
			i++
			value = args[i]
		}
		if pred(value) {
			return value, true
		}
	}
	return "", false
}

func anyArg(value string) bool {
	return true
}

func hasArg(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}
