// Copyright 2019 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

const sysrootFlag = "--sysroot"

func hasSysrootFlag(args []string) bool {
	_, ok := argValue(args, sysrootFlag, anyArg)
	return ok
}

// processSysrootFlag returns a copy of args with the sysroot from the
// environment appended if it is set, unless the user already gave one. An
// empty value is still passed on. args itself is never modified so that
// each caller gets its own copy.
func processSysrootFlag(args []string, fromUser bool, sysroot string, sysrootSet bool) []string {
	finalArgs := make([]string, len(args), len(args)+2)
	copy(finalArgs, args)
	if sysrootSet && !fromUser {
		finalArgs = append(finalArgs, sysrootFlag, sysroot)
	}
	return finalArgs
}
