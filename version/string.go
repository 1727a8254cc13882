// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

var (
	// GitCommit is set in the build script at compile time
	GitCommit string

	// String is displayed when CLI arg --version is used
	String string
)

func init() {
	format := "%s"
	args := []interface{}{Current}
	if GitCommit != "" {
		format += " [commit=%s]"
		args = append(args, GitCommit)
	}
	String = fmt.Sprintf(format+"\n", args...)
}
