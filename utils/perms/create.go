// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

import "os"

// Create opens [filename] and ensures that it has [perm] permissions
func Create(filename string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
}
