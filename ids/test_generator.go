// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"github.com/stakevault/stakevaultgo/utils"
	"github.com/stakevault/stakevaultgo/utils/hashing"
)

// GenerateTestID returns a new ID that should only be used for testing
func GenerateTestID() ID {
	return hashing.ComputeHash256Array(utils.RandomBytes(IDLen))
}

// GenerateTestShortID returns a new ID that should only be used for testing
func GenerateTestShortID() ShortID {
	newID := GenerateTestID()
	newShortID, _ := ToShortID(newID[:ShortIDLen])
	return newShortID
}

// GenerateTestPolicyID returns a new ID that should only be used for testing
func GenerateTestPolicyID() PolicyID {
	return PolicyID(GenerateTestShortID())
}
