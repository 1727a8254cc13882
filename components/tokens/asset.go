// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokens

import (
	"errors"
	"fmt"

	"github.com/stakevault/stakevaultgo/components/verify"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/utils"
)

const nullStr = "null"

var (
	errEmptyPolicy   = errors.New("asset names the empty policy")
	errMissingQuotes = errors.New("first and last characters should be quotes")

	_ verify.Verifiable     = Asset{}
	_ utils.Sortable[Asset] = Asset{}
)

// Asset identifies a fungible token by the minting policy that created it
// and the name that policy gave it.
type Asset struct {
	Policy ids.PolicyID `serialize:"true" json:"policy"`
	Name   TokenName    `serialize:"true" json:"name"`
}

func NewAsset(policy ids.PolicyID, name TokenName) Asset {
	return Asset{
		Policy: policy,
		Name:   name,
	}
}

func (a Asset) Verify() error {
	switch {
	case a.Policy == ids.EmptyPolicyID:
		return errEmptyPolicy
	default:
		return a.Name.Verify()
	}
}

func (a Asset) String() string {
	return fmt.Sprintf("%s/%s", a.Policy, a.Name)
}

func (a Asset) Less(other Asset) bool {
	if a.Policy != other.Policy {
		return a.Policy.Less(other.Policy)
	}
	return a.Name.Less(other.Name)
}
