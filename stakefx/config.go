// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"errors"
	"fmt"

	"github.com/stakevault/stakevaultgo/components/tokens"
	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/stakefx/reward"
)

var (
	errNilConfig      = errors.New("nil config")
	errEmptyPolicy    = errors.New("policy is empty")
	errEmptyTokenName = errors.New("token name is empty")
	errEmptyAdmin     = errors.New("admin credential is empty")
)

// Config fixes the assets and credentials one vault deployment validates.
type Config struct {
	// UnderlyingPolicy and UnderlyingToken identify the staked asset.
	UnderlyingPolicy ids.PolicyID     `json:"underlyingPolicy"`
	UnderlyingToken  tokens.TokenName `json:"underlyingToken"`

	// LPToken names the liquidity token minted 1:1 against the stake. Its
	// policy is deliberately not configured: the spend path derives it
	// from the validated script's own credential, and the mint path
	// receives it as the policy under verification.
	LPToken tokens.TokenName `json:"lpToken"`

	// RewardPolicy and RewardToken identify the escrowed payout asset.
	RewardPolicy ids.PolicyID     `json:"rewardPolicy"`
	RewardToken  tokens.TokenName `json:"rewardToken"`

	// Admin is the key credential allowed to top up the reward pool.
	Admin ids.ShortID `json:"admin"`

	// StrictLPBurnOnSpend requires every vault spend to burn LP tokens.
	// When false, a spend that leaves the LP supply untouched passes the
	// spend authorizer even though the burn authorizer would reject it.
	// That asymmetry matches the deployed protocol; enable this to close
	// it.
	StrictLPBurnOnSpend bool `json:"strictLPBurnOnSpend"`

	// Reward parameterizes the payout schedule.
	Reward reward.Config `json:"reward"`
}

func (c *Config) Verify() error {
	switch {
	case c == nil:
		return errNilConfig
	case c.UnderlyingPolicy == ids.EmptyPolicyID:
		return fmt.Errorf("%w: underlyingPolicy", errEmptyPolicy)
	case c.RewardPolicy == ids.EmptyPolicyID:
		return fmt.Errorf("%w: rewardPolicy", errEmptyPolicy)
	case len(c.UnderlyingToken) == 0:
		return fmt.Errorf("%w: underlyingToken", errEmptyTokenName)
	case len(c.LPToken) == 0:
		return fmt.Errorf("%w: lpToken", errEmptyTokenName)
	case len(c.RewardToken) == 0:
		return fmt.Errorf("%w: rewardToken", errEmptyTokenName)
	case c.Admin == ids.ShortEmpty:
		return errEmptyAdmin
	}

	for _, name := range []tokens.TokenName{c.UnderlyingToken, c.LPToken, c.RewardToken} {
		if err := name.Verify(); err != nil {
			return err
		}
	}
	return c.Reward.Verify()
}

// UnderlyingAsset returns the staked asset.
func (c *Config) UnderlyingAsset() tokens.Asset {
	return tokens.NewAsset(c.UnderlyingPolicy, c.UnderlyingToken)
}

// RewardAsset returns the escrowed payout asset.
func (c *Config) RewardAsset() tokens.Asset {
	return tokens.NewAsset(c.RewardPolicy, c.RewardToken)
}

// LPAsset returns the liquidity token issued under [policy].
func (c *Config) LPAsset(policy ids.PolicyID) tokens.Asset {
	return tokens.NewAsset(policy, c.LPToken)
}
