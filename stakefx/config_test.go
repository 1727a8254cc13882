// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakevault/stakevaultgo/ids"
)

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectedErr error
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name: "missing underlying policy",
			mutate: func(cfg *Config) {
				cfg.UnderlyingPolicy = ids.EmptyPolicyID
			},
			expectedErr: errEmptyPolicy,
		},
		{
			name: "missing reward policy",
			mutate: func(cfg *Config) {
				cfg.RewardPolicy = ids.EmptyPolicyID
			},
			expectedErr: errEmptyPolicy,
		},
		{
			name: "missing underlying token name",
			mutate: func(cfg *Config) {
				cfg.UnderlyingToken = ""
			},
			expectedErr: errEmptyTokenName,
		},
		{
			name: "missing lp token name",
			mutate: func(cfg *Config) {
				cfg.LPToken = ""
			},
			expectedErr: errEmptyTokenName,
		},
		{
			name: "missing reward token name",
			mutate: func(cfg *Config) {
				cfg.RewardToken = ""
			},
			expectedErr: errEmptyTokenName,
		},
		{
			name: "missing admin",
			mutate: func(cfg *Config) {
				cfg.Admin = ids.ShortEmpty
			},
			expectedErr: errEmptyAdmin,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			cfg := testConfig()
			tt.mutate(cfg)
			require.ErrorIs(cfg.Verify(), tt.expectedErr)
		})
	}
}

func TestConfigVerifyRewardConfig(t *testing.T) {
	require := require.New(t)

	cfg := testConfig()
	cfg.Reward.RateDenominator = 0
	require.Error(cfg.Verify())

	var nilCfg *Config
	require.ErrorIs(nilCfg.Verify(), errNilConfig)
}

func TestConfigJSON(t *testing.T) {
	require := require.New(t)

	cfg := testConfig()
	cfg.StrictLPBurnOnSpend = true

	b, err := json.Marshal(cfg)
	require.NoError(err)

	parsed := &Config{}
	require.NoError(json.Unmarshal(b, parsed))
	require.Equal(cfg, parsed)
}
