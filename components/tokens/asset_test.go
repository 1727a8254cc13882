// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/utils"
)

func TestAssetVerify(t *testing.T) {
	tests := []struct {
		name        string
		asset       Asset
		expectedErr error
	}{
		{
			name: "valid",
			asset: Asset{
				Policy: ids.GenerateTestPolicyID(),
				Name:   TokenName("stLP"),
			},
			expectedErr: nil,
		},
		{
			name: "empty name is valid",
			asset: Asset{
				Policy: ids.GenerateTestPolicyID(),
			},
			expectedErr: nil,
		},
		{
			name: "empty policy",
			asset: Asset{
				Name: TokenName("stLP"),
			},
			expectedErr: errEmptyPolicy,
		},
		{
			name: "name too long",
			asset: Asset{
				Policy: ids.GenerateTestPolicyID(),
				Name:   TokenName("0123456789012345678901234567890123456789"),
			},
			expectedErr: errTokenNameTooLong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.asset.Verify()
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestAssetLess(t *testing.T) {
	require := require.New(t)

	policyA := ids.PolicyID{0}
	policyB := ids.PolicyID{1}

	assets := []Asset{
		{Policy: policyB, Name: TokenName("a")},
		{Policy: policyA, Name: TokenName("b")},
		{Policy: policyA, Name: TokenName("a")},
	}
	utils.Sort(assets)

	require.Equal(Asset{Policy: policyA, Name: TokenName("a")}, assets[0])
	require.Equal(Asset{Policy: policyA, Name: TokenName("b")}, assets[1])
	require.Equal(Asset{Policy: policyB, Name: TokenName("a")}, assets[2])
}

func TestAssetJSON(t *testing.T) {
	require := require.New(t)

	asset := NewAsset(ids.GenerateTestPolicyID(), TokenName("stTOK"))

	b, err := json.Marshal(asset)
	require.NoError(err)

	var parsed Asset
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(asset, parsed)
}
