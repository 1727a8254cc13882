// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionJSON(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{
			name:   "mint",
			action: &MintAction{Amount: 1000},
		},
		{
			name:   "mint of negative amount",
			action: &MintAction{Amount: -7},
		},
		{
			name:   "burn",
			action: &BurnAction{},
		},
		{
			name:   "deposit reward",
			action: &DepositRewardAction{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			b, err := MarshalAction(tt.action)
			require.NoError(err)

			parsed, err := UnmarshalAction(b)
			require.NoError(err)
			require.Equal(tt.action, parsed)
		})
	}
}

func TestUnmarshalActionErrors(t *testing.T) {
	tests := []struct {
		name          string
		encoded       string
		expectedErr   error
		expectedClass Class
	}{
		{
			name:          "unknown type tag",
			encoded:       `{"type":"slash"}`,
			expectedErr:   ErrUnknownAction,
			expectedClass: UnknownAction,
		},
		{
			name:          "empty type tag",
			encoded:       `{}`,
			expectedErr:   ErrUnknownAction,
			expectedClass: UnknownAction,
		},
		{
			name:          "mint without amount",
			encoded:       `{"type":"mint"}`,
			expectedErr:   errNoMintAmount,
			expectedClass: DataError,
		},
		{
			name:          "not an envelope",
			encoded:       `[]`,
			expectedClass: DataError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			_, err := UnmarshalAction([]byte(tt.encoded))
			require.Error(err)
			if tt.expectedErr != nil {
				require.ErrorIs(err, tt.expectedErr)
			}
			require.Equal(tt.expectedClass, ClassOf(err))
		})
	}
}

func TestMarshalUnknownAction(t *testing.T) {
	require := require.New(t)

	_, err := MarshalAction(nil)
	require.ErrorIs(err, ErrUnknownAction)

	_, err = MarshalAction(bogusAction{})
	require.ErrorIs(err, ErrUnknownAction)
}
