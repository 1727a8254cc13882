// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakevault/stakevaultgo/ids"
	"github.com/stakevault/stakevaultgo/utils"
	"github.com/stakevault/stakevaultgo/utils/hashing"
)

func TestKeyAddressFromPubkey(t *testing.T) {
	require := require.New(t)

	pubkey := utils.RandomBytes(33)
	credential := hashing.PubkeyBytesToAddress(pubkey)
	require.Len(credential, hashing.AddrLen)

	hash, err := ids.ToShortID(credential)
	require.NoError(err)

	addr := NewKeyAddress(hash)
	require.NoError(addr.Verify())
	require.Equal(KeyAddress, addr.Kind)
}

func TestAddressScript(t *testing.T) {
	require := require.New(t)

	policy := ids.GenerateTestPolicyID()

	scriptAddr := NewScriptAddress(policy)
	got, ok := scriptAddr.Script()
	require.True(ok)
	require.Equal(policy, got)

	keyAddr := NewKeyAddress(ids.GenerateTestShortID())
	_, ok = keyAddr.Script()
	require.False(ok)
}

func TestAddressVerify(t *testing.T) {
	tests := []struct {
		name        string
		addr        Address
		expectedErr error
	}{
		{
			name:        "valid key address",
			addr:        NewKeyAddress(ids.GenerateTestShortID()),
			expectedErr: nil,
		},
		{
			name:        "valid script address",
			addr:        NewScriptAddress(ids.GenerateTestPolicyID()),
			expectedErr: nil,
		},
		{
			name: "unknown kind",
			addr: Address{
				Kind: AddressKind(7),
				Hash: ids.GenerateTestShortID(),
			},
			expectedErr: errUnknownAddressKind,
		},
		{
			name:        "empty hash",
			addr:        Address{Kind: KeyAddress},
			expectedErr: errEmptyAddressHash,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.addr.Verify()
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)

	addr := NewScriptAddress(ids.GenerateTestPolicyID())

	b, err := json.Marshal(addr)
	require.NoError(err)
	require.Contains(string(b), `"kind":"script"`)

	var parsed Address
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(addr, parsed)

	err = json.Unmarshal([]byte(`{"kind":"vault","hash":"`+addr.Hash.String()+`"}`), &parsed)
	require.ErrorIs(err, errUnknownAddressKind)
}
