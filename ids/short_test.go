// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortIDFromString(t *testing.T) {
	require := require.New(t)

	id := ShortID{'v', 'a', 'u', 'l', 't'}
	idFromString, err := ShortFromString(id.String())
	require.NoError(err)
	require.Equal(id, idFromString)
}

func TestShortIDFromPrefixedString(t *testing.T) {
	require := require.New(t)

	id := GenerateTestShortID()
	prefixed := id.PrefixedString("X-")

	idFromString, err := ShortFromPrefixedString(prefixed, "X-")
	require.NoError(err)
	require.Equal(id, idFromString)

	_, err = ShortFromPrefixedString(prefixed, "P-")
	require.Error(err)
}

func TestShortIDMarshalJSON(t *testing.T) {
	require := require.New(t)

	id := GenerateTestShortID()
	out, err := json.Marshal(id)
	require.NoError(err)

	var unmarshaled ShortID
	require.NoError(json.Unmarshal(out, &unmarshaled))
	require.Equal(id, unmarshaled)

	unmarshaled = ShortID{0x01}
	require.NoError(unmarshaled.UnmarshalJSON([]byte(nullStr)))
	require.Equal(ShortID{0x01}, unmarshaled)
}

func TestToShortID(t *testing.T) {
	require := require.New(t)

	_, err := ToShortID(make([]byte, 19))
	require.Error(err)

	id, err := ToShortID(make([]byte, ShortIDLen))
	require.NoError(err)
	require.Equal(ShortEmpty, id)
}

func TestShortIDLess(t *testing.T) {
	require := require.New(t)

	require.False(ShortID{}.Less(ShortID{}))
	require.True(ShortID{0x01}.Less(ShortID{0x02}))
	require.False(ShortID{0x02}.Less(ShortID{0x01}))
}
