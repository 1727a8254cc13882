// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stakevault/stakevaultgo/components/tokens"
	"github.com/stakevault/stakevaultgo/components/txs"
	"github.com/stakevault/stakevaultgo/ids"

	avajson "github.com/stakevault/stakevaultgo/utils/json"
	safemath "github.com/stakevault/stakevaultgo/utils/math"
)

func recordDatum(start int64) txs.Datum {
	datum := make(txs.Datum, stakingRecordLen)
	binary.BigEndian.PutUint64(datum, uint64(start))
	return datum
}

func recordInput(index uint32, datum txs.Datum) txs.UTXO {
	return txs.UTXO{
		UTXOID: txs.UTXOID{
			TxID:        ids.ID{0x33},
			OutputIndex: index,
		},
		Out: txs.Output{
			Addr:  txs.NewScriptAddress(testVaultPolicy),
			Value: tokens.Value{},
			Datum: datum,
		},
	}
}

func TestStakingStart(t *testing.T) {
	tests := []struct {
		name          string
		inputs        []txs.UTXO
		expectedStart int64
		expectedErr   error
	}{
		{
			name:        "no inputs",
			inputs:      nil,
			expectedErr: ErrNoStakingRecord,
		},
		{
			name:        "no datum on any input",
			inputs:      []txs.UTXO{recordInput(0, nil), recordInput(1, nil)},
			expectedErr: ErrNoStakingRecord,
		},
		{
			name:          "first datum-bearing input wins",
			inputs:        []txs.UTXO{recordInput(0, nil), recordInput(1, recordDatum(100)), recordInput(2, recordDatum(200))},
			expectedStart: 100,
		},
		{
			name:          "negative start time parses",
			inputs:        []txs.UTXO{recordInput(0, recordDatum(-5))},
			expectedStart: -5,
		},
		{
			name:        "short datum",
			inputs:      []txs.UTXO{recordInput(0, txs.Datum{0x01, 0x02})},
			expectedErr: ErrMalformedStakingRecord,
		},
		{
			name:        "long datum",
			inputs:      []txs.UTXO{recordInput(0, make(txs.Datum, 9))},
			expectedErr: ErrMalformedStakingRecord,
		},
		{
			name:        "malformed datum before a valid record",
			inputs:      []txs.UTXO{recordInput(0, txs.Datum{0x01}), recordInput(1, recordDatum(100))},
			expectedErr: ErrMalformedStakingRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			start, err := stakingStart(&txs.Tx{Inputs: tt.inputs})
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expectedStart, start)
		})
	}
}

func TestStakingDays(t *testing.T) {
	const start = int64(1_700_000_000)

	tests := []struct {
		name         string
		upper        int64
		expectedDays int64
	}{
		{
			name:         "same second",
			upper:        start,
			expectedDays: 0,
		},
		{
			name:         "one second short of a day",
			upper:        start + SecondsPerDay - 1,
			expectedDays: 0,
		},
		{
			name:         "exactly one day",
			upper:        start + SecondsPerDay,
			expectedDays: 1,
		},
		{
			name:         "thirty days and change",
			upper:        start + 30*SecondsPerDay + 12_345,
			expectedDays: 30,
		},
		{
			name:         "one second before the record starts",
			upper:        start - 1,
			expectedDays: -1,
		},
		{
			name:         "a day and a second before the record starts",
			upper:        start - SecondsPerDay - 1,
			expectedDays: -2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			upper := avajson.Int64(tt.upper)
			tx := &txs.Tx{
				Inputs:   []txs.UTXO{recordInput(0, recordDatum(start))},
				Validity: txs.Window{Upper: &upper},
			}

			days, err := stakingDays(tx)
			require.NoError(err)
			require.Equal(tt.expectedDays, days)
		})
	}
}

// A missing upper bound must surface as missing data, never as an
// arithmetic failure.
func TestStakingDaysNoUpperBound(t *testing.T) {
	require := require.New(t)

	tx := &txs.Tx{
		Inputs: []txs.UTXO{recordInput(0, recordDatum(1_700_000_000))},
	}

	_, err := stakingDays(tx)
	require.ErrorIs(err, ErrNoUpperBound)
	require.Equal(DataError, ClassOf(err))
}

func TestStakingDaysElapsedOverflow(t *testing.T) {
	require := require.New(t)

	upper := avajson.Int64(math.MaxInt64)
	tx := &txs.Tx{
		Inputs:   []txs.UTXO{recordInput(0, recordDatum(math.MinInt64))},
		Validity: txs.Window{Upper: &upper},
	}

	_, err := stakingDays(tx)
	require.ErrorIs(err, safemath.ErrOverflow)
	require.Equal(DataError, ClassOf(err))
}
