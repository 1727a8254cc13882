// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakefx

import (
	"encoding/binary"
	"fmt"

	"github.com/stakevault/stakevaultgo/components/txs"

	safemath "github.com/stakevault/stakevaultgo/utils/math"
)

const (
	// SecondsPerDay converts elapsed unix time to whole staking days.
	SecondsPerDay = 86_400

	// stakingRecordLen is the byte length of a staking record datum: the
	// start time as a big-endian signed 64-bit unix timestamp.
	stakingRecordLen = 8
)

// stakingStart returns the start time recorded by the first datum-bearing
// input. Inputs without a datum are skipped; a datum of the wrong shape is
// an error, not a skip.
func stakingStart(tx *txs.Tx) (int64, error) {
	for _, in := range tx.Inputs {
		if !in.Out.HasDatum() {
			continue
		}
		if len(in.Out.Datum) != stakingRecordLen {
			return 0, fmt.Errorf("%w: %d byte datum on input %s", ErrMalformedStakingRecord, len(in.Out.Datum), in.UTXOID)
		}
		return int64(binary.BigEndian.Uint64(in.Out.Datum)), nil
	}
	return 0, ErrNoStakingRecord
}

// stakingDays returns the number of whole days between the staking start
// recorded in [tx]'s inputs and the transaction's validity upper bound.
// The transaction never sees a wall clock: the upper bound is the only
// notion of "now". The result is negative when the record starts after
// the upper bound, which the reward calculator then refuses to price.
func stakingDays(tx *txs.Tx) (int64, error) {
	start, err := stakingStart(tx)
	if err != nil {
		return 0, err
	}

	end, ok := tx.Validity.UpperBound()
	if !ok {
		return 0, ErrNoUpperBound
	}

	elapsed, err := safemath.SubInt64(end, start)
	if err != nil {
		return 0, &Error{Class: DataError, Err: err}
	}

	days := elapsed / SecondsPerDay
	if elapsed%SecondsPerDay < 0 {
		// Round toward negative infinity: an elapsed time of -1 second is
		// a negative duration, not zero days.
		days--
	}
	return days, nil
}
