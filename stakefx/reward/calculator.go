// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNegativeDuration is returned when a staking duration is negative.
	// A negative duration means the staking record starts after the
	// transaction's evaluation time, which no payout schedule can price.
	ErrNegativeDuration = errors.New("negative staking duration")

	// ErrRewardOverflow is returned when a payout doesn't fit in 64 bits.
	ErrRewardOverflow = errors.New("reward amount overflows uint64")

	_ Calculator = (*calculator)(nil)
)

type Calculator interface {
	// Reward returns the payout owed for [stakedAmount] tokens staked over
	// [stakedDays] whole days, rounded down to a whole token.
	Reward(stakedAmount uint64, stakedDays int64) (uint64, error)
}

type calculator struct {
	rateNumerator   *big.Int
	rateDenominator *big.Int
}

func NewCalculator(c Config) Calculator {
	return &calculator{
		rateNumerator:   new(big.Int).SetUint64(c.RateNumerator),
		rateDenominator: new(big.Int).SetUint64(c.RateDenominator),
	}
}

// Reward = floor(stakedAmount * stakedDays * rateNumerator /
// rateDenominator). The intermediate product is computed over big.Int, so
// it can't overflow no matter how large the stake or duration.
func (c *calculator) Reward(stakedAmount uint64, stakedDays int64) (uint64, error) {
	if stakedDays < 0 {
		return 0, fmt.Errorf("%w: %d days", ErrNegativeDuration, stakedDays)
	}

	reward := new(big.Int).SetUint64(stakedAmount)
	reward.Mul(reward, new(big.Int).SetInt64(stakedDays))
	reward.Mul(reward, c.rateNumerator)
	reward.Div(reward, c.rateDenominator)

	if !reward.IsUint64() {
		return 0, ErrRewardOverflow
	}
	return reward.Uint64(), nil
}
