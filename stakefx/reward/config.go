// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import "errors"

var (
	errZeroRateDenominator = errors.New("rate denominator is zero")

	// DefaultConfig pays 8% simple annual interest with daily granularity:
	// 8 parts per 100 (percent) per 365 days.
	DefaultConfig = Config{
		RateNumerator:   8,
		RateDenominator: 36500,
	}
)

type Config struct {
	// RateNumerator is the annual simple-interest rate, in whole percent.
	RateNumerator uint64 `json:"rateNumerator"`

	// RateDenominator scales [RateNumerator] down to a daily fraction. The
	// default is 100 (the percent denominator) times 365 (days per year).
	RateDenominator uint64 `json:"rateDenominator"`
}

func (c Config) Verify() error {
	if c.RateDenominator == 0 {
		return errZeroRateDenominator
	}
	return nil
}
