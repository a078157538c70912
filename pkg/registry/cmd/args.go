package cmd

import (
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// parseCoinArg parses a single coin (e.g. 100aphoton) from the named argument.
func parseCoinArg(argName, arg string) (cosmostypes.Coin, error) {
	coin, err := cosmostypes.ParseCoinNormalized(arg)
	if err != nil {
		return cosmostypes.Coin{}, ErrRegistryCmdInvalidArg.Wrapf("%s %q: %s", argName, arg, err)
	}
	return coin, nil
}

// parseCoinsArg parses a non-empty, comma separated list of coins
// (e.g. 100aphoton,5stake) from the named argument.
func parseCoinsArg(argName, arg string) (cosmostypes.Coins, error) {
	coins, err := cosmostypes.ParseCoinsNormalized(arg)
	if err != nil {
		return nil, ErrRegistryCmdInvalidArg.Wrapf("%s %q: %s", argName, arg, err)
	}
	if coins.Empty() {
		return nil, ErrRegistryCmdInvalidArg.Wrapf("%s %q: no coins", argName, arg)
	}
	return coins, nil
}

// parseDurationArg parses a positive duration (e.g. 5m) from the named argument.
func parseDurationArg(argName, arg string) (time.Duration, error) {
	duration, err := time.ParseDuration(arg)
	if err != nil {
		return 0, ErrRegistryCmdInvalidArg.Wrapf("%s %q: %s", argName, arg, err)
	}
	if duration <= 0 {
		return 0, ErrRegistryCmdInvalidArg.Wrapf("%s %q: must be positive", argName, arg)
	}
	return duration, nil
}
