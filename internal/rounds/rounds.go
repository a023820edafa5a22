package rounds

import (
	"context"
	"errors"
	"time"
)

// Current returns the current round number.
func Current(ctx context.Context, secondsPerRound, genesis int64) (int64, error) {
	return At(ctx, secondsPerRound, genesis, time.Now())
}

// At returns the round number at t. Rounds are counted from genesis in
// fixed windows of secondsPerRound, so the result never decreases as
// wall clock moves forward.
func At(ctx context.Context, secondsPerRound, genesis int64, t time.Time) (int64, error) {
	if secondsPerRound <= 0 {
		return 0, errors.New("secondsPerRound should not be less than or equal zero")
	}

	seconds := t.UTC().Unix() - genesis
	if seconds <= 0 {
		return 0, errors.New("invalid round time")
	}

	return seconds / secondsPerRound, nil
}
