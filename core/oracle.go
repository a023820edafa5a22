package core

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// OracleDecimals is the fixed decimal precision of every answer this oracle
// reports. It never depends on state.
const OracleDecimals uint8 = 18

// ReserveSource exposes the asset manager's total reserve valuation.
type ReserveSource interface {
	// GetAum returns the total value of assets under management,
	// scaled by 1e30. maximise=false asks for the conservative valuation.
	GetAum(ctx context.Context, maximise bool) (sdkmath.Int, error)
}

// SupplySource exposes the outstanding supply of the reference asset.
type SupplySource interface {
	// TotalSupply returns the supply at the asset's native decimal scale.
	TotalSupply(ctx context.Context) (sdkmath.Int, error)
}

// ShareSource exposes the vault's per-share multiplier.
type ShareSource interface {
	// PricePerShare returns the share multiplier scaled by 1e18.
	PricePerShare(ctx context.Context) (sdkmath.Int, error)
}

// RoundData is the standard price feed tuple consumed by downstream readers.
// Answer carries 18 implied decimals and is never negative in practice.
type RoundData struct {
	RoundID         int64       `json:"round_id"`
	Answer          sdkmath.Int `json:"answer"`
	StartedAt       int64       `json:"started_at"`
	UpdatedAt       int64       `json:"updated_at"`
	AnsweredInRound int64       `json:"answered_in_round"`
}

// IOracleService oracle price service interface
type IOracleService interface {
	// LivePrice returns the uncapped normalized price, 1e18 scaled.
	LivePrice(ctx context.Context) (sdkmath.Int, error)
	// LatestRoundData returns the capped answer in the round data shape.
	// Every call is a fresh computation against the current upstream state.
	LatestRoundData(ctx context.Context) (*RoundData, error)
	Decimals() uint8
}
