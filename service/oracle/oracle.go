package oracle

import (
	"context"
	"time"

	"woracle/core"
	"woracle/internal/rounds"
	"woracle/pkg/number"

	sdkmath "cosmossdk.io/math"
)

type oracleService struct {
	reserve    core.ReserveSource
	supply     core.SupplySource
	share      core.ShareSource
	governance core.IGovernanceService

	secondsPerRound int64
	genesis         int64
}

// New new oracle service. All three sources and the governance service are
// fixed bindings: a nil binding fails construction.
func New(reserve core.ReserveSource, supply core.SupplySource, share core.ShareSource, governance core.IGovernanceService, cfg *core.Config) (core.IOracleService, error) {
	if reserve == nil || supply == nil || share == nil || governance == nil {
		return nil, core.ErrInvalidSource
	}

	return &oracleService{
		reserve:         reserve,
		supply:          supply,
		share:           share,
		governance:      governance,
		secondsPerRound: cfg.App.SecondsPerRound,
		genesis:         cfg.App.Genesis,
	}, nil
}

// Decimals always 18
func (s *oracleService) Decimals() uint8 {
	return core.OracleDecimals
}

// LivePrice compute the uncapped price: reference units per wToken,
// 1e18 scaled. Multiply first, divide last, full width throughout.
func (s *oracleService) LivePrice(ctx context.Context) (sdkmath.Int, error) {
	aum, err := s.reserve.GetAum(ctx, false)
	if err != nil {
		return sdkmath.Int{}, err
	}

	total, err := s.supply.TotalSupply(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !total.IsPositive() {
		return sdkmath.Int{}, core.ErrZeroSupply
	}

	pps, err := s.share.PricePerShare(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}

	// aum is 1e30 scaled; *1e6 then /supply nets out to a 1e18 per-unit value
	perUnit := aum.Mul(number.ScaleAumToPrice).Quo(total)

	return perUnit.Mul(pps).Quo(number.ScalePrice), nil
}

// LatestRoundData compute the capped answer and package it in the standard
// feed tuple. Nothing is cached; a failed upstream read aborts the call.
func (s *oracleService) LatestRoundData(ctx context.Context) (*core.RoundData, error) {
	price, err := s.LivePrice(ctx)
	if err != nil {
		return nil, err
	}

	ceiling, err := s.governance.Ceiling(ctx)
	if err != nil {
		return nil, err
	}

	round, err := rounds.Current(ctx, s.secondsPerRound, s.genesis)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()

	return &core.RoundData{
		RoundID:         round,
		Answer:          clamp(price, ceiling),
		StartedAt:       now,
		UpdatedAt:       now,
		AnsweredInRound: round,
	}, nil
}

// clamp bounds the answer from above. This is the oracle's only defense
// against a manipulated upstream reading: it limits the damage, it does
// not detect the anomaly.
func clamp(price, ceiling sdkmath.Int) sdkmath.Int {
	return sdkmath.MinInt(price, ceiling)
}
