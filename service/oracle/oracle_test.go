package oracle

import (
	"context"
	"errors"
	"testing"

	"woracle/core"
	"woracle/pkg/number"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
)

type fakeReserve struct {
	aum sdkmath.Int
	err error
}

func (f *fakeReserve) GetAum(ctx context.Context, maximise bool) (sdkmath.Int, error) {
	return f.aum, f.err
}

type fakeSupply struct {
	total sdkmath.Int
	err   error
}

func (f *fakeSupply) TotalSupply(ctx context.Context) (sdkmath.Int, error) {
	return f.total, f.err
}

type fakeShare struct {
	pps sdkmath.Int
	err error
}

func (f *fakeShare) PricePerShare(ctx context.Context) (sdkmath.Int, error) {
	return f.pps, f.err
}

type fakeGovernance struct {
	ceiling sdkmath.Int
}

func (f *fakeGovernance) Ceiling(ctx context.Context) (sdkmath.Int, error) {
	return f.ceiling, nil
}

func (f *fakeGovernance) SetCeiling(ctx context.Context, caller string, ceiling sdkmath.Int) error {
	f.ceiling = ceiling
	return nil
}

func (f *fakeGovernance) TransferOwnership(ctx context.Context, caller, nominee string) error {
	return nil
}

func (f *fakeGovernance) AcceptOwnership(ctx context.Context, caller string) error {
	return nil
}

func (f *fakeGovernance) RenounceOwnership(ctx context.Context, caller string) error {
	return core.ErrRenounceDisabled
}

func testConfig() *core.Config {
	cfg := &core.Config{}
	cfg.App.Genesis = 1603366002
	cfg.App.SecondsPerRound = 15
	return cfg
}

func newTestService(t *testing.T, reserve core.ReserveSource, supply core.SupplySource, share core.ShareSource, gov core.IGovernanceService) core.IOracleService {
	t.Helper()

	srv, err := New(reserve, supply, share, gov, testConfig())
	assert.Nil(t, err)
	return srv
}

func TestNewNilSource(t *testing.T) {
	reserve := &fakeReserve{}
	supply := &fakeSupply{}
	share := &fakeShare{}
	gov := &fakeGovernance{}

	for _, tc := range []struct {
		name    string
		reserve core.ReserveSource
		supply  core.SupplySource
		share   core.ShareSource
	}{
		{"nil reserve", nil, supply, share},
		{"nil supply", reserve, nil, share},
		{"nil share", reserve, supply, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.reserve, tc.supply, tc.share, gov, testConfig())
			assert.Equal(t, core.ErrInvalidSource, err)
		})
	}
}

func TestDecimals(t *testing.T) {
	srv := newTestService(t, &fakeReserve{}, &fakeSupply{}, &fakeShare{}, &fakeGovernance{})
	assert.Equal(t, uint8(18), srv.Decimals())
}

func TestLivePrice(t *testing.T) {
	ctx := context.Background()

	// 1,000,000 reference units of aum at 1e30, supply 1,000,000 at 1e18,
	// share multiplier 1.05: per unit value 1e18, price 1.05e18.
	reserve := &fakeReserve{aum: sdkmath.NewIntWithDecimal(1_000_000, 30)}
	supply := &fakeSupply{total: sdkmath.NewIntWithDecimal(1_000_000, 18)}
	share := &fakeShare{pps: number.ToScaled(number.Decimal("1.05"))}

	srv := newTestService(t, reserve, supply, share, &fakeGovernance{})

	price, err := srv.LivePrice(ctx)
	assert.Nil(t, err)
	assert.Equal(t, "1050000000000000000", price.String())
}

func TestLivePriceTruncation(t *testing.T) {
	ctx := context.Background()

	// 10 units of aum over a supply of 3 units: both divisions truncate,
	// matching integer mul-then-div ordering exactly.
	reserve := &fakeReserve{aum: sdkmath.NewIntWithDecimal(10, 30)}
	supply := &fakeSupply{total: sdkmath.NewIntWithDecimal(3, 18)}
	share := &fakeShare{pps: number.ToScaled(number.Decimal("1"))}

	srv := newTestService(t, reserve, supply, share, &fakeGovernance{})

	price, err := srv.LivePrice(ctx)
	assert.Nil(t, err)

	expected := sdkmath.NewIntWithDecimal(10, 36).
		Quo(sdkmath.NewIntWithDecimal(3, 18))
	assert.Equal(t, expected.String(), price.String())
}

func TestLivePriceZeroSupply(t *testing.T) {
	ctx := context.Background()

	reserve := &fakeReserve{aum: sdkmath.NewIntWithDecimal(1, 30)}
	supply := &fakeSupply{total: sdkmath.ZeroInt()}
	share := &fakeShare{pps: number.ScalePrice}

	srv := newTestService(t, reserve, supply, share, &fakeGovernance{})

	_, err := srv.LivePrice(ctx)
	assert.Equal(t, core.ErrZeroSupply, err)
}

func TestLivePriceUpstreamError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("source unreachable")

	srv := newTestService(t, &fakeReserve{err: boom}, &fakeSupply{}, &fakeShare{}, &fakeGovernance{})

	_, err := srv.LivePrice(ctx)
	assert.Equal(t, boom, err)
}

func TestLatestRoundData(t *testing.T) {
	ctx := context.Background()

	reserve := &fakeReserve{aum: sdkmath.NewIntWithDecimal(1_000_000, 30)}
	supply := &fakeSupply{total: sdkmath.NewIntWithDecimal(1_000_000, 18)}
	share := &fakeShare{pps: number.ToScaled(number.Decimal("1.05"))}

	t.Run("below ceiling", func(t *testing.T) {
		gov := &fakeGovernance{ceiling: number.ToScaled(number.Decimal("1.5"))}
		srv := newTestService(t, reserve, supply, share, gov)

		data, err := srv.LatestRoundData(ctx)
		assert.Nil(t, err)

		live, err := srv.LivePrice(ctx)
		assert.Nil(t, err)

		assert.Equal(t, "1050000000000000000", data.Answer.String())
		assert.Equal(t, live.String(), data.Answer.String())
		assert.Equal(t, data.RoundID, data.AnsweredInRound)
		assert.Equal(t, data.StartedAt, data.UpdatedAt)
		assert.True(t, data.RoundID > 0)
	})

	t.Run("ceiling binding", func(t *testing.T) {
		gov := &fakeGovernance{ceiling: number.ToScaled(number.Decimal("1.0"))}
		srv := newTestService(t, reserve, supply, share, gov)

		data, err := srv.LatestRoundData(ctx)
		assert.Nil(t, err)
		assert.Equal(t, "1000000000000000000", data.Answer.String())
	})
}

func TestClamp(t *testing.T) {
	one := number.ScalePrice
	two := one.MulRaw(2)

	assert.Equal(t, one.String(), clamp(one, two).String())
	assert.Equal(t, one.String(), clamp(two, one).String())
	assert.Equal(t, one.String(), clamp(one, one).String())
}
