package supply

import (
	"context"
	"fmt"

	"woracle/core"
	"woracle/pkg/number"
	"woracle/pkg/resthttp"

	sdkmath "cosmossdk.io/math"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/uuid"
)

type service struct {
	endpoint string
}

// New new supply source backed by the reference asset ledger api
func New(cfg *core.Config) (core.SupplySource, error) {
	if cfg.Supply.EndPoint == "" {
		return nil, core.ErrInvalidSource
	}

	return &service{endpoint: cfg.Supply.EndPoint}, nil
}

// TotalSupply get outstanding supply at the asset's native scale
func (s *service) TotalSupply(ctx context.Context) (sdkmath.Int, error) {
	url := fmt.Sprintf("%s/api/total-supply", s.endpoint)
	logger.FromContext(ctx).Debugln("pull total supply:", url)

	resp, err := resthttp.WithRequestID(ctx, uuid.New()).Get(url)
	if err != nil {
		return sdkmath.Int{}, err
	}

	var body struct {
		TotalSupply string `json:"total_supply"`
	}
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		return sdkmath.Int{}, err
	}

	total, ok := number.IntFromString(body.TotalSupply)
	if !ok || total.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("supply: bad supply reading %q: %w", body.TotalSupply, core.ErrInvalidReading)
	}

	return total, nil
}
