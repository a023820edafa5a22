package share

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

// New new share source backed by the vault api
func New(cfg *core.Config) (core.ShareSource, error) {
	if cfg.Share.EndPoint == "" {
		return nil, core.ErrInvalidSource
	}

	return &service{endpoint: cfg.Share.EndPoint}, nil
}

// PricePerShare get the vault share multiplier, 1e18 scaled
func (s *service) PricePerShare(ctx context.Context) (sdkmath.Int, error) {
	url := fmt.Sprintf("%s/api/price-per-share", s.endpoint)
	logger.FromContext(ctx).Debugln("pull price per share:", url)

	resp, err := resthttp.WithRequestID(ctx, uuid.New()).Get(url)
	if err != nil {
		return sdkmath.Int{}, err
	}

	var body struct {
		PricePerShare string `json:"price_per_share"`
	}
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		return sdkmath.Int{}, err
	}

	pps, ok := number.IntFromString(body.PricePerShare)
	if !ok || pps.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("share: bad price per share reading %q: %w", body.PricePerShare, core.ErrInvalidReading)
	}

	return pps, nil
}
