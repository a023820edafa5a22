package reserve

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

// New new reserve valuation source backed by the asset manager api
func New(cfg *core.Config) (core.ReserveSource, error) {
	if cfg.Reserve.EndPoint == "" {
		return nil, core.ErrInvalidSource
	}

	return &service{endpoint: cfg.Reserve.EndPoint}, nil
}

// GetAum get total reserve valuation, 1e30 scaled
func (s *service) GetAum(ctx context.Context, maximise bool) (sdkmath.Int, error) {
	url := fmt.Sprintf("%s/api/aum?maximise=%t", s.endpoint, maximise)
	logger.FromContext(ctx).Debugln("pull aum:", url)

	resp, err := resthttp.WithRequestID(ctx, uuid.New()).Get(url)
	if err != nil {
		return sdkmath.Int{}, err
	}

	var body struct {
		Aum string `json:"aum"`
	}
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		return sdkmath.Int{}, err
	}

	aum, ok := number.IntFromString(body.Aum)
	if !ok || aum.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("reserve: bad aum reading %q: %w", body.Aum, core.ErrInvalidReading)
	}

	return aum, nil
}
