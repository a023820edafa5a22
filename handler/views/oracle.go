package views

import (
	"woracle/core"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// RoundData round data view
type RoundData struct {
	core.RoundData
	Decimals uint8 `json:"decimals"`
}

// Price uncapped live price view, exposed for diagnostics. Value is the
// same figure in natural units for humans.
type Price struct {
	Price    sdkmath.Int     `json:"price"`
	Value    decimal.Decimal `json:"value"`
	Decimals uint8           `json:"decimals"`
}
