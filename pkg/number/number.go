package number

import (
	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

const priceDecimals = 18

// Scale factors bridging the three upstream scales. The AUM reading arrives
// at 1e30; dividing by supply and multiplying by 1e6 nets out to the 1e18
// price scale while keeping full precision before the division.
var (
	// ScalePrice is 1e18, the oracle's answer scale.
	ScalePrice = sdkmath.NewIntWithDecimal(1, 18)
	// ScaleAumToPrice is 1e6, applied to AUM before the supply division.
	ScaleAumToPrice = sdkmath.NewIntWithDecimal(1, 6)
)

// Decimal parses v, ignoring errors. For constants and tests.
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ToScaled converts a natural-unit decimal into a 1e18 scaled integer,
// truncating anything below 18 decimal places.
func ToScaled(d decimal.Decimal) sdkmath.Int {
	return sdkmath.NewIntFromBigInt(d.Shift(priceDecimals).BigInt())
}

// FromScaled converts a 1e18 scaled integer back to natural units. Exact.
func FromScaled(i sdkmath.Int) decimal.Decimal {
	return decimal.NewFromBigInt(i.BigInt(), -priceDecimals)
}

// IntFromString parses a base-10 integer reading from an upstream source.
func IntFromString(s string) (sdkmath.Int, bool) {
	return sdkmath.NewIntFromString(s)
}
