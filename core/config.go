package core

import (
	"errors"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config woracle config
type Config struct {
	App     App       `json:"app"`
	DB      db.Config `json:"db"`
	Reserve Source    `json:"reserve"`
	Supply  Source    `json:"supply"`
	Share   Source    `json:"share"`
	Oracle  Oracle    `json:"oracle"`
}

// App app config
type App struct {
	// Genesis is the unix second rounds are counted from.
	Genesis int64 `json:"genesis"`
	// SecondsPerRound defaults to 15 when unset.
	SecondsPerRound int64 `json:"seconds_per_round"`
}

// Source upstream source config
type Source struct {
	EndPoint string `json:"end_point"`
}

// Oracle oracle governance config
type Oracle struct {
	// Owner is the key id seeded as the initial governor.
	Owner string `json:"owner"`
	// InitialCeiling is the initial price ceiling in natural units,
	// e.g. "1.5" for 1.5 reference units per wToken.
	InitialCeiling decimal.Decimal `json:"initial_ceiling"`
}

// Validate checks the bindings that must be fixed before anything starts.
// An empty source endpoint is the null binding: construction must fail.
func (c *Config) Validate() error {
	if c.Reserve.EndPoint == "" {
		return errors.New("config: reserve end_point not set")
	}

	if c.Supply.EndPoint == "" {
		return errors.New("config: supply end_point not set")
	}

	if c.Share.EndPoint == "" {
		return errors.New("config: share end_point not set")
	}

	if c.Oracle.Owner == "" {
		return errors.New("config: oracle owner not set")
	}

	if c.Oracle.InitialCeiling.LessThanOrEqual(decimal.Zero) {
		return errors.New("config: oracle initial_ceiling must be positive")
	}

	return nil
}
