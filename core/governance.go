package core

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// Governance is the single governed row: the live owner, an optional pending
// owner from a two-step transfer, and the price ceiling in natural units
// (18 decimal places). The ceiling must stay strictly positive.
type Governance struct {
	ID           int64           `sql:"PRIMARY_KEY" json:"id,omitempty"`
	Owner        string          `sql:"size:64" json:"owner,omitempty"`
	PendingOwner string          `sql:"size:64" json:"pending_owner,omitempty"`
	PriceCeiling decimal.Decimal `sql:"type:decimal(64,18)" json:"price_ceiling,omitempty"`
	Version      int64           `sql:"default:0" json:"version,omitempty"`
	CreatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// IGovernanceStore governance store interface
type IGovernanceStore interface {
	// Init seeds the row if it does not exist yet. Idempotent.
	Init(ctx context.Context, owner string, ceiling decimal.Decimal) error
	Find(ctx context.Context) (*Governance, bool, error)
	// Update writes the row back, guarded by the version read in Find.
	Update(ctx context.Context, g *Governance) error
}

// IGovernanceService governance service interface. Callers are identified by
// an opaque key id; every mutation checks it against the persisted owner
// atomically with the write.
type IGovernanceService interface {
	// Ceiling returns the price ceiling, 1e18 scaled.
	Ceiling(ctx context.Context) (sdkmath.Int, error)
	SetCeiling(ctx context.Context, caller string, ceiling sdkmath.Int) error
	TransferOwnership(ctx context.Context, caller, nominee string) error
	AcceptOwnership(ctx context.Context, caller string) error
	// RenounceOwnership fails unconditionally. The ceiling must always
	// have a live governor, so no ownerless state is reachable.
	RenounceOwnership(ctx context.Context, caller string) error
}
