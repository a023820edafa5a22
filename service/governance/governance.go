package governance

import (
	"context"

	"woracle/core"
	"woracle/pkg/number"

	sdkmath "cosmossdk.io/math"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

type service struct {
	store core.IGovernanceStore
}

// New new governance service
func New(store core.IGovernanceStore) core.IGovernanceService {
	return &service{store: store}
}

func (s *service) find(ctx context.Context) (*core.Governance, error) {
	g, notFound, err := s.store.Find(ctx)
	if err != nil {
		if notFound {
			return nil, core.ErrGovernanceNotFound
		}
		return nil, err
	}

	return g, nil
}

// Ceiling current price ceiling, 1e18 scaled
func (s *service) Ceiling(ctx context.Context) (sdkmath.Int, error) {
	g, err := s.find(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}

	return number.ToScaled(g.PriceCeiling), nil
}

// SetCeiling replace the ceiling. Owner only, zero rejected. The owner check
// and the write share the row version, so a lost race changes nothing.
func (s *service) SetCeiling(ctx context.Context, caller string, ceiling sdkmath.Int) error {
	if ceiling.IsNil() || !ceiling.IsPositive() {
		return core.ErrZeroCeiling
	}

	g, err := s.find(ctx)
	if err != nil {
		return err
	}

	if caller != g.Owner {
		return core.ErrNotOwner
	}

	g.PriceCeiling = number.FromScaled(ceiling)
	if err := s.store.Update(ctx, g); err != nil {
		return err
	}

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":   "ceiling_updated",
		"ceiling": g.PriceCeiling,
	}).Info("price ceiling updated")

	return nil
}

// TransferOwnership nominate a pending owner. The transfer only takes
// effect once the nominee accepts.
func (s *service) TransferOwnership(ctx context.Context, caller, nominee string) error {
	if nominee == "" {
		return core.ErrInvalidNominee
	}

	g, err := s.find(ctx)
	if err != nil {
		return err
	}

	if caller != g.Owner {
		return core.ErrNotOwner
	}

	g.PendingOwner = nominee
	if err := s.store.Update(ctx, g); err != nil {
		return err
	}

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":   "ownership_transfer_started",
		"nominee": nominee,
	}).Info("ownership transfer started")

	return nil
}

// AcceptOwnership finalize a pending transfer. Only the nominee may accept.
func (s *service) AcceptOwnership(ctx context.Context, caller string) error {
	g, err := s.find(ctx)
	if err != nil {
		return err
	}

	if g.PendingOwner == "" || caller != g.PendingOwner {
		return core.ErrNotPendingOwner
	}

	g.Owner = caller
	g.PendingOwner = ""
	if err := s.store.Update(ctx, g); err != nil {
		return err
	}

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"event": "ownership_transferred",
		"owner": caller,
	}).Info("ownership transferred")

	return nil
}

// RenounceOwnership always fails. An oracle whose ceiling nobody can move
// is a worse failure mode than a trusted governor kept indefinitely.
func (s *service) RenounceOwnership(ctx context.Context, caller string) error {
	return core.ErrRenounceDisabled
}
