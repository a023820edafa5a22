package governance

import (
	"context"

	"woracle/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// the governed state is a single row
const governanceRowID = 1

type governanceStore struct {
	db *db.DB
}

// New new governance store
func New(db *db.DB) core.IGovernanceStore {
	return &governanceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Governance{})

		if err := tx.AutoMigrate(core.Governance{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *governanceStore) Init(ctx context.Context, owner string, ceiling decimal.Decimal) error {
	g := core.Governance{
		ID:           governanceRowID,
		Owner:        owner,
		PriceCeiling: ceiling,
	}
	return s.db.Update().Where("id=?", governanceRowID).FirstOrCreate(&g).Error
}

func (s *governanceStore) Find(ctx context.Context) (*core.Governance, bool, error) {
	var g core.Governance
	if e := s.db.View().Where("id=?", governanceRowID).Find(&g).Error; e != nil {
		return nil, gorm.IsRecordNotFoundError(e), e
	}
	return &g, false, nil
}

func (s *governanceStore) Update(ctx context.Context, g *core.Governance) error {
	version := g.Version
	g.Version++

	// map updates so an emptied pending_owner is written through
	updates := map[string]interface{}{
		"owner":         g.Owner,
		"pending_owner": g.PendingOwner,
		"price_ceiling": g.PriceCeiling,
		"version":       g.Version,
	}

	tx := s.db.Update().Model(core.Governance{}).
		Where("id=? and version=?", g.ID, version).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return core.ErrVersionConflict
	}

	return nil
}
