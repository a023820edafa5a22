package cmd

import (
	"woracle/core"
	"woracle/service/governance"
	"woracle/service/oracle"
	"woracle/service/reserve"
	"woracle/service/share"
	"woracle/service/supply"
	governancestore "woracle/store/governance"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideGovernanceStore(db *db.DB) core.IGovernanceStore {
	return governancestore.New(db)
}

func provideGovernanceService(store core.IGovernanceStore) core.IGovernanceService {
	return governance.New(store)
}

func provideReserveSource() core.ReserveSource {
	s, err := reserve.New(&cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func provideSupplySource() core.SupplySource {
	s, err := supply.New(&cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func provideShareSource() core.ShareSource {
	s, err := share.New(&cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func provideOracleService(governanceSrv core.IGovernanceService) core.IOracleService {
	srv, err := oracle.New(
		provideReserveSource(),
		provideSupplySource(),
		provideShareSource(),
		governanceSrv,
		&cfg,
	)
	if err != nil {
		panic(err)
	}
	return srv
}
