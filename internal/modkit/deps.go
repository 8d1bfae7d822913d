// Package modkit wires services and API modules: shared dependencies, build options and the
// Base every module embeds
package modkit

import (
	"wordguard/internal/modkit/repokit"
	"wordguard/internal/platform/config"
	"wordguard/internal/platform/logger"
	"wordguard/internal/platform/store"
)

// Deps are the dependencies every module receives. PG and CH are nil when their backend is off
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// DepsFrom builds Deps over an opened store
func DepsFrom(cfg config.Conf, st *store.Store) Deps {
	d := Deps{Cfg: cfg, Log: *logger.Get()}
	if st != nil {
		d.Log, d.PG, d.CH = st.Log, st.PG, st.CH
	}
	return d
}
