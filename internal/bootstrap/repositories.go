package bootstrap

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/PhoneTycoon_Go/internal/config"
	"github.com/osse101/PhoneTycoon_Go/internal/database/memory"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/metrics"
)

// Repositories holds the process-local state holders.
type Repositories struct {
	Store    *memory.Store
	EventLog eventlog.Repository
}

// InitializeRepositories creates the game store and the bounded history journal.
func InitializeRepositories(cfg *config.Config) *Repositories {
	repos := &Repositories{
		Store:    memory.NewStore(),
		EventLog: eventlog.NewRingRepository(cfg.HistorySize),
	}
	slog.Info(LogMsgStoreInitialized, "history_size", cfg.HistorySize)
	return repos
}

// RegisterStoreMetrics exposes store entity counts as gauges on reg.
func RegisterStoreMetrics(reg prometheus.Registerer, store *memory.Store) {
	metrics.RegisterStoreGauges(reg, func() metrics.StoreSnapshot {
		ctx, cancel := context.WithTimeout(context.Background(), StatsTimeout)
		defer cancel()

		st, err := store.Stats(ctx)
		if err != nil {
			slog.Warn(metrics.LogMsgStoreStatsError, "error", err)
			return metrics.StoreSnapshot{}
		}
		return metrics.StoreSnapshot{
			Users:          st.Users,
			ActiveListings: st.ActiveListings,
			Items:          st.Items,
		}
	})
}
