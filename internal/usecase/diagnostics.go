package usecase

import (
	"context"

	"mc-creative-backend/config"
	"mc-creative-backend/internal/domain"
)

const collectionListLimit = 10

type diagnosticsUsecase struct {
	store domain.DocumentStore // nil when storage never came up
	cfg   *config.Config
}

func NewDiagnosticsUsecase(store domain.DocumentStore, cfg *config.Config) domain.DiagnosticsUsecase {
	return &diagnosticsUsecase{store: store, cfg: cfg}
}

// Snapshot reports storage health without ever failing: an unreachable or
// degraded store only changes the database field of the report.
func (uc *diagnosticsUsecase) Snapshot(ctx context.Context) domain.DiagnosticsReport {
	report := domain.DiagnosticsReport{
		Backend:          "running",
		Database:         "not initialized",
		ConnectionStatus: "not connected",
		Collections:      []string{},
		DatabaseURLSet:   uc.cfg.DBUrl != "",
		DatabaseNameSet:  uc.cfg.DBName != "",
	}

	if uc.store == nil {
		return report
	}

	report.ConnectionStatus = "connected"
	collections, err := uc.store.ListCollections(ctx, collectionListLimit)
	if err != nil {
		report.Database = "degraded: " + truncate(err.Error(), 50)
		return report
	}

	report.Database = "connected"
	if collections != nil {
		report.Collections = collections
	}
	return report
}
