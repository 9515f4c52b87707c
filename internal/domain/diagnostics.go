package domain

import "context"

// DiagnosticsReport is a best-effort snapshot of storage health. Config
// presence is reported as booleans only; values are never echoed back.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
}

// DiagnosticsUsecase produces the storage health snapshot. It never fails;
// storage problems degrade the report instead.
type DiagnosticsUsecase interface {
	Snapshot(ctx context.Context) DiagnosticsReport
}
