package schema

import "time"

// RunRecord is one tracked report run.
type RunRecord struct {
	RunID        int64     `json:"run_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	DurationMs   int64     `json:"duration_ms"`
	TotalRecords int       `json:"total_records"`
	ConfigParams string    `json:"config_params"`
}

// RunStatus summarizes the run tracking store.
type RunStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TableSizes    map[string]int64
}
