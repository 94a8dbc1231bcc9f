package contract

import (
	"time"

	"github.com/shriyae/ladderboard/schema"
)

// RunStore tracks report runs in a durable backend. Implementations must be
// no-ops for the "none" backend.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalRecords int) error

	// GetAllRuns returns every tracked run, oldest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection.
	Close() error
}
