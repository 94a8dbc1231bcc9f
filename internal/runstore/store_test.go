package runstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shriyae/ladderboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunStoreLifecycle tests a full begin/end/status cycle on SQLite.
func TestRunStoreLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	start := time.Now()
	runID, err := store.BeginRun(start, map[string]any{"year": 2024, "limit": 10})
	require.NoError(t, err)
	assert.Positive(t, runID)

	require.NoError(t, store.EndRun(runID, start.Add(42*time.Millisecond), 24))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, 24, runs[0].TotalRecords)
	assert.GreaterOrEqual(t, runs[0].DurationMs, int64(42))
	assert.Contains(t, runs[0].ConfigParams, `"year":2024`)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, int64(1), status.TableSizes[reportRunsTable])
}

// TestRunStoreMultipleRuns tests ordering and status over several runs.
func TestRunStoreMultipleRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	base := time.Now()
	for i := range 3 {
		id, err := store.BeginRun(base.Add(time.Duration(i)*time.Second), nil)
		require.NoError(t, err)
		require.NoError(t, store.EndRun(id, base.Add(time.Duration(i)*time.Second+time.Millisecond), i))
	}

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	// Oldest first.
	assert.Less(t, runs[0].RunID, runs[2].RunID)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(3), status.TotalRuns)
	assert.Equal(t, runs[2].RunID, status.LastRunID)
	assert.True(t, status.OldestRunTime.Before(status.LastRunTime))
}

// TestRunStoreNoneBackend tests that the no-op store swallows everything.
func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	require.NoError(t, store.EndRun(0, time.Now(), 0))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	require.NoError(t, store.Close())
}

// TestRunStoreUnsupportedBackend tests backend validation.
func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

// TestClearRuns tests SQLite file removal.
func TestClearRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is fine; the file is already gone.
	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))

	// None backend is a no-op; missing file path is an error for SQLite.
	require.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
	require.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
}

// TestMigrateRuns tests migrations up and down on SQLite.
func TestMigrateRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	// Up to latest, then all the way back down.
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 0))

	// None backend cannot be migrated.
	require.Error(t, MigrateRuns(schema.NoneBackend, "", -1))
}
