//go:build basic

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ladderboardOutput runs the CLI and returns its stdout.
func ladderboardOutput(t *testing.T, args ...string) string {
	t.Helper()
	binaryPath := getLadderboardBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../"
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Run(), "stderr: %s", stderr.String())
	return stdout.String()
}

// TestRankingsSmoke tests the rankings command end to end on the bundled sample.
func TestRankingsSmoke(t *testing.T) {
	out := ladderboardOutput(t, "rankings", "--year", "2015", "--region", "Western Europe", "--run-backend", "none")
	assert.Contains(t, out, "Switzerland")
	assert.Contains(t, out, "Showing top")
}

// TestExportJSONSmoke tests a JSON export round trip.
func TestExportJSONSmoke(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "export.json")
	_ = ladderboardOutput(t, "export", "--country", "Finland", "--output", "json", "--output-file", outFile, "--run-backend", "none")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "Finland", records[0]["country"])
}

// TestMissingDatasetSmoke tests that a bad dataset path fails with a clear message.
func TestMissingDatasetSmoke(t *testing.T) {
	binaryPath := getLadderboardBinary()
	cmd := exec.Command(binaryPath, "rankings", "/nonexistent/happiness.csv", "--run-backend", "none")
	cmd.Dir = "../"
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "dataset file not found")
}
