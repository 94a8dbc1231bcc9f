package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/shriyae/ladderboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvertHappinessRecords tests dataset conversion including the
// nullable region column.
func TestConvertHappinessRecords(t *testing.T) {
	records := []schema.HappinessRecord{
		{Country: "Finland", Region: "Western Europe", Year: 2024, Rank: 1, Score: 7.741, GDPPerCapita: 1.844},
		{Country: "Denmark", Year: 2024, Rank: 2, Score: 7.583},
	}

	rows := ConvertHappinessRecords(records)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Region)
	assert.Equal(t, "Western Europe", *rows[0].Region)
	assert.Equal(t, int32(2024), rows[0].Year)
	assert.InDelta(t, 1.844, rows[0].GDPPerCapita, 1e-9)

	assert.Nil(t, rows[1].Region)
}

// TestConvertRunRecords tests the nullable end time handling.
func TestConvertRunRecords(t *testing.T) {
	finished := schema.RunRecord{RunID: 1, StartTime: time.Now(), EndTime: time.Now(), TotalRecords: 24, ConfigParams: "{}"}
	running := schema.RunRecord{RunID: 2, StartTime: time.Now()}

	rows := ConvertRunRecords([]schema.RunRecord{finished, running})
	require.Len(t, rows, 2)
	assert.NotNil(t, rows[0].EndTime)
	assert.NotNil(t, rows[0].ConfigParams)
	assert.Nil(t, rows[1].EndTime)
	assert.Nil(t, rows[1].ConfigParams)
}

// TestWriteDatasetParquet tests a write/read round trip.
func TestWriteDatasetParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.parquet")

	rows := ConvertHappinessRecords([]schema.HappinessRecord{
		{Country: "Finland", Region: "Western Europe", Year: 2024, Rank: 1, Score: 7.741},
		{Country: "Kenya", Region: "Sub-Saharan Africa", Year: 2024, Rank: 24, Score: 4.470},
	})
	require.NoError(t, WriteDatasetParquet(rows, path))

	readBack, err := parquet.ReadFile[DatasetRow](path)
	require.NoError(t, err)
	require.Len(t, readBack, 2)
	assert.Equal(t, "Finland", readBack[0].Country)
	assert.InDelta(t, 7.741, readBack[0].Score, 1e-9)
	assert.Equal(t, int32(24), readBack[1].Rank)
}

// TestWriteRankingsParquet tests the leaderboard writer.
func TestWriteRankingsParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankings.parquet")

	result := &schema.RankingResult{
		Year: 2024,
		Entries: []schema.RankingEntry{
			{Rank: 1, Country: "Finland", Region: "Western Europe", Score: 7.741},
		},
	}
	require.NoError(t, WriteRankingsParquet(ConvertRankingResult(result), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	readBack, err := parquet.ReadFile[RankingRow](path)
	require.NoError(t, err)
	require.Len(t, readBack, 1)
	assert.Equal(t, int32(2024), readBack[0].Year)
}

// TestWriteParquetBadPath tests that an unwritable path surfaces an error.
func TestWriteParquetBadPath(t *testing.T) {
	err := WriteDatasetParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
