package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsweep/errors"
	"jobsweep/store"
	"jobsweep/usajobs"
)

var runDate = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "report_test.db"))
	require.NoError(t, s.EnsureSchema())

	farFuture := "2099-01-01T00:00:00.0000000"
	positions := []usajobs.Position{
		{
			PositionID: "R1", Title: "Data Analyst",
			OrganizationName: "Department of the Treasury",
			RemunerationMin:  4000, RemunerationMax: 6000, RemunerationRate: "Monthly",
			WhoMayApply: "United States Citizens", ApplicationCloseDate: farFuture,
		},
		{
			PositionID: "R2", Title: "Data Scientist",
			OrganizationName: "Department of the Treasury",
			RemunerationMin:  5000, RemunerationMax: 8000, RemunerationRate: "Monthly",
			WhoMayApply: "Student/Internship Program Eligibles", ApplicationCloseDate: farFuture,
		},
		{
			PositionID: "R3", Title: "Budget Officer",
			OrganizationName: "Department of Commerce",
			RemunerationMin:  90000, RemunerationMax: 120000, RemunerationRate: "Annual",
			WhoMayApply: "United States Citizens", ApplicationCloseDate: "2020-01-01T00:00:00.0000000",
		},
	}
	require.NoError(t, s.Upsert(positions))
	return s
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRunCreatesDatedDirectoryAndFiles(t *testing.T) {
	exports := filepath.Join(t.TempDir(), "exports")
	engine := NewEngine(seededStore(t), exports)

	runDir, written, err := engine.Run(runDate)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(exports, "2026-08-31"), runDir)
	require.Len(t, written, 3)
	for i, path := range written {
		assert.Equal(t, filepath.Join(runDir, fmt.Sprintf("query%d_2026-08-31.csv", i+1)), path)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	}
}

func TestQueryOneFiltersMonthlyDataTitles(t *testing.T) {
	exports := t.TempDir()
	engine := NewEngine(seededStore(t), exports)

	_, written, err := engine.Run(runDate)
	require.NoError(t, err)

	records := readCSV(t, written[0])
	assert.Equal(t, []string{"TITLE_ID", "TITLE", "REMUNERATION_MIN"}, records[0])
	// Two monthly "data" titles, ordered by title descending
	require.Len(t, records, 3)
	assert.Equal(t, "Data Scientist", records[1][1])
	assert.Equal(t, "Data Analyst", records[2][1])
}

func TestQueryTwoAppliesMonthlyFilterToBothBranches(t *testing.T) {
	exports := t.TempDir()
	engine := NewEngine(seededStore(t), exports)

	_, written, err := engine.Run(runDate)
	require.NoError(t, err)

	records := readCSV(t, written[1])
	require.Len(t, records, 3)
	// R3 is Annual and must not appear even though its eligibility matches;
	// remaining groups ordered by average minimum descending
	assert.Equal(t, "Student/Internship Program Eligibles", records[1][0])
	assert.Equal(t, "5000", records[1][1])
	assert.Equal(t, "United States Citizens", records[2][0])
	assert.Equal(t, "4000", records[2][1])
}

func TestQueryThreeCountsOnlyOpenPositions(t *testing.T) {
	exports := t.TempDir()
	engine := NewEngine(seededStore(t), exports)

	_, written, err := engine.Run(runDate)
	require.NoError(t, err)

	records := readCSV(t, written[2])
	assert.Equal(t, []string{"ORGANISATION_NAME", "COUNT(TITLE_ID)"}, records[0])
	// R3 closed in 2020 and is excluded
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Department of the Treasury", "2"}, records[1])
}

func TestCSVRowCountIsResultsPlusHeader(t *testing.T) {
	s := seededStore(t)
	engine := NewEngine(s, t.TempDir())

	_, written, err := engine.Run(runDate)
	require.NoError(t, err)

	for i, path := range written {
		rs, qerr := s.Query(Canonical[i].SQL)
		require.NoError(t, qerr)
		records := readCSV(t, path)
		assert.Len(t, records, len(rs.Rows)+1)
		assert.Equal(t, rs.Columns, records[0])
	}
}

func TestRunAbortsOnQueryFailure(t *testing.T) {
	// A store with no schema makes every query fail
	s := store.New(filepath.Join(t.TempDir(), "empty.db"))
	engine := NewEngine(s, t.TempDir())

	_, written, err := engine.Run(runDate)
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
	assert.Empty(t, written)
}
