package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsweep/errors"
	"jobsweep/usajobs"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "jobsweep_test.db"))
}

func samplePosition(id string) usajobs.Position {
	return usajobs.Position{
		PositionID:           id,
		Title:                "Data Analyst",
		OrganizationName:     "Department of the Treasury",
		RemunerationMin:      4200.50,
		RemunerationMax:      6800.75,
		RemunerationRate:     "Monthly",
		WhoMayApply:          "United States Citizens",
		ApplicationCloseDate: "2026-10-15T00:00:00.0000000",
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.EnsureSchema())
	require.NoError(t, s.Upsert([]usajobs.Position{samplePosition("P1")}))

	// Re-running schema creation must not drop existing rows
	for i := 0; i < 3; i++ {
		require.NoError(t, s.EnsureSchema())
	}

	rs, err := s.Query("SELECT COUNT(*) FROM POSITION")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, "1", rs.Rows[0][0])
}

func TestUpsertCountsDistinctIDs(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureSchema())

	err := s.Upsert([]usajobs.Position{
		samplePosition("P1"),
		samplePosition("P2"),
		samplePosition("P3"),
	})
	require.NoError(t, err)

	rs, err := s.Query("SELECT COUNT(*) FROM POSITION")
	require.NoError(t, err)
	assert.Equal(t, "3", rs.Rows[0][0])
}

func TestUpsertReplacesFullRow(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureSchema())

	original := samplePosition("P1")
	require.NoError(t, s.Upsert([]usajobs.Position{original}))

	replacement := usajobs.Position{
		PositionID:           "P1",
		Title:                "Senior Data Analyst",
		OrganizationName:     "Department of Commerce",
		RemunerationMin:      5000,
		RemunerationMax:      9000,
		RemunerationRate:     "Annual",
		WhoMayApply:          "Student/Internship Program Eligibles",
		ApplicationCloseDate: "2026-12-01T00:00:00.0000000",
	}
	require.NoError(t, s.Upsert([]usajobs.Position{replacement}))

	rs, err := s.Query("SELECT * FROM POSITION WHERE TITLE_ID = 'P1'")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, []string{
		"P1",
		"Senior Data Analyst",
		"Department of Commerce",
		"5000",
		"9000",
		"Annual",
		"Student/Internship Program Eligibles",
		"2026-12-01T00:00:00.0000000",
	}, rs.Rows[0])
}

func TestRoundTripPreservesEveryField(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureSchema())

	p := samplePosition("RT1")
	require.NoError(t, s.Upsert([]usajobs.Position{p}))

	rs, err := s.Query("SELECT * FROM POSITION WHERE TITLE_ID = 'RT1'")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)

	assert.Equal(t, []string{
		"TITLE_ID", "TITLE", "ORGANISATION_NAME",
		"REMUNERATION_MIN", "REMUNERATION_MAX", "REMUNERATION_RATE",
		"WHO_MAY_APPLY", "APPLICATION_CLOSE_DATE",
	}, rs.Columns)

	row := rs.Rows[0]
	assert.Equal(t, p.PositionID, row[0])
	assert.Equal(t, p.Title, row[1])
	assert.Equal(t, p.OrganizationName, row[2])
	assert.Equal(t, "4200.5", row[3])
	assert.Equal(t, "6800.75", row[4])
	assert.Equal(t, p.RemunerationRate, row[5])
	assert.Equal(t, p.WhoMayApply, row[6])
	assert.Equal(t, p.ApplicationCloseDate, row[7])
}

func TestUpsertEmptyBatch(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureSchema())
	require.NoError(t, s.Upsert(nil))
}

func TestQueryErrorIsStorage(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureSchema())

	_, err := s.Query("SELECT * FROM NO_SUCH_TABLE")
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
}

func TestQueryReturnsHeaderNamesVerbatim(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.EnsureSchema())
	require.NoError(t, s.Upsert([]usajobs.Position{samplePosition("P1")}))

	rs, err := s.Query("SELECT TITLE_ID, AVG(REMUNERATION_MIN) FROM POSITION GROUP BY TITLE_ID")
	require.NoError(t, err)
	assert.Equal(t, []string{"TITLE_ID", "AVG(REMUNERATION_MIN)"}, rs.Columns)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, "4200.5", rs.Rows[0][1])
}
