package legacy

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/require"
)

func writeLegacyDB(t *testing.T, rows []FeatureRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.sqlite")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE featureList (hip1 INTEGER, hip2 INTEGER, theta REAL)`)
	require.NoError(t, err)

	for _, r := range rows {
		_, err = db.Exec(`INSERT INTO featureList (hip1, hip2, theta) VALUES (?, ?, ?)`, r.Hip1, r.Hip2, r.Theta)
		require.NoError(t, err)
	}
	return path
}

func TestOpenDatabaseCopiesRowsIntoMemory(t *testing.T) {
	path := writeLegacyDB(t, []FeatureRow{
		{Hip1: 1, Hip2: 2, Theta: 10.5},
		{Hip1: 1, Hip2: 3, Theta: 20.0},
	})

	store, err := OpenDatabase(path)
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.RangeTheta(10.0, 11.0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int32(1), rows[0].Hip1)
	require.Equal(t, int32(2), rows[0].Hip2)
}

func TestOpenDatabaseRejectsAnEmptyFeatureTable(t *testing.T) {
	path := writeLegacyDB(t, nil)

	_, err := OpenDatabase(path)
	require.Error(t, err)
}

func TestExactPairIsSymmetric(t *testing.T) {
	path := writeLegacyDB(t, []FeatureRow{{Hip1: 7, Hip2: 9, Theta: 15.25}})

	store, err := OpenDatabase(path)
	require.NoError(t, err)
	defer store.Close()

	theta, ok, err := store.ExactPair(7, 9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 15.25, theta)

	theta, ok, err = store.ExactPair(9, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 15.25, theta)

	_, ok, err = store.ExactPair(1, 2)
	require.NoError(t, err)
	require.False(t, ok)
}
