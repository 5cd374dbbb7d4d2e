package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_divisions (code CHAR(6) NOT NULL, revision VARCHAR(32) NOT NULL, name TEXT, PRIMARY KEY (code, revision))").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_divisions")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "char(6)", colMap["code"].Type)
	assert.Equal(t, "PRI", colMap["code"].Key)
	assert.Equal(t, "NO", colMap["code"].Null)
	assert.Equal(t, "varchar(32)", colMap["revision"].Type)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "YES", colMap["name"].Null)

	// PRAGMA table_info returns nothing for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
