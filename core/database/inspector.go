package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one column as reported by SHOW COLUMNS. Field and Type are
// lowercased.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table. A table
// that does not exist yields no columns on SQLite and an error on MySQL.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var (
		columns []ColumnInfo
		err     error
	)
	if db.Dialector.Name() == DriverSQLite {
		columns, err = sqliteColumns(db, tableName)
	} else {
		err = db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

type sqliteColumn struct {
	Cid       int
	Name      string
	Type      string
	Notnull   int
	DfltValue *string
	Pk        int
}

func sqliteColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var rows []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, row := range rows {
		col := ColumnInfo{
			Field:   row.Name,
			Type:    row.Type,
			Null:    "YES",
			Default: row.DfltValue,
		}
		if row.Notnull == 1 {
			col.Null = "NO"
		}
		if row.Pk > 0 {
			col.Key = "PRI"
		}
		columns = append(columns, col)
	}
	return columns, nil
}
