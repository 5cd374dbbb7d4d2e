package checks

import (
	"fmt"
	"reflect"
	"strings"

	"china-division/core/database"
	"china-division/feature/export/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the export table with its model.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies the export table using the gorm model as the source of truth.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := models.Division{}
	report := &SchemaReport{
		Table:          model.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
	}

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		report.Matched = false
		return report, nil
	}
	if len(actualCols) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("table %s does not exist", report.Table))
		report.Matched = false
		return report, nil
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	typ := reflect.TypeOf(model)
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("gorm")
		column := gormTagValue(tag, "column")
		if column == "" {
			continue
		}

		col, ok := actual[column]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, column)
			report.Matched = false
			continue
		}

		// Soft match: "varchar(32)" accepts "varchar(32)" and "varchar(32) binary".
		if want := strings.ToLower(gormTagValue(tag, "type")); want != "" && !strings.Contains(col.Type, want) {
			report.TypeMismatches = append(report.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", column, want, col.Type))
			report.Matched = false
		}
	}

	return report, nil
}

func gormTagValue(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
