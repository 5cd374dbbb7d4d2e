// Package models holds the relational form of exported divisions.
package models

// Division is one exported row. (code, revision) is the primary key.
type Division struct {
	Code           string  `gorm:"primaryKey;column:code;type:char(6)"`
	Revision       string  `gorm:"primaryKey;column:revision;type:varchar(32)"`
	Name           string  `gorm:"column:name;type:varchar(128);not null"`
	Level          string  `gorm:"column:level;type:varchar(16);not null"`
	ProvinceCode   string  `gorm:"column:province_code;type:char(6);not null"`
	PrefectureCode *string `gorm:"column:prefecture_code;type:char(6)"` // Nullable for provinces and data gaps
}

// TableName is the export table.
func (Division) TableName() string {
	return "divisions"
}
