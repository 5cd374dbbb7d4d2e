// Package database manages the optional relational target of the export
// command.
//
// Divisions are resolved from the in-memory dataset; the database is only
// written to when exporting and read from when checking the export schema.
//
// # Drivers
//
//   - mysql: production target, DSN built from host/port/user/password/name.
//   - sqlite: file or ":memory:" databases, used locally and in tests.
//
// # Inspector
//
// GetTableColumns reads the live column definitions of a table (SHOW COLUMNS
// on MySQL, PRAGMA table_info on SQLite) so the integrity feature can compare
// them with the export model.
package database
