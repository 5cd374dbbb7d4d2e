// Package integrity validates the loaded dataset and the export schema.
//
// # Checks Provided
//
//   - Dataset: Walks every revision, newest first, and verifies that each code's
//     province row exists (orphans are errors) and that county level codes have a
//     prefecture row (gaps are warnings).
//   - Schema: Validates that the connected database's divisions table matches the
//     export model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/dataset : Runs the dataset check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
