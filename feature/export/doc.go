// Package export writes the dataset into a relational table.
//
// Every division of the selected revisions is written to the `divisions`
// table together with its derived level, province code and prefecture code.
// Rows are upserted on (code, revision) in batches, so re-running an export
// is idempotent.
//
// Exporting derives the hierarchy of every row, so a dataset whose province
// rows are incomplete fails the export instead of writing broken parents.
//
// Plan and Apply reconcile one revision of the table with the dataset: rows
// missing in the table are inserted, stale rows purged and drifted rows
// synced, each only when requested.
package export
