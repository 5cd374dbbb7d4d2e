// Package reconcile compares two keyed sources of truth and plans the
// mutations that bring the target in line with the source.
//
// The division exporter uses it to reconcile one revision of the dataset (the
// source) with the rows already stored in the export table (the target).
//
// # Flow
//
//  1. Reconcile builds the union of keys from both indices and reports, per key,
//     where it is present and which fields differ.
//  2. BuildPlan turns those results into actions according to Options:
//     inserts for keys missing in the target, deletes (purge) for keys only in
//     the target, and syncs for field mismatches.
//  3. ApplyPlan hands the actions, grouped by type, to a Mutator. Nothing is
//     executed unless Options.Confirmed is set and Options.DryRun is not.
package reconcile
