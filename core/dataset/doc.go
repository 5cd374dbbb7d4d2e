// Package dataset holds the immutable, revision-keyed division tables.
//
// A Table maps six-digit division codes to names for a single revision. A Store
// maps revision identifiers to tables and is built once, before any lookup
// happens. Nothing in this package mutates a Store after New returns, so a
// single Store can be shared by any number of goroutines without locking.
//
// # Revisions
//
// Revision identifiers are opaque strings taken from source file names
// (e.g. "201904", "2009", "gb2260-2002"). For recency ordering each identifier
// is reduced to a numeric key by a RecencyFunc. The default takes the part
// after the last "-" (or the whole identifier) and accepts YYYY, YYYYMM or
// YYYYMMDD. An identifier that cannot be keyed makes New fail.
//
// # Sources
//
// Tables are compiled from tab-separated source files, one per revision, with a
// header row. Sources can come from any fs.FS (including the embedded data
// package) or from an object-storage bucket:
//
//	tables, err := dataset.LoadFS(os.DirFS("./data"), dataset.DefaultLayout, "mca", "contrib")
//	if err != nil {
//	    return err
//	}
//	store, err := dataset.New(tables)
package dataset
