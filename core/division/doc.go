// Package division resolves administrative-division codes to names and derives
// their place in the province / prefecture / county hierarchy.
//
// A code has three two-digit segments:
//
//	11 01 01
//	|  |  +-- county
//	|  +----- prefecture
//	+-------- province
//
// "00" in the prefecture or county segment marks an aggregate at the level
// above. Hierarchy is never stored; it is derived by rewriting the code
// (first two digits + "0000", first four digits + "00") and looking the
// result up in the same revision.
//
// # Usage
//
//	store, err := data.Load()
//	r, err := division.NewResolver(store, data.CurrentRevision)
//	d, ok := r.Get("110101")
//	stack, err := d.Stack() // 北京市, 市辖区, 东城区
//
// Lookups that find nothing return ok == false. A division whose province row
// is missing yields an error wrapping ErrMissingParent; that is a dataset
// defect and callers should surface it.
package division
