package dataset

import "sort"

// Table is the code -> name mapping of one revision. It is read-only.
type Table struct {
	revision string
	names    map[string]string
}

// NewTable copies names into a new Table for revision.
func NewTable(revision string, names map[string]string) *Table {
	copied := make(map[string]string, len(names))
	for code, name := range names {
		copied[code] = name
	}
	return &Table{revision: revision, names: copied}
}

// Revision returns the revision identifier of the table.
func (t *Table) Revision() string {
	return t.revision
}

// Name returns the name stored for code.
func (t *Table) Name(code string) (string, bool) {
	name, ok := t.names[code]
	return name, ok
}

// Len returns the number of codes in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Codes returns every code in the table in ascending order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.names))
	for code := range t.names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
