package dataset

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"strings"
)

// SourceExt is the file extension of revision source tables.
const SourceExt = ".tsv"

// CodeLength is the fixed length of a division code.
const CodeLength = 6

// Layout tells the parser where the code and name columns are (zero based).
type Layout struct {
	CodeColumn int
	NameColumn int
}

// DefaultLayout matches the published source tables.
var DefaultLayout = Layout{CodeColumn: 2, NameColumn: 3}

// RevisionFromPath derives the revision identifier from a source file path:
// the base name without its extension. Hyphens are kept as-is.
func RevisionFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ParseTable reads a tab-separated source table. The first line is a header
// and is skipped, as are blank lines. Fields are split on tabs with no quoting;
// names are kept verbatim. Malformed rows fail the whole table.
func ParseTable(revision string, r io.Reader, layout Layout) (*Table, error) {
	if revision == "" {
		return nil, fmt.Errorf("%w: empty", ErrRevision)
	}
	width := max(layout.CodeColumn, layout.NameColumn) + 1
	if layout.CodeColumn < 0 || layout.NameColumn < 0 || layout.CodeColumn == layout.NameColumn {
		return nil, fmt.Errorf("invalid column layout %+v", layout)
	}

	names := make(map[string]string)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		record := strings.Split(text, "\t")
		if len(record) < width {
			return nil, fmt.Errorf("revision %s line %d: expected at least %d columns, got %d", revision, line, width, len(record))
		}

		code := record[layout.CodeColumn]
		if len(code) != CodeLength || !isDigits(code) {
			return nil, fmt.Errorf("revision %s line %d: invalid code %q", revision, line, code)
		}
		if _, dup := names[code]; dup {
			return nil, fmt.Errorf("revision %s line %d: duplicate code %s", revision, line, code)
		}
		names[code] = record[layout.NameColumn]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("revision %s: %w", revision, err)
	}

	return &Table{revision: revision, names: names}, nil
}
