package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRevision is returned when a revision identifier cannot be turned into a
// recency key.
var ErrRevision = errors.New("invalid revision identifier")

// DefaultRevisionDelimiter separates an optional source prefix from the dated
// part of a revision identifier (e.g. "gb2260-2002").
const DefaultRevisionDelimiter = "-"

// RecencyFunc maps a revision identifier to a key where larger means newer.
type RecencyFunc func(revision string) (int64, error)

// RecencyKey is the default RecencyFunc, using DefaultRevisionDelimiter.
func RecencyKey(revision string) (int64, error) {
	return recencyKey(revision, DefaultRevisionDelimiter)
}

// DelimitedRecencyKey returns a RecencyFunc that reads the dated part after
// the last occurrence of delimiter. An empty delimiter keys on the whole
// identifier.
func DelimitedRecencyKey(delimiter string) RecencyFunc {
	return func(revision string) (int64, error) {
		return recencyKey(revision, delimiter)
	}
}

func recencyKey(revision, delimiter string) (int64, error) {
	dated := revision
	if delimiter != "" {
		if i := strings.LastIndex(revision, delimiter); i >= 0 {
			dated = revision[i+len(delimiter):]
		}
	}

	if !isDigits(dated) {
		return 0, fmt.Errorf("%w: %q", ErrRevision, revision)
	}

	// Normalize to YYYYMMDD so a bare year sorts before any month of that year.
	switch len(dated) {
	case 4:
		dated += "0000"
	case 6:
		dated += "00"
	case 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrRevision, revision)
	}

	key, err := strconv.ParseInt(dated, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrRevision, revision, err)
	}
	return key, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
