// Package data ships the compiled-in division source tables.
//
// Tables from the civil affairs ministry live in mca/, community maintained
// tables in contrib/. Each file is one revision named after its identifier.
package data

import (
	"embed"
	"io/fs"

	"china-division/core/dataset"
)

// CurrentRevision is the newest revision shipped with this build. Get lookups
// without an explicit revision use it.
const CurrentRevision = "201904"

// SourceDirs lists the source folders in load order.
var SourceDirs = []string{"mca", "contrib"}

//go:embed mca/*.tsv contrib/*.tsv
var sources embed.FS

// FS returns the embedded source tables.
func FS() fs.FS {
	return sources
}

// Tables parses the embedded source tables.
func Tables() ([]*dataset.Table, error) {
	return dataset.LoadFS(sources, dataset.DefaultLayout, SourceDirs...)
}

// Load builds a new Store from the embedded source tables.
func Load(opts ...dataset.Option) (*dataset.Store, error) {
	tables, err := Tables()
	if err != nil {
		return nil, err
	}
	return dataset.New(tables, opts...)
}
