package checks

import (
	"errors"

	"china-division/core/division"
)

// DatasetReport is the result of the structural dataset check.
type DatasetReport struct {
	Current   string           `json:"current"`
	Matched   bool             `json:"matched"`
	Revisions []RevisionReport `json:"revisions"`
}

// RevisionReport describes one revision. Orphans are codes whose province row
// is missing, which breaks hierarchy derivation. Gaps are county level codes
// without a prefecture row; they resolve but their stack cannot be built.
type RevisionReport struct {
	Revision    string   `json:"revision"`
	RecencyKey  int64    `json:"recency_key"`
	Divisions   int      `json:"divisions"`
	Provinces   int      `json:"provinces"`
	Prefectures int      `json:"prefectures"`
	Counties    int      `json:"counties"`
	Orphans     []string `json:"orphans"`
	Gaps        []string `json:"gaps"`
	Status      string   `json:"status"` // "ok", "warning", "error"
}

// CheckDataset walks every division of every revision, newest first, and
// verifies its hierarchy can be derived.
func CheckDataset(r *division.Resolver) *DatasetReport {
	store := r.Store()
	report := &DatasetReport{
		Current: r.Current(),
		Matched: true,
	}

	for _, revision := range store.Newest() {
		key, _ := store.RecencyKey(revision)
		all, _ := r.All(revision)

		rev := RevisionReport{
			Revision:   revision,
			RecencyKey: key,
			Divisions:  len(all),
			Orphans:    []string{},
			Gaps:       []string{},
			Status:     "ok",
		}

		for _, d := range all {
			if _, err := d.Province(); err != nil {
				rev.Orphans = append(rev.Orphans, d.Code)
				continue
			}
			switch d.Level() {
			case division.LevelProvince:
				rev.Provinces++
			case division.LevelPrefecture:
				rev.Prefectures++
			case division.LevelCounty:
				rev.Counties++
				if _, err := d.Stack(); errors.Is(err, division.ErrMissingParent) {
					rev.Gaps = append(rev.Gaps, d.Code)
				}
			}
		}

		switch {
		case len(rev.Orphans) > 0:
			rev.Status = "error"
			report.Matched = false
		case len(rev.Gaps) > 0:
			rev.Status = "warning"
		}
		report.Revisions = append(report.Revisions, rev)
	}

	return report
}
