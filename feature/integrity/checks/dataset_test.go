package checks

import (
	"testing"

	"china-division/core/dataset"
	"china-division/core/division"
	"china-division/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDataset_Embedded(t *testing.T) {
	store, err := data.Load()
	require.NoError(t, err)
	r, err := division.NewResolver(store, data.CurrentRevision)
	require.NoError(t, err)

	report := CheckDataset(r)
	assert.True(t, report.Matched)
	assert.Equal(t, data.CurrentRevision, report.Current)
	require.Len(t, report.Revisions, store.Len())
	assert.Equal(t, "201904", report.Revisions[0].Revision)

	for _, rev := range report.Revisions {
		assert.Equal(t, "ok", rev.Status, rev.Revision)
		assert.Equal(t, rev.Divisions, rev.Provinces+rev.Prefectures+rev.Counties, rev.Revision)
		assert.Empty(t, rev.Orphans)
		assert.Empty(t, rev.Gaps)
	}
}

func TestCheckDataset_Defects(t *testing.T) {
	store, err := dataset.New([]*dataset.Table{
		dataset.NewTable("2020", map[string]string{
			"320000": "江苏省",
			"320102": "玄武区",
		}),
		dataset.NewTable("2019", map[string]string{
			"110000": "北京市",
			"320100": "南京市",
		}),
	})
	require.NoError(t, err)
	r, err := division.NewResolver(store, "2020")
	require.NoError(t, err)

	report := CheckDataset(r)
	assert.False(t, report.Matched)
	require.Len(t, report.Revisions, 2)

	gap := report.Revisions[0]
	assert.Equal(t, "2020", gap.Revision)
	assert.Equal(t, int64(20200000), gap.RecencyKey)
	assert.Equal(t, "warning", gap.Status)
	assert.Equal(t, []string{"320102"}, gap.Gaps)
	assert.Equal(t, 1, gap.Counties)

	orphan := report.Revisions[1]
	assert.Equal(t, "error", orphan.Status)
	assert.Equal(t, []string{"320100"}, orphan.Orphans)
	assert.Equal(t, 1, orphan.Provinces)
	assert.Equal(t, 0, orphan.Prefectures)
}
