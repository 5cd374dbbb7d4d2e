package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = "seq\trevision\tcode\tname\n" +
	"1\t201904\t110000\t北京市\n" +
	"2\t201904\t110100\t市辖区\n" +
	"\n" +
	"3\t201904\t110101\t东城区\n"

func TestParseTable(t *testing.T) {
	table, err := ParseTable("201904", strings.NewReader(sampleTable), DefaultLayout)
	require.NoError(t, err)

	assert.Equal(t, "201904", table.Revision())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"110000", "110100", "110101"}, table.Codes())

	name, ok := table.Name("110101")
	assert.True(t, ok)
	assert.Equal(t, "东城区", name)

	_, ok = table.Name("seq")
	assert.False(t, ok, "header row must be skipped")
}

func TestParseTable_Verbatim(t *testing.T) {
	src := "seq\trevision\tcode\tname\r\n" +
		"1\t2020\t110000\t\"北京\"市\r\n" +
		"2\t2020\t120000\t 天津市 \r\n"

	table, err := ParseTable("2020", strings.NewReader(src), DefaultLayout)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	name, ok := table.Name("110000")
	require.True(t, ok)
	assert.Equal(t, `"北京"市`, name)

	name, ok = table.Name("120000")
	require.True(t, ok)
	assert.Equal(t, " 天津市 ", name)
}

func TestParseTable_CustomLayout(t *testing.T) {
	src := "name\tcode\n北京市\t110000\n"
	table, err := ParseTable("2009", strings.NewReader(src), Layout{CodeColumn: 1, NameColumn: 0})
	require.NoError(t, err)

	name, ok := table.Name("110000")
	assert.True(t, ok)
	assert.Equal(t, "北京市", name)
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		layout   Layout
		contains string
	}{
		{"ShortRow", "h\th\th\th\n1\t2009\t110000\n", DefaultLayout, "expected at least 4 columns"},
		{"ShortCode", "h\th\th\th\n1\t2009\t1100\t北京市\n", DefaultLayout, "invalid code"},
		{"NonNumericCode", "h\th\th\th\n1\t2009\t11000A\t北京市\n", DefaultLayout, "invalid code"},
		{"DuplicateCode", "h\th\th\th\n1\t2009\t110000\t北京市\n2\t2009\t110000\t北京\n", DefaultLayout, "duplicate code"},
		{"PaddedCode", "h\th\th\th\n1\t2009\t 110000\t北京市\n", DefaultLayout, "invalid code"},
		{"QuotedCode", "h\th\th\th\n1\t2009\t\"110000\t北京市\"\n", DefaultLayout, "invalid code"},
		{"SameColumns", "h\th\n", Layout{CodeColumn: 1, NameColumn: 1}, "invalid column layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable("2009", strings.NewReader(tt.src), tt.layout)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseTable_EmptyRevision(t *testing.T) {
	_, err := ParseTable("", strings.NewReader(sampleTable), DefaultLayout)
	assert.ErrorIs(t, err, ErrRevision)
}

func TestRevisionFromPath(t *testing.T) {
	assert.Equal(t, "201904", RevisionFromPath("mca/201904.tsv"))
	assert.Equal(t, "gb2260-2002", RevisionFromPath("divisions/contrib/gb2260-2002.tsv"))
	assert.Equal(t, "2009", RevisionFromPath("2009"))
}
