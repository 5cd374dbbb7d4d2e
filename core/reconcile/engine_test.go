package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(key, name string) Item {
	return Item{Key: key, Name: name, Fields: map[string]string{"name": name}}
}

func TestReconcile(t *testing.T) {
	source := Index{
		"110000": item("110000", "北京市"),
		"110119": item("110119", "延庆区"),
		"110101": item("110101", "东城区"),
	}
	target := Index{
		"110000": item("110000", "北京市"),
		"110119": item("110119", "延庆县"),
		"110229": item("110229", "延庆县"),
	}

	results := Reconcile(source, target)
	require.Len(t, results, 4)

	// Sorted by key
	assert.Equal(t, "110000", results[0].Key)
	assert.Equal(t, "110101", results[1].Key)
	assert.Equal(t, "110119", results[2].Key)
	assert.Equal(t, "110229", results[3].Key)

	assert.True(t, results[0].SourcePresent)
	assert.True(t, results[0].TargetPresent)
	assert.Empty(t, results[0].Mismatch)

	assert.True(t, results[1].SourcePresent)
	assert.False(t, results[1].TargetPresent)

	assert.Equal(t, []string{"name: source=延庆区 target=延庆县"}, results[2].Mismatch)
	assert.Equal(t, "延庆区", results[2].Name, "source name wins")

	assert.False(t, results[3].SourcePresent)
	assert.Equal(t, "延庆县", results[3].Name)
}

func TestReconcile_Empty(t *testing.T) {
	assert.Empty(t, Reconcile(Index{}, Index{}))
}

func TestCompareFields(t *testing.T) {
	src := Item{Fields: map[string]string{"level": "county", "name": "东城区", "prefecture_code": "110100"}}
	dst := Item{Fields: map[string]string{"level": "prefecture", "name": "东城区"}}

	assert.Equal(t, []string{
		"level: source=county target=prefecture",
		"prefecture_code: source=110100 target=",
	}, CompareFields(src, dst))

	assert.Empty(t, CompareFields(src, src))
}
