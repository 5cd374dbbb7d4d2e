package reconcile

import (
	"fmt"
	"sort"
)

// Reconcile compares source and target and returns one result per key in
// either index, sorted by key.
func Reconcile(source, target Index) []Result {
	union := make(map[string]struct{}, len(source))
	for key := range source {
		union[key] = struct{}{}
	}
	for key := range target {
		union[key] = struct{}{}
	}

	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, source, target))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results
}

func buildResult(key string, source, target Index) Result {
	src, inSource := source[key]
	dst, inTarget := target[key]

	result := Result{
		Key:           key,
		SourcePresent: inSource,
		TargetPresent: inTarget,
		Mismatch:      []string{},
	}

	switch {
	case inSource:
		result.Name = src.Name
	case inTarget:
		result.Name = dst.Name
	}

	if inSource && inTarget {
		result.Mismatch = CompareFields(src, dst)
	}
	return result
}

// CompareFields lists the fields whose values differ between src and dst,
// ordered by field name. A field absent on one side compares as empty.
func CompareFields(src, dst Item) []string {
	names := make(map[string]struct{}, len(src.Fields))
	for name := range src.Fields {
		names[name] = struct{}{}
	}
	for name := range dst.Fields {
		names[name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	mismatch := []string{}
	for _, name := range sorted {
		if a, b := src.Fields[name], dst.Fields[name]; a != b {
			mismatch = append(mismatch, fmt.Sprintf("%s: source=%s target=%s", name, a, b))
		}
	}
	return mismatch
}
