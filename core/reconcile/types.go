package reconcile

import "context"

// Item is one keyed record. Fields hold the compared values; Value carries the
// caller's own representation through to the Mutator.
type Item struct {
	Key    string
	Name   string
	Fields map[string]string
	Value  any
}

// Index maps keys to items.
type Index map[string]Item

// Result is the reconciliation output for a single key.
type Result struct {
	// Key is the unique identifier of the entity.
	Key string `json:"key"`

	// Name is the display name, taken from the source when present.
	Name string `json:"name"`

	// SourcePresent indicates whether the key exists in the source.
	SourcePresent bool `json:"source_present"`

	// TargetPresent indicates whether the key exists in the target.
	TargetPresent bool `json:"target_present"`

	// Mismatch describes differing fields, e.g. "name: source=延庆区 target=延庆县".
	Mismatch []string `json:"mismatch"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionInsert writes a source item missing in the target.
	ActionInsert ActionType = "insert"
	// ActionDelete removes a target item missing in the source.
	ActionDelete ActionType = "delete"
	// ActionSync overwrites target fields with the source values.
	ActionSync ActionType = "sync"
)

// Action represents a planned mutation operation.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`

	// Item is the source item for insert and sync actions.
	Item Item `json:"-"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	Results []Result    `json:"results"`
	Actions []Action    `json:"actions"`
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	TotalItems    int `json:"total_items"`
	MissingTarget int `json:"missing_target"`
	MissingSource int `json:"missing_source"`
	Mismatches    int `json:"mismatches"`
	InsertActions int `json:"insert_actions"`
	DeleteActions int `json:"delete_actions"`
	SyncActions   int `json:"sync_actions"`
}

// Options controls which actions are planned and whether they run.
type Options struct {
	// DoInsert plans inserts for keys missing in the target.
	DoInsert bool
	// DoPurge plans deletes for keys missing in the source.
	DoPurge bool
	// DoSync plans syncs for mismatched keys.
	DoSync bool
	// DryRun prevents execution of any mutations.
	DryRun bool
	// Confirmed indicates the caller confirmed destructive actions.
	Confirmed bool
}

// Mutator applies grouped actions to the target.
type Mutator interface {
	Insert(ctx context.Context, items []Item) error
	Delete(ctx context.Context, keys []string) error
	Sync(ctx context.Context, items []Item) error
}
