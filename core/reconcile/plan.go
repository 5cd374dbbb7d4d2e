package reconcile

import (
	"context"
	"fmt"
)

// BuildPlan reconciles source and target and plans actions allowed by opts.
// It does NOT execute actions; use ApplyPlan for that.
func BuildPlan(source, target Index, opts Options) *Plan {
	results := Reconcile(source, target)

	plan := &Plan{
		Results: results,
		Actions: []Action{},
	}
	s := &plan.Summary
	s.TotalItems = len(results)

	for _, r := range results {
		switch {
		case !r.TargetPresent:
			s.MissingTarget++
			if opts.DoInsert {
				plan.Actions = append(plan.Actions, Action{
					Type:   ActionInsert,
					Key:    r.Key,
					Reason: "missing in target",
					Item:   source[r.Key],
				})
				s.InsertActions++
			}
		case !r.SourcePresent:
			s.MissingSource++
			if opts.DoPurge {
				plan.Actions = append(plan.Actions, Action{
					Type:   ActionDelete,
					Key:    r.Key,
					Reason: "missing in source",
				})
				s.DeleteActions++
			}
		case len(r.Mismatch) > 0:
			s.Mismatches++
			if opts.DoSync {
				plan.Actions = append(plan.Actions, Action{
					Type:   ActionSync,
					Key:    r.Key,
					Reason: fmt.Sprintf("%d field(s) differ", len(r.Mismatch)),
					Item:   source[r.Key],
				})
				s.SyncActions++
			}
		}
	}

	return plan
}

// ApplyPlan executes the actions in plan through m, deletes first.
// Returns the number of actions executed. Requires opts.Confirmed=true and
// opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, m Mutator, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var (
		deleteKeys  []string
		insertItems []Item
		syncItems   []Item
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDelete:
			deleteKeys = append(deleteKeys, action.Key)
		case ActionInsert:
			insertItems = append(insertItems, action.Item)
		case ActionSync:
			syncItems = append(syncItems, action.Item)
		}
	}

	if len(deleteKeys) > 0 {
		if err := m.Delete(ctx, deleteKeys); err != nil {
			return executed, fmt.Errorf("failed to delete %d keys: %w", len(deleteKeys), err)
		}
		executed += len(deleteKeys)
	}

	if len(insertItems) > 0 {
		if err := m.Insert(ctx, insertItems); err != nil {
			return executed, fmt.Errorf("failed to insert %d items: %w", len(insertItems), err)
		}
		executed += len(insertItems)
	}

	if len(syncItems) > 0 {
		if err := m.Sync(ctx, syncItems); err != nil {
			return executed, fmt.Errorf("failed to sync %d items: %w", len(syncItems), err)
		}
		executed += len(syncItems)
	}

	return executed, nil
}
