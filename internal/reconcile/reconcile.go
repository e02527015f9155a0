// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reconcile merges two record collections keyed by identifier,
// resolving conflicts in favor of the most recently updated record.
package reconcile

import (
	"fmt"
	"log/slog"

	"github.com/pdiddy/researchlib/internal/logging"
	"github.com/pdiddy/researchlib/pkg/types"
)

// Summary counts what happened to each input record during a merge.
type Summary struct {
	// Seeded is the number of distinct identifiers taken from local.
	Seeded int `json:"seeded" yaml:"seeded"`

	// Added is the number of remote records with a new identifier.
	Added int `json:"added" yaml:"added"`

	// Replaced is the number of remote records that won a conflict.
	Replaced int `json:"replaced" yaml:"replaced"`

	// Kept is the number of remote records that lost a conflict.
	Kept int `json:"kept" yaml:"kept"`

	// Dropped is the number of remote records without an identifier.
	Dropped int `json:"dropped" yaml:"dropped"`
}

// Result holds the merged collection and its summary.
type Result struct {
	Records []types.Record `json:"records" yaml:"records"`
	Summary Summary        `json:"summary" yaml:"summary"`
}

// Reconciler merges record collections. The zero value is ready to use.
type Reconciler struct {
	// Logger receives one debug line per conflict. Nil discards.
	Logger *slog.Logger

	// Strict rejects remote records without an identifier instead of
	// dropping them.
	Strict bool
}

// Merge reconciles local and remote with the default Reconciler and returns
// the merged records.
func Merge(local, remote []types.Record) ([]types.Record, error) {
	res, err := (&Reconciler{}).Reconcile(local, remote)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Reconcile seeds a working set from local, keyed by identifier, then
// folds in remote in order. A remote record with a new identifier is
// appended; one with a known identifier replaces the current entry only if
// its last_updated is strictly greater (absent timestamps count as
// 1970-01-01). Remote records without an identifier are dropped, or
// rejected when Strict is set. Local records sharing an identifier collapse
// into the last one at the first one's position.
//
// The output lists local identifiers in local order followed by new remote
// identifiers in remote order. Inputs are not modified.
func (rc *Reconciler) Reconcile(local, remote []types.Record) (Result, error) {
	log := logging.OrDiscard(rc.Logger)

	pos := make(map[string]int, len(local)+len(remote)) // identifier → index in merged
	merged := make([]types.Record, 0, len(local)+len(remote))
	var summary Summary

	for i, r := range local {
		if !r.HasIdentifier() {
			return Result{}, fmt.Errorf("local record %d: %w",
				i, types.NewValidationError(types.FieldIdentifier, "local record has no identifier"))
		}
		id := r.ID()
		if idx, ok := pos[id]; ok {
			merged[idx] = r.Clone()
			continue
		}
		pos[id] = len(merged)
		merged = append(merged, r.Clone())
	}
	summary.Seeded = len(merged)

	for i, r := range remote {
		if !r.HasIdentifier() {
			if rc.Strict {
				return Result{}, fmt.Errorf("remote record %d: %w",
					i, types.NewValidationError(types.FieldIdentifier, "remote record has no identifier"))
			}
			log.Debug("dropping remote record without identifier", "index", i, "title", types.Value(r.Title))
			summary.Dropped++
			continue
		}

		id := r.ID()
		idx, ok := pos[id]
		if !ok {
			pos[id] = len(merged)
			merged = append(merged, r.Clone())
			summary.Added++
			continue
		}

		current, incoming := merged[idx].Timestamp(), r.Timestamp()
		if incoming > current {
			log.Debug("remote record is newer", "identifier", id, "local", current, "remote", incoming)
			merged[idx] = r.Clone()
			summary.Replaced++
			continue
		}
		log.Debug("keeping existing record", "identifier", id, "local", current, "remote", incoming)
		summary.Kept++
	}

	log.Info("merge complete",
		"records", len(merged), "seeded", summary.Seeded, "added", summary.Added,
		"replaced", summary.Replaced, "kept", summary.Kept, "dropped", summary.Dropped)

	return Result{Records: merged, Summary: summary}, nil
}
