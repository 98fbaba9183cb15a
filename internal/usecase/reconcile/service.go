package reconcile

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/logger"
	"github.com/kailas-cloud/bonfire/internal/metrics"
)

const (
	kindPerson = "person"
	kindItem   = "item"

	actionMerged  = "merged"
	actionDeleted = "deleted"
)

// Service brings the graph back in line with the document store.
// Documents are authoritative: nodes without a document are removed and
// documents without a node get one.
type Service struct {
	graph   Graph
	persons PersonIndex
	items   ItemSource
}

// New creates a reconciliation service.
func New(g Graph, persons PersonIndex, items ItemSource) *Service {
	return &Service{graph: g, persons: persons, items: items}
}

// Sweep compares both stores and repairs the differences. With dryRun only
// the report is produced. A failed repair is recorded in the report and the
// sweep continues.
func (s *Service) Sweep(ctx context.Context, dryRun bool) (Report, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	personDocs, err := s.persons.IDs(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list person documents: %w", err)
	}
	items, err := s.items.All(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list item documents: %w", err)
	}
	personNodes, err := s.graph.PersonIDs(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list person nodes: %w", err)
	}
	itemNodes, err := s.graph.ItemIDs(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list item nodes: %w", err)
	}

	itemDocs := make([]string, 0, len(items))
	tags := make(map[string][]string, len(items))
	for _, it := range items {
		itemDocs = append(itemDocs, it.ID)
		tags[it.ID] = it.TagNames
	}

	r := Report{
		DryRun:          dryRun,
		DanglingPersons: difference(personNodes, personDocs),
		DanglingItems:   difference(itemNodes, itemDocs),
		MissingPersons:  difference(personDocs, personNodes),
		MissingItems:    difference(itemDocs, itemNodes),
	}

	if !dryRun {
		for _, id := range r.DanglingPersons {
			s.repair(ctx, &r, kindPerson, actionDeleted, id, s.graph.DeletePerson(ctx, id))
		}
		for _, id := range r.DanglingItems {
			s.repair(ctx, &r, kindItem, actionDeleted, id, s.graph.DeleteItem(ctx, id))
		}
		for _, id := range r.MissingPersons {
			s.repair(ctx, &r, kindPerson, actionMerged, id, s.graph.MergePerson(ctx, id))
		}
		for _, id := range r.MissingItems {
			s.repair(ctx, &r, kindItem, actionMerged, id, s.graph.MergeItem(ctx, id, tags[id]))
		}
	}

	r.Took = time.Since(start)
	log.Info("reconcile sweep finished",
		zap.Bool("dry_run", dryRun),
		zap.Int("repairs", r.Repairs()),
		zap.Int("failures", len(r.Failures)),
		zap.Duration("took", r.Took),
	)
	return r, nil
}

func (s *Service) repair(ctx context.Context, r *Report, kind, action, id string, err error) {
	if err != nil {
		logger.FromContext(ctx).Warn("reconcile repair failed",
			zap.String("kind", kind),
			zap.String("action", action),
			zap.String("id", id),
			zap.Error(err),
		)
		r.Failures = append(r.Failures, fmt.Sprintf("%s %s %s: %v", action, kind, id, err))
		return
	}
	metrics.ReconcileRepairsTotal.WithLabelValues(kind, action).Inc()
}

// difference returns the sorted ids of a that are absent from b.
// Ids that are not valid record ids are skipped.
func difference(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	out := []string{}
	for _, id := range a {
		if _, ok := in[id]; ok {
			continue
		}
		if domain.ValidateID(id) != nil {
			continue
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
