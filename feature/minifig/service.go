package minifig

import (
	"context"
	"sort"

	"brick-manager/core/catalogapi"

	"go.uber.org/zap"
)

// Status flags how a minifig mapping was obtained.
type Status string

const (
	// StatusSynced means the mapping came from the persisted table.
	StatusSynced Status = "synced"
	// StatusResolved means the mapping was freshly resolved externally.
	StatusResolved Status = "resolved"
	// StatusUnmapped means no mapping could be found.
	StatusUnmapped Status = "unmapped"
)

// Result is the outcome for one requested minifig ID.
type Result struct {
	BLFigID string `json:"bl_fig_id,omitempty"`
	Status  Status `json:"status"`
}

// FigStore is the persisted mapping-table collaborator.
type FigStore interface {
	GetMinifigMappings(ctx context.Context, rbFigIDs []string) (map[string]string, error)
	SaveMinifigMapping(ctx context.Context, rbFigID, blFigID string) error
}

// Service maps batches of minifig IDs across catalogs.
type Service struct {
	store    FigStore
	resolver catalogapi.Client
	logger   *zap.Logger
}

// NewService creates a new minifig mapping service.
func NewService(store FigStore, resolver catalogapi.Client, logger *zap.Logger) *Service {
	return &Service{store: store, resolver: resolver, logger: logger}
}

// MapAll resolves every requested ID, batching the table lookup into one
// query and falling through to per-ID external resolution only for IDs
// the table does not cover. Results are stable across repeated calls
// absent underlying data changes.
func (s *Service) MapAll(ctx context.Context, rbFigIDs []string) map[string]Result {
	ids := dedupe(rbFigIDs)
	results := make(map[string]Result, len(ids))
	if len(ids) == 0 {
		return results
	}

	mapped, err := s.store.GetMinifigMappings(ctx, ids)
	if err != nil {
		// Degrade to external resolution for the whole batch.
		s.logger.Warn("Bulk minifig mapping fetch failed",
			zap.Int("requested", len(ids)),
			zap.Error(err),
		)
		mapped = map[string]string{}
	}

	for _, rbID := range ids {
		if blID, ok := mapped[rbID]; ok {
			results[rbID] = Result{BLFigID: blID, Status: StatusSynced}
			continue
		}
		results[rbID] = s.resolveOne(ctx, rbID)
	}

	return results
}

// resolveOne performs the on-demand external lookup for a single ID and
// persists a hit best-effort.
func (s *Service) resolveOne(ctx context.Context, rbFigID string) Result {
	blID, err := s.resolver.LookupMinifig(ctx, rbFigID)
	if err != nil {
		s.logger.Warn("Minifig lookup failed",
			zap.String("rb_fig_id", rbFigID),
			zap.Error(err),
		)
		return Result{Status: StatusUnmapped}
	}
	if blID == "" {
		return Result{Status: StatusUnmapped}
	}

	if err := s.store.SaveMinifigMapping(ctx, rbFigID, blID); err != nil {
		s.logger.Warn("Minifig mapping write-back failed",
			zap.String("rb_fig_id", rbFigID),
			zap.String("bl_fig_id", blID),
			zap.Error(err),
		)
	}

	return Result{BLFigID: blID, Status: StatusResolved}
}

// dedupe returns the unique IDs in sorted order so external probing is
// deterministic for a given input set.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
