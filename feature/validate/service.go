package validate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"brick-manager/core/cache"
	"brick-manager/core/catalogapi"

	"go.uber.org/zap"
)

const (
	// existsTTL memoizes confirmed IDs; the catalog rarely loses parts.
	existsTTL = 10 * time.Minute
	// notFoundTTL is short so a freshly added part becomes visible quickly.
	notFoundTTL = time.Minute
	// writeBackTimeout bounds the detached persistence task.
	writeBackTimeout = 5 * time.Second
)

// ErrEmptyPartID rejects requests without a stored ID before any external
// call is attempted, so malformed input never burns rate-limit budget.
var ErrEmptyPartID = errors.New("bricklink part id is required")

// MappingStore persists corrected part mappings.
type MappingStore interface {
	UpdatePartMapping(ctx context.Context, rbPartID, blPartID string) error
}

// ContextInvalidator drops cached resolution contexts after a heal so the
// correction becomes visible to subsequent bulk resolutions.
type ContextInvalidator interface {
	Invalidate()
}

// Request is one validation call.
type Request struct {
	// BLPartID is the stored BrickLink part ID to validate. Required.
	BLPartID string `json:"bl_part_id"`
	// RBPartID is the Rebrickable part ID the mapping was derived from.
	// Optional; enables candidate generation when the stored ID is stale.
	RBPartID string `json:"rb_part_id"`
}

// Response is the validation outcome. ValidID is nil when neither the
// stored ID nor any candidate exists in the live catalog.
type Response struct {
	ValidID   *string `json:"valid_id"`
	Corrected bool    `json:"corrected"`
}

// Service validates stored BrickLink part IDs and self-heals stale ones.
type Service struct {
	checker     catalogapi.Client
	store       MappingStore
	invalidator ContextInvalidator
	existsCache *cache.Cache[string, bool]
	logger      *zap.Logger

	// wg tracks detached write-backs so Drain can bound their lifetime.
	wg sync.WaitGroup
}

// NewService creates a validator. invalidator may be nil when no context
// cache is in play (CLI usage).
func NewService(checker catalogapi.Client, store MappingStore, invalidator ContextInvalidator, existsCache *cache.Cache[string, bool], logger *zap.Logger) *Service {
	return &Service{
		checker:     checker,
		store:       store,
		invalidator: invalidator,
		existsCache: existsCache,
		logger:      logger,
	}
}

// Validate runs the check/heal state machine for one stored ID.
// External failures degrade to a nil ValidID, never an error; the only
// returned error is ErrEmptyPartID for malformed input.
func (s *Service) Validate(ctx context.Context, req Request) (Response, error) {
	stored := strings.TrimSpace(req.BLPartID)
	if stored == "" {
		return Response{}, ErrEmptyPartID
	}
	source := strings.TrimSpace(req.RBPartID)

	exists, err := s.partExists(ctx, stored)
	if err != nil {
		s.logger.Warn("Existence check failed, returning unvalidated",
			zap.String("bl_part_id", stored),
			zap.Error(err),
		)
		return Response{}, nil
	}
	if exists {
		return Response{ValidID: &stored}, nil
	}

	if source == "" {
		return Response{}, nil
	}

	// Probe candidates strictly in order; first match wins.
	for _, candidate := range candidates(stored, source) {
		exists, err := s.partExists(ctx, candidate)
		if err != nil {
			// Transient errors are not_found-equivalent for probing.
			s.logger.Warn("Candidate probe failed",
				zap.String("candidate", candidate),
				zap.Error(err),
			)
			continue
		}
		if exists {
			s.healMapping(source, stored, candidate)
			return Response{ValidID: &candidate, Corrected: true}, nil
		}
	}

	return Response{}, nil
}

// Drain waits for in-flight write-backs. Called on shutdown and in tests.
func (s *Service) Drain() {
	s.wg.Wait()
}

// partExists checks the catalog with TTL memoization. Errors are never
// cached.
func (s *Service) partExists(ctx context.Context, partID string) (bool, error) {
	if cached, ok := s.existsCache.Get(partID); ok {
		return cached, nil
	}
	exists, err := s.checker.PartExists(ctx, partID)
	if err != nil {
		return false, err
	}
	ttl := existsTTL
	if !exists {
		ttl = notFoundTTL
	}
	s.existsCache.SetWithTTL(partID, exists, ttl)
	return exists, nil
}

// healMapping persists the correction on a detached task. The response has
// already been computed; a failed write is logged and retried naturally on
// a later validation.
func (s *Service) healMapping(rbPartID, stale, corrected string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), writeBackTimeout)
		defer cancel()

		if err := s.store.UpdatePartMapping(ctx, rbPartID, corrected); err != nil {
			s.logger.Warn("Self-heal write-back failed",
				zap.String("rb_part_id", rbPartID),
				zap.String("stale_bl_part_id", stale),
				zap.String("corrected_bl_part_id", corrected),
				zap.Error(err),
			)
			return
		}

		s.logger.Info("Healed stale part mapping",
			zap.String("rb_part_id", rbPartID),
			zap.String("stale_bl_part_id", stale),
			zap.String("corrected_bl_part_id", corrected),
		)

		if s.invalidator != nil {
			s.invalidator.Invalidate()
		}
	}()
}
