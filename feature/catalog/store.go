package catalog

import (
	"context"
	"fmt"
	"time"

	"brick-manager/feature/catalog/models"
	"brick-manager/feature/resolve"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store provides keyed access to the cross-catalog mapping tables.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a mapping-table store. A nil db yields a store that
// serves empty mappings, letting the pipeline run degraded.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// BuildContext loads all mapping tables into a resolution context.
func (s *Store) BuildContext(ctx context.Context) (*resolve.Context, error) {
	rctx := resolve.NewContext()
	if s.db == nil {
		return rctx, nil
	}

	var parts []models.PartMapping
	if err := s.db.WithContext(ctx).Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to load part mappings: %w", err)
	}
	for _, m := range parts {
		rctx.PartMappings[m.RBPartID] = m.BLPartID
		rctx.BLToRBPart[m.BLPartID] = m.RBPartID
	}

	var colors []models.ColorMapping
	if err := s.db.WithContext(ctx).Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to load color mappings: %w", err)
	}
	for _, m := range colors {
		rctx.RBToBLColor[m.RBColorID] = m.BLColorID
		rctx.BLToRBColor[m.BLColorID] = m.RBColorID
	}

	return rctx, nil
}

// GetPartMapping returns the stored BrickLink part ID for an RB part ID,
// or empty when no override exists.
func (s *Store) GetPartMapping(ctx context.Context, rbPartID string) (string, error) {
	if s.db == nil {
		return "", nil
	}
	var mapping models.PartMapping
	err := s.db.WithContext(ctx).Where("rb_part_id = ?", rbPartID).First(&mapping).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch part mapping %s: %w", rbPartID, err)
	}
	return mapping.BLPartID, nil
}

// UpdatePartMapping persists a corrected BrickLink part ID with
// update-if-exists semantics: a missing row is a no-op, not an error.
func (s *Store) UpdatePartMapping(ctx context.Context, rbPartID, blPartID string) error {
	if s.db == nil {
		return fmt.Errorf("no database connection")
	}
	result := s.db.WithContext(ctx).
		Model(&models.PartMapping{}).
		Where("rb_part_id = ?", rbPartID).
		Update("bl_part_id", blPartID)
	if result.Error != nil {
		return fmt.Errorf("failed to update part mapping %s: %w", rbPartID, result.Error)
	}
	if result.RowsAffected == 0 {
		s.logger.Debug("Part mapping correction targeted a missing row",
			zap.String("rb_part_id", rbPartID),
			zap.String("bl_part_id", blPartID),
		)
	}
	return nil
}

// GetMinifigMappings fetches the stored mappings for a set of RB minifig
// IDs in a single multi-key query.
func (s *Store) GetMinifigMappings(ctx context.Context, rbFigIDs []string) (map[string]string, error) {
	mapped := make(map[string]string, len(rbFigIDs))
	if s.db == nil || len(rbFigIDs) == 0 {
		return mapped, nil
	}

	var mappings []models.MinifigMapping
	if err := s.db.WithContext(ctx).Where("rb_fig_id IN ?", rbFigIDs).Find(&mappings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch minifig mappings: %w", err)
	}
	for _, m := range mappings {
		if m.BLFigID != "" {
			mapped[m.RBFigID] = m.BLFigID
		}
	}
	return mapped, nil
}

// SaveMinifigMapping upserts a freshly resolved minifig mapping.
func (s *Store) SaveMinifigMapping(ctx context.Context, rbFigID, blFigID string) error {
	if s.db == nil {
		return fmt.Errorf("no database connection")
	}
	mapping := models.MinifigMapping{
		RBFigID:      rbFigID,
		BLFigID:      blFigID,
		LastSyncedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rb_fig_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bl_fig_id", "last_synced_at"}),
		}).
		Create(&mapping).Error
	if err != nil {
		return fmt.Errorf("failed to save minifig mapping %s: %w", rbFigID, err)
	}
	return nil
}
