package models

import "time"

// PartMapping overrides the default-same part rule for RB part IDs whose
// BrickLink number differs.
type PartMapping struct {
	RBPartID string `gorm:"column:rb_part_id;primaryKey"`
	BLPartID string `gorm:"column:bl_part_id"`
}

// TableName maps the struct to the hosted catalog table.
func (PartMapping) TableName() string { return "part_mappings" }

// ColorMapping links a Rebrickable color ID to its BrickLink color ID.
// Absence of a row means the mapping is unknown, not identity.
type ColorMapping struct {
	RBColorID int `gorm:"column:rb_color_id;primaryKey"`
	BLColorID int `gorm:"column:bl_color_id"`
}

func (ColorMapping) TableName() string { return "color_mappings" }

// MinifigMapping links a Rebrickable minifig ID to its BrickLink ID.
type MinifigMapping struct {
	RBFigID      string    `gorm:"column:rb_fig_id;primaryKey"`
	BLFigID      string    `gorm:"column:bl_fig_id"`
	LastSyncedAt time.Time `gorm:"column:last_synced_at"`
}

func (MinifigMapping) TableName() string { return "minifig_mappings" }

// Tables lists the mapping tables the reconciliation core depends on,
// for startup schema verification.
var Tables = []string{"part_mappings", "color_mappings", "minifig_mappings"}
