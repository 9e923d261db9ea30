package kv

import "time"

// Record is one persisted entity document. All entity types share the
// entities table; the (entity_type, id) pair is the record address and
// position preserves per-type insertion order for listing.
type Record struct {
	EntityType string    `gorm:"column:entity_type;primaryKey"`
	ID         string    `gorm:"column:id;primaryKey"`
	Document   []byte    `gorm:"column:document"`
	Position   int64     `gorm:"column:position"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "entities"
}
