package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
)

// Store is a typed facade over the shared entities table for one entity type.
// Records are JSON documents addressed by id; a per-type position column
// preserves insertion order for List. Patch is a shallow merge with
// unconditional field overwrites, so callers own cross-field consistency.
//
// Mutations on the same id are serialized through a keyed mutex. Reads do not
// take the lock.
type Store[T any] struct {
	db     *gorm.DB
	entity string
	locks  *lockTable
	seedMu sync.Mutex
}

// NewStore binds a typed store to the given entity type name.
func NewStore[T any](db *gorm.DB, entity string) *Store[T] {
	return &Store[T]{
		db:     db,
		entity: entity,
		locks:  newLockTable(),
	}
}

// EntityType returns the entity type name this store serves.
func (s *Store[T]) EntityType() string {
	return s.entity
}

// Create persists a new record under id. It fails with a Conflict error when
// a record with that id already exists.
func (s *Store[T]) Create(ctx context.Context, id string, state T) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "entity id is required")
	}
	doc, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("encode %s document", s.entity))
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.insert(tx, id, doc)
	})
	return s.storeError(txErr, "create")
}

func (s *Store[T]) insert(tx *gorm.DB, id string, doc []byte) error {
	var count int64
	if err := tx.Model(&Record{}).
		Where("entity_type = ? AND id = ?", s.entity, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("%s %q already exists", s.entity, id))
	}

	var maxPos int64
	if err := tx.Model(&Record{}).
		Where("entity_type = ?", s.entity).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	rec := Record{
		EntityType: s.entity,
		ID:         id,
		Document:   doc,
		Position:   maxPos + 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return tx.Create(&rec).Error
}

// Get returns the record stored under id, or a NotFound error.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	rec, err := s.find(ctx, id)
	if err != nil {
		return zero, err
	}
	var state T
	if err := json.Unmarshal(rec.Document, &state); err != nil {
		return zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("decode %s document", s.entity))
	}
	return state, nil
}

// Exists reports whether a record with the given id is stored.
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Record{}).
		Where("entity_type = ? AND id = ?", s.entity, id).
		Count(&count).Error
	if err != nil {
		return false, s.storeError(err, "exists")
	}
	return count > 0, nil
}

// Patch shallow-merges fields into the stored document and returns the merged
// state. Field values overwrite unconditionally (last write wins); nested
// structures are replaced wholesale, not merged. NotFound when id is absent.
func (s *Store[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var zero T

	unlock := s.locks.Lock(id)
	defer unlock()

	rec, err := s.find(ctx, id)
	if err != nil {
		return zero, err
	}

	var doc map[string]any
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("decode %s document", s.entity))
	}
	for key, value := range fields {
		doc[key] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("encode %s document", s.entity))
	}

	err = s.db.WithContext(ctx).Model(&Record{}).
		Where("entity_type = ? AND id = ?", s.entity, id).
		Updates(map[string]any{
			"document":   merged,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return zero, s.storeError(err, "patch")
	}

	var state T
	if err := json.Unmarshal(merged, &state); err != nil {
		return zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("decode merged %s document", s.entity))
	}
	return state, nil
}

// List returns every record of the entity type in insertion order. Callers
// filter in memory; there is no pagination.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var recs []Record
	err := s.db.WithContext(ctx).
		Where("entity_type = ?", s.entity).
		Order("position ASC").
		Find(&recs).Error
	if err != nil {
		return nil, s.storeError(err, "list")
	}

	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var state T
		if err := json.Unmarshal(rec.Document, &state); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("decode %s document %q", s.entity, rec.ID))
		}
		out = append(out, state)
	}
	return out, nil
}

// EnsureSeed bulk-creates the seed records when the entity type's index is
// empty. It is idempotent and safe to call on every boot: once any record of
// the type exists, it is a no-op.
func (s *Store[T]) EnsureSeed(ctx context.Context, seed []T, idOf func(T) string) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Record{}).
			Where("entity_type = ?", s.entity).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, state := range seed {
			doc, err := json.Marshal(state)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("encode %s seed document", s.entity))
			}
			if err := s.insert(tx, idOf(state), doc); err != nil {
				return err
			}
		}
		return nil
	})
	return s.storeError(txErr, "seed")
}

func (s *Store[T]) find(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND id = ?", s.entity, id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %q not found", s.entity, id))
	}
	if err != nil {
		return nil, s.storeError(err, "find")
	}
	return &rec, nil
}

// storeError preserves typed domain errors and wraps raw driver failures as
// dependency errors.
func (s *Store[T]) storeError(err error, op string) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s %s", s.entity, op))
}
