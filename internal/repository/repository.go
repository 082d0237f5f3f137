package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the single-table operations shared by every entity.
// FindByID returns gorm.ErrRecordNotFound when no row matches.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type scope = func(*gorm.DB) *gorm.DB

// crudRepository implements Repository over a GORM handle. listScopes and
// getScopes add preloads to FindAll and FindByID respectively; cascade, when
// set, runs before Delete in the same transaction.
type crudRepository[T any] struct {
	db         *gorm.DB
	listScopes []scope
	getScopes  []scope
	cascade    cascadeFunc
}

func newCRUDRepository[T any](db *gorm.DB) *crudRepository[T] {
	return &crudRepository[T]{db: db}
}

// FindAll returns every row ordered by creation time
func (r *crudRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	list := make([]T, 0)
	err := r.db.WithContext(ctx).
		Scopes(r.listScopes...).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID returns the row with the given ID
func (r *crudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).
		Scopes(r.getScopes...).
		Where("id = ?", id).
		Take(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Exists checks if a row with the given ID exists
func (r *crudRepository[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts entity without touching its relationships
func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

// Update saves every column of entity
func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

// Delete hard-deletes the row together with its dependents and reports how
// many rows of T were removed
func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.cascade != nil {
			if err := r.cascade(tx, id); err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(new(T))
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// preloadRef preloads a relationship projected to the given columns
func preloadRef(name string, columns ...string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(name, func(tx *gorm.DB) *gorm.DB {
			return tx.Select(columns)
		})
	}
}
