package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository holds the operations shared by every registry entity.
// Associations are never written through it: entities reference each other
// by id and related rows are only read, through preloads.
type crudRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

func (r *crudRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	var rows []*T
	err := r.query(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns nil, nil when no row has the given id.
func (r *crudRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var row T
	err := r.query(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *crudRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *crudRepository[T]) Save(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Delete(row).Error
}

func (r *crudRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}
