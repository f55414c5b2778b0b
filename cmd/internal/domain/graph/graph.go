// Package graph holds the relations between registry entities: which
// kinds reference which, what must be unique, and the lookups used to
// enforce both before a write reaches the store.
//
// The lookups are advisory. Unique indexes and foreign keys in the store
// remain authoritative, and a lost race surfaces as a store error that
// the conflict classifier translates.
package graph

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Graph struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Graph {
	return &Graph{db: db}
}

// Exists reports whether a row of kind with the given id is persisted.
func (g *Graph) Exists(ctx context.Context, kind Kind, id int64) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("graph: unknown kind %q", kind)
	}

	if id <= 0 {
		return false, nil
	}

	var count int64
	err := g.db.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByNaturalKey returns the id of the row of kind whose natural key column
// holds value. found is false when no row matches.
func (g *Graph) FindByNaturalKey(ctx context.Context, kind Kind, column string, value any) (id int64, found bool, err error) {
	if !kind.Valid() {
		return 0, false, fmt.Errorf("graph: unknown kind %q", kind)
	}

	if _, ok := kind.NaturalKeyByColumn(column); !ok {
		return 0, false, fmt.Errorf("graph: %q is not a natural key of %s", column, kind)
	}

	var ids []int64
	err = g.db.WithContext(ctx).
		Table(kind.Table()).
		Where(column+" = ?", value).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, err
	}

	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// InUse reports whether any dependent row still references the given row.
// The first dependent kind found is returned alongside.
func (g *Graph) InUse(ctx context.Context, kind Kind, id int64) (bool, Kind, error) {
	if !kind.Valid() {
		return false, "", fmt.Errorf("graph: unknown kind %q", kind)
	}

	for _, dep := range kind.Dependents() {
		var count int64
		err := g.db.WithContext(ctx).
			Table(dep.Kind.Table()).
			Where(dep.Column+" = ?", id).
			Count(&count).Error
		if err != nil {
			return false, "", err
		}

		if count > 0 {
			return true, dep.Kind, nil
		}
	}
	return false, "", nil
}

// MissingReference is a foreign key pointing to a row that does not exist.
type MissingReference struct {
	Reference
	ID int64
}

// MissingReferences checks every supplied reference of kind. Only fields
// present in refs (keyed by Reference.Field) are checked.
func (g *Graph) MissingReferences(ctx context.Context, kind Kind, refs map[string]int64) ([]MissingReference, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("graph: unknown kind %q", kind)
	}

	var missing []MissingReference
	for _, ref := range kind.References() {
		id, ok := refs[ref.Field]
		if !ok {
			continue
		}

		exists, err := g.Exists(ctx, ref.Target, id)
		if err != nil {
			return nil, err
		}

		if !exists {
			missing = append(missing, MissingReference{Reference: ref, ID: id})
		}
	}
	return missing, nil
}
