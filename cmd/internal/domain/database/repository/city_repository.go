package repository

import (
	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCityRepository struct {
	crudRepository[entity.City]
}

func NewCityRepository(db *gorm.DB) *DefaultCityRepository {
	return &DefaultCityRepository{crudRepository[entity.City]{
		db:       db,
		preloads: []string{"State"},
	}}
}
