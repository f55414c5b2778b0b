package repository

import (
	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSeasonRepository struct {
	crudRepository[entity.Season]
}

func NewSeasonRepository(db *gorm.DB) *DefaultSeasonRepository {
	return &DefaultSeasonRepository{crudRepository[entity.Season]{db: db}}
}
