package repository

import (
	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultStateRepository struct {
	crudRepository[entity.State]
}

func NewStateRepository(db *gorm.DB) *DefaultStateRepository {
	return &DefaultStateRepository{crudRepository[entity.State]{db: db}}
}
