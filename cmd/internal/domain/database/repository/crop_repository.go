package repository

import (
	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCropRepository struct {
	crudRepository[entity.Crop]
}

func NewCropRepository(db *gorm.DB) *DefaultCropRepository {
	return &DefaultCropRepository{crudRepository[entity.Crop]{db: db}}
}
