package repository

import (
	"context"

	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultFarmRepository struct {
	crudRepository[entity.Farm]
}

func NewFarmRepository(db *gorm.DB) *DefaultFarmRepository {
	return &DefaultFarmRepository{crudRepository[entity.Farm]{
		db:       db,
		preloads: []string{"Producer", "City", "City.State"},
	}}
}

func (f *DefaultFarmRepository) FindByProducerID(ctx context.Context, producerID int64) ([]*entity.Farm, error) {
	var farms []*entity.Farm
	err := f.query(ctx).
		Where("producer_id = ?", producerID).
		Order("id").
		Find(&farms).Error
	if err != nil {
		return nil, err
	}
	return farms, nil
}
