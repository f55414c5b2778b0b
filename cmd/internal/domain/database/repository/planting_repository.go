package repository

import (
	"context"

	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPlantingRepository struct {
	crudRepository[entity.Planting]
}

func NewPlantingRepository(db *gorm.DB) *DefaultPlantingRepository {
	return &DefaultPlantingRepository{crudRepository[entity.Planting]{
		db:       db,
		preloads: []string{"Farm", "Season", "Crop"},
	}}
}

func (p *DefaultPlantingRepository) FindByFarmID(ctx context.Context, farmID int64) ([]*entity.Planting, error) {
	var plantings []*entity.Planting
	err := p.query(ctx).
		Where("farm_id = ?", farmID).
		Order("id").
		Find(&plantings).Error
	if err != nil {
		return nil, err
	}
	return plantings, nil
}
