package repository

import (
	"context"
	"errors"

	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProducerRepository struct {
	crudRepository[entity.Producer]
}

func NewProducerRepository(db *gorm.DB) *DefaultProducerRepository {
	return &DefaultProducerRepository{crudRepository[entity.Producer]{db: db}}
}

// FindByTaxID expects the digits only form of the CPF/CNPJ.
func (p *DefaultProducerRepository) FindByTaxID(ctx context.Context, taxID string) (*entity.Producer, error) {
	var producer entity.Producer
	err := p.db.WithContext(ctx).Where("tax_id = ?", taxID).First(&producer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &producer, nil
}
