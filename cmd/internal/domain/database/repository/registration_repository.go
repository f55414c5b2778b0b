package repository

import (
	"context"
	"errors"

	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultRegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *DefaultRegistrationRepository {
	return &DefaultRegistrationRepository{db: db}
}

func (r *DefaultRegistrationRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.Registration, error) {
	var reg entity.Registration
	err := r.db.WithContext(ctx).
		Where("cnpj = ?", cnpj).
		First(&reg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Save inserts reg or replaces the row cached for the same CNPJ.
func (r *DefaultRegistrationRepository) Save(ctx context.Context, reg *entity.Registration) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(reg).Error
}

// DeleteExpired drops known CNPJs checked before foundBefore and unknown ones
// checked before missingBefore (both unix millis). It returns how many rows went away.
func (r *DefaultRegistrationRepository) DeleteExpired(ctx context.Context, foundBefore, missingBefore int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("(found = ? AND checked_at < ?) OR (found = ? AND checked_at < ?)", true, foundBefore, false, missingBefore).
		Delete(&entity.Registration{})
	return res.RowsAffected, res.Error
}
