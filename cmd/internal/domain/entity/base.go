package entity

import (
	"brainagro/cmd/internal/utils/uid"

	"gorm.io/gorm"
)

// Model is embedded by every registry entity. Ids are assigned by the
// application, never by the database, so they are not reused after deletion.
type Model struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false"`
}

func (m *Model) BeforeCreate(_ *gorm.DB) error {
	if m.ID == 0 {
		m.ID = uid.Generate()
	}
	return nil
}
