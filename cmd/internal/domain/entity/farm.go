package entity

// Farm areas are expressed in hectares.
type Farm struct {
	Model
	Name           string  `gorm:"size:100;not null;uniqueIndex:uq_farms_name"`
	TotalArea      float64 `gorm:"type:decimal(15,2);not null"`
	CultivableArea float64 `gorm:"type:decimal(15,2);not null"`
	VegetationArea float64 `gorm:"type:decimal(15,2);not null"`
	ProducerID     int64   `gorm:"not null;index"` // References: producers(id)
	CityID         int64   `gorm:"not null;index"` // References: cities(id)

	// Relations, only loaded on demand
	Producer *Producer `gorm:"foreignKey:ProducerID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;"`
	City     *City     `gorm:"foreignKey:CityID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;"`
}

func (Farm) TableName() string {
	return "farms"
}
