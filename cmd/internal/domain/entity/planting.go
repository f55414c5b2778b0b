package entity

// Planting records that a crop was planted on a farm during a season.
type Planting struct {
	Model
	FarmID   int64 `gorm:"not null;index"` // References: farms(id)
	SeasonID int64 `gorm:"not null;index"` // References: seasons(id)
	CropID   int64 `gorm:"not null;index"` // References: crops(id)

	// Relations, only loaded on demand
	Farm   *Farm   `gorm:"foreignKey:FarmID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;"`
	Season *Season `gorm:"foreignKey:SeasonID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;"`
	Crop   *Crop   `gorm:"foreignKey:CropID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;"`
}

func (Planting) TableName() string {
	return "plantings"
}
