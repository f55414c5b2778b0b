package entity

type Crop struct {
	Model
	Name string `gorm:"size:100;not null;uniqueIndex:uq_crops_name"`
}

func (Crop) TableName() string {
	return "crops"
}
