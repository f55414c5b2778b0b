package entity

// Season is a harvest label such as "2022/2023".
type Season struct {
	Model
	Year string `gorm:"size:20;not null;uniqueIndex:uq_seasons_year"`
}

func (Season) TableName() string {
	return "seasons"
}
