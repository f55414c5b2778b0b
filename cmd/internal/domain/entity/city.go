package entity

type City struct {
	Model
	Name    string `gorm:"size:100;not null;uniqueIndex:uq_cities_name"`
	StateID int64  `gorm:"not null;index"` // References: states(id)

	// Relations, only loaded on demand
	State *State `gorm:"foreignKey:StateID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;"`
}

func (City) TableName() string {
	return "cities"
}
