package entity

type State struct {
	Model
	Name         string `gorm:"size:255;not null;uniqueIndex:uq_states_name"`
	Abbreviation string `gorm:"size:2;not null;uniqueIndex:uq_states_abbreviation"`
}

func (State) TableName() string {
	return "states"
}
