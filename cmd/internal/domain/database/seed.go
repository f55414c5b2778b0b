package database

import (
	"brainagro/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Brazilian federative units.
var brazilianStates = []entity.State{
	{Name: "Acre", Abbreviation: "AC"},
	{Name: "Alagoas", Abbreviation: "AL"},
	{Name: "Amapá", Abbreviation: "AP"},
	{Name: "Amazonas", Abbreviation: "AM"},
	{Name: "Bahia", Abbreviation: "BA"},
	{Name: "Ceará", Abbreviation: "CE"},
	{Name: "Distrito Federal", Abbreviation: "DF"},
	{Name: "Espírito Santo", Abbreviation: "ES"},
	{Name: "Goiás", Abbreviation: "GO"},
	{Name: "Maranhão", Abbreviation: "MA"},
	{Name: "Mato Grosso", Abbreviation: "MT"},
	{Name: "Mato Grosso do Sul", Abbreviation: "MS"},
	{Name: "Minas Gerais", Abbreviation: "MG"},
	{Name: "Pará", Abbreviation: "PA"},
	{Name: "Paraíba", Abbreviation: "PB"},
	{Name: "Paraná", Abbreviation: "PR"},
	{Name: "Pernambuco", Abbreviation: "PE"},
	{Name: "Piauí", Abbreviation: "PI"},
	{Name: "Rio de Janeiro", Abbreviation: "RJ"},
	{Name: "Rio Grande do Norte", Abbreviation: "RN"},
	{Name: "Rio Grande do Sul", Abbreviation: "RS"},
	{Name: "Rondônia", Abbreviation: "RO"},
	{Name: "Roraima", Abbreviation: "RR"},
	{Name: "Santa Catarina", Abbreviation: "SC"},
	{Name: "São Paulo", Abbreviation: "SP"},
	{Name: "Sergipe", Abbreviation: "SE"},
	{Name: "Tocantins", Abbreviation: "TO"},
}

// SeedStates loads the federative units into an empty states table.
// It returns how many rows were inserted, which is zero when the table already had data.
func SeedStates(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&entity.State{}).Count(&count).Error; err != nil {
		return 0, err
	}

	if count > 0 {
		return 0, nil
	}

	states := make([]entity.State, len(brazilianStates))
	copy(states, brazilianStates)

	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&states).Error
	if err != nil {
		return 0, err
	}
	return len(states), nil
}
