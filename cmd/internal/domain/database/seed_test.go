package database_test

import (
	"testing"

	"brainagro/cmd/internal/domain/database"
	"brainagro/cmd/internal/domain/database/databasetest"
	"brainagro/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedStatesOnce(t *testing.T) {
	db := databasetest.Open(t)

	inserted, err := database.SeedStates(db)
	require.NoError(t, err)
	assert.Equal(t, 27, inserted)

	inserted, err = database.SeedStates(db)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	var sp entity.State
	require.NoError(t, db.Where("abbreviation = ?", "SP").First(&sp).Error)
	assert.Equal(t, "São Paulo", sp.Name)
	assert.Positive(t, sp.ID)
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	db := databasetest.Open(t)
	require.NoError(t, db.Create(&entity.State{Name: "Minas Gerais", Abbreviation: "MG"}).Error)

	inserted, err := database.SeedStates(db)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestInitRejectsUnknownDriver(t *testing.T) {
	_, err := database.Init(database.Config{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported driver")
}
