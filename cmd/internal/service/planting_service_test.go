package service

import (
	"net/http"
	"testing"

	"brainagro/cmd/internal/contract"

	"github.com/stretchr/testify/suite"
)

type PlantingServiceSuite struct {
	registrySuite
	farm   *contract.FarmResponse
	crop   *contract.CropResponse
	season *contract.SeasonResponse
}

func TestPlantingServiceSuite(t *testing.T) {
	suite.Run(t, new(PlantingServiceSuite))
}

func (s *PlantingServiceSuite) SetupTest() {
	s.registrySuite.SetupTest()

	state, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Tocantins", Abbreviation: "TO"})
	s.requireOK(apierr)
	city, apierr := s.cities.CreateCity(s.ctx, &contract.CityRequest{Name: "Palmas", StateID: state.ID})
	s.requireOK(apierr)
	producer, apierr := s.producers.CreateProducer(s.ctx, &contract.ProducerRequest{TaxID: "51234204010", Name: "Ana"})
	s.requireOK(apierr)

	s.farm, apierr = s.farms.CreateFarm(s.ctx, &contract.FarmRequest{
		Name:           "Sol Nascente",
		TotalArea:      ptr(50.0),
		CultivableArea: ptr(30.0),
		VegetationArea: ptr(20.0),
		ProducerID:     producer.ID,
		CityID:         city.ID,
	})
	s.requireOK(apierr)

	s.crop, apierr = s.crops.CreateCrop(s.ctx, &contract.CropRequest{Name: "Soja"})
	s.requireOK(apierr)
	s.season, apierr = s.seasons.CreateSeason(s.ctx, &contract.SeasonRequest{Year: "2023/2024"})
	s.requireOK(apierr)
}

func (s *PlantingServiceSuite) TestCreateAndList() {
	planting, apierr := s.plantings.CreatePlanting(s.ctx, &contract.PlantingRequest{
		FarmID:   s.farm.ID,
		SeasonID: s.season.ID,
		CropID:   s.crop.ID,
	})
	s.requireOK(apierr)

	s.Require().NotNil(planting.Crop)
	s.Equal("Soja", planting.Crop.Name)
	s.Require().NotNil(planting.Season)
	s.Equal("2023/2024", planting.Season.Year)

	byFarm, apierr := s.plantings.GetPlantingsByFarm(s.ctx, s.farm.ID)
	s.requireOK(apierr)
	s.Len(byFarm, 1)

	_, apierr = s.plantings.GetPlantingsByFarm(s.ctx, s.farm.ID+1)
	s.Equal(http.StatusNotFound, apierr.Code())
}

func (s *PlantingServiceSuite) TestMissingReferences() {
	_, apierr := s.plantings.CreatePlanting(s.ctx, &contract.PlantingRequest{
		FarmID:   s.farm.ID,
		SeasonID: s.season.ID + 1,
		CropID:   s.crop.ID + 1,
	})
	s.requireFieldError(apierr, http.StatusUnprocessableEntity, "season_id")
	s.requireFieldError(apierr, http.StatusUnprocessableEntity, "crop_id")
	s.Zero(s.countRows("plantings"))

	_, apierr = s.plantings.CreatePlanting(s.ctx, &contract.PlantingRequest{FarmID: s.farm.ID})
	s.requireFieldError(apierr, http.StatusBadRequest, "season_id")
}

func (s *PlantingServiceSuite) TestUpdateAndRestrictedDeletes() {
	planting, apierr := s.plantings.CreatePlanting(s.ctx, &contract.PlantingRequest{
		FarmID:   s.farm.ID,
		SeasonID: s.season.ID,
		CropID:   s.crop.ID,
	})
	s.requireOK(apierr)

	corn, apierr := s.crops.CreateCrop(s.ctx, &contract.CropRequest{Name: "Milho"})
	s.requireOK(apierr)

	updated, apierr := s.plantings.UpdatePlanting(s.ctx, planting.ID, &contract.UpdatePlantingRequest{CropID: ptr(corn.ID)})
	s.requireOK(apierr)
	s.Equal(corn.ID, updated.CropID)
	s.Equal("Milho", updated.Crop.Name)

	// Soja is free now, Milho is not
	s.requireOK(s.crops.DeleteCrop(s.ctx, s.crop.ID))
	s.requireMessage(s.crops.DeleteCrop(s.ctx, corn.ID), http.StatusConflict, "Crop is still referenced by at least one planting")
	s.requireMessage(s.seasons.DeleteSeason(s.ctx, s.season.ID), http.StatusConflict, "Season is still referenced by at least one planting")
	s.requireMessage(s.farms.DeleteFarm(s.ctx, s.farm.ID), http.StatusConflict, "Farm is still referenced by at least one planting")

	s.requireOK(s.plantings.DeletePlanting(s.ctx, planting.ID))
	s.requireOK(s.farms.DeleteFarm(s.ctx, s.farm.ID))
}

func (s *PlantingServiceSuite) TestCropAndSeasonKeys() {
	_, apierr := s.crops.CreateCrop(s.ctx, &contract.CropRequest{Name: "Soja"})
	s.requireMessage(apierr, http.StatusBadRequest, "A crop with this name already exists")

	_, apierr = s.seasons.CreateSeason(s.ctx, &contract.SeasonRequest{Year: "2023/2024"})
	s.requireMessage(apierr, http.StatusBadRequest, "A season with this year already exists")

	season, apierr := s.seasons.UpdateSeason(s.ctx, s.season.ID, &contract.UpdateSeasonRequest{Year: ptr("2024/2025")})
	s.requireOK(apierr)
	s.Equal("2024/2025", season.Year)

	seasons, apierr := s.seasons.GetAllSeasons(s.ctx)
	s.requireOK(apierr)
	s.Len(seasons, 1)
}
