package service

import (
	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/entity"
)

// Related entities are only mapped when they were preloaded.

func toStateResp(s *entity.State) *contract.StateResponse {
	if s == nil {
		return nil
	}
	return &contract.StateResponse{
		ID:           s.ID,
		Name:         s.Name,
		Abbreviation: s.Abbreviation,
	}
}

func toCityResp(c *entity.City) *contract.CityResponse {
	if c == nil {
		return nil
	}
	return &contract.CityResponse{
		ID:      c.ID,
		Name:    c.Name,
		StateID: c.StateID,
		State:   toStateResp(c.State),
	}
}

func toProducerResp(p *entity.Producer) *contract.ProducerResponse {
	if p == nil {
		return nil
	}
	return &contract.ProducerResponse{
		ID:       p.ID,
		TaxID:    p.TaxID,
		Name:     p.Name,
		IsActive: p.IsActive,
	}
}

func toCropResp(c *entity.Crop) *contract.CropResponse {
	if c == nil {
		return nil
	}
	return &contract.CropResponse{ID: c.ID, Name: c.Name}
}

func toSeasonResp(s *entity.Season) *contract.SeasonResponse {
	if s == nil {
		return nil
	}
	return &contract.SeasonResponse{ID: s.ID, Year: s.Year}
}

func toFarmResp(f *entity.Farm) *contract.FarmResponse {
	if f == nil {
		return nil
	}
	return &contract.FarmResponse{
		ID:             f.ID,
		Name:           f.Name,
		TotalArea:      f.TotalArea,
		CultivableArea: f.CultivableArea,
		VegetationArea: f.VegetationArea,
		ProducerID:     f.ProducerID,
		CityID:         f.CityID,
		Producer:       toProducerResp(f.Producer),
		City:           toCityResp(f.City),
	}
}

func toPlantingResp(p *entity.Planting) *contract.PlantingResponse {
	if p == nil {
		return nil
	}
	return &contract.PlantingResponse{
		ID:       p.ID,
		FarmID:   p.FarmID,
		SeasonID: p.SeasonID,
		CropID:   p.CropID,
		Farm:     toFarmResp(p.Farm),
		Season:   toSeasonResp(p.Season),
		Crop:     toCropResp(p.Crop),
	}
}

func mapAll[T any, R any](rows []*T, fn func(*T) *R) []*R {
	resp := make([]*R, len(rows))
	for i, row := range rows {
		resp[i] = fn(row)
	}
	return resp
}
