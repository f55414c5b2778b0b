package service

import (
	"context"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/utils/apierror"
)

type PlantingRepository interface {
	CrudRepository[entity.Planting]
	FindByFarmID(ctx context.Context, farmID int64) ([]*entity.Planting, error)
}

type DefaultPlantingService struct {
	PlantingRepo PlantingRepository
	Registry     *Registry
}

func NewPlantingService(plantingRepo PlantingRepository, registry *Registry) *DefaultPlantingService {
	return &DefaultPlantingService{
		PlantingRepo: plantingRepo,
		Registry:     registry,
	}
}

func (s *DefaultPlantingService) GetAllPlantings(ctx context.Context) ([]*contract.PlantingResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.PlantingRepo, graph.KindPlanting, toPlantingResp)
}

func (s *DefaultPlantingService) GetPlantingByID(ctx context.Context, id int64) (*contract.PlantingResponse, apierror.ErrorResponse) {
	planting, apierr := findOrFail(ctx, s.Registry, s.PlantingRepo, operation(conflict.ActionRead, graph.KindPlanting, id))
	if apierr != nil {
		return nil, apierr
	}
	return toPlantingResp(planting), nil
}

// GetPlantingsByFarm lists what was planted on a farm across every season.
func (s *DefaultPlantingService) GetPlantingsByFarm(ctx context.Context, farmID int64) ([]*contract.PlantingResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionRead, graph.KindFarm, farmID)
	exists, err := s.Registry.Graph.Exists(ctx, graph.KindFarm, farmID)
	if err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	if !exists {
		return nil, notFound(graph.KindFarm, farmID)
	}

	plantings, err := s.PlantingRepo.FindByFarmID(ctx, farmID)
	if err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}
	return mapAll(plantings, toPlantingResp), nil
}

func (s *DefaultPlantingService) CreatePlanting(ctx context.Context, req *contract.PlantingRequest) (*contract.PlantingResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindPlanting, 0)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	refs := map[string]int64{
		"farm_id":   req.FarmID,
		"season_id": req.SeasonID,
		"crop_id":   req.CropID,
	}
	if apierr := s.Registry.checkReferences(ctx, o, refs); apierr != nil {
		return nil, apierr
	}

	planting := &entity.Planting{
		FarmID:   req.FarmID,
		SeasonID: req.SeasonID,
		CropID:   req.CropID,
	}

	if err := s.PlantingRepo.Create(ctx, planting); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return s.reload(ctx, o, planting.ID)
}

func (s *DefaultPlantingService) UpdatePlanting(ctx context.Context, id int64, req *contract.UpdatePlantingRequest) (*contract.PlantingResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindPlanting, id)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	planting, apierr := findOrFail(ctx, s.Registry, s.PlantingRepo, o)
	if apierr != nil {
		return nil, apierr
	}

	refs := make(map[string]int64)
	if req.FarmID != nil {
		refs["farm_id"] = *req.FarmID
	}
	if req.SeasonID != nil {
		refs["season_id"] = *req.SeasonID
	}
	if req.CropID != nil {
		refs["crop_id"] = *req.CropID
	}
	if apierr = s.Registry.checkReferences(ctx, o, refs); apierr != nil {
		return nil, apierr
	}

	if req.FarmID != nil {
		planting.FarmID = *req.FarmID
		planting.Farm = nil
	}
	if req.SeasonID != nil {
		planting.SeasonID = *req.SeasonID
		planting.Season = nil
	}
	if req.CropID != nil {
		planting.CropID = *req.CropID
		planting.Crop = nil
	}

	if err := s.PlantingRepo.Save(ctx, planting); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return s.reload(ctx, o, planting.ID)
}

func (s *DefaultPlantingService) DeletePlanting(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.PlantingRepo, operation(conflict.ActionDelete, graph.KindPlanting, id))
}

func (s *DefaultPlantingService) reload(ctx context.Context, o conflict.Operation, id int64) (*contract.PlantingResponse, apierror.ErrorResponse) {
	o.ID = id
	planting, apierr := findOrFail(ctx, s.Registry, s.PlantingRepo, o)
	if apierr != nil {
		return nil, apierr
	}
	return toPlantingResp(planting), nil
}
