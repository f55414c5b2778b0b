package service

import (
	"context"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/utils/apierror"
)

type CityRepository interface {
	CrudRepository[entity.City]
}

type DefaultCityService struct {
	CityRepo CityRepository
	Registry *Registry
}

func NewCityService(cityRepo CityRepository, registry *Registry) *DefaultCityService {
	return &DefaultCityService{
		CityRepo: cityRepo,
		Registry: registry,
	}
}

func (s *DefaultCityService) GetAllCities(ctx context.Context) ([]*contract.CityResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.CityRepo, graph.KindCity, toCityResp)
}

func (s *DefaultCityService) GetCityByID(ctx context.Context, id int64) (*contract.CityResponse, apierror.ErrorResponse) {
	city, apierr := findOrFail(ctx, s.Registry, s.CityRepo, operation(conflict.ActionRead, graph.KindCity, id))
	if apierr != nil {
		return nil, apierr
	}
	return toCityResp(city), nil
}

func (s *DefaultCityService) CreateCity(ctx context.Context, req *contract.CityRequest) (*contract.CityResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindCity, 0)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Registry.checkReferences(ctx, o, map[string]int64{"state_id": req.StateID}); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Registry.checkUnique(ctx, o, "name", req.Name); apierr != nil {
		return nil, apierr
	}

	city := &entity.City{
		Name:    req.Name,
		StateID: req.StateID,
	}

	if err := s.CityRepo.Create(ctx, city); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return s.reload(ctx, o, city.ID)
}

func (s *DefaultCityService) UpdateCity(ctx context.Context, id int64, req *contract.UpdateCityRequest) (*contract.CityResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindCity, id)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	city, apierr := findOrFail(ctx, s.Registry, s.CityRepo, o)
	if apierr != nil {
		return nil, apierr
	}

	if req.StateID != nil {
		if apierr = s.Registry.checkReferences(ctx, o, map[string]int64{"state_id": *req.StateID}); apierr != nil {
			return nil, apierr
		}
		city.StateID = *req.StateID
		city.State = nil
	}

	if req.Name != nil {
		if apierr = s.Registry.checkUnique(ctx, o, "name", *req.Name); apierr != nil {
			return nil, apierr
		}
		city.Name = *req.Name
	}

	if err := s.CityRepo.Save(ctx, city); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return s.reload(ctx, o, city.ID)
}

func (s *DefaultCityService) DeleteCity(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.CityRepo, operation(conflict.ActionDelete, graph.KindCity, id))
}

// reload fetches the city again so the response carries its current state.
func (s *DefaultCityService) reload(ctx context.Context, o conflict.Operation, id int64) (*contract.CityResponse, apierror.ErrorResponse) {
	o.ID = id
	city, apierr := findOrFail(ctx, s.Registry, s.CityRepo, o)
	if apierr != nil {
		return nil, apierr
	}
	return toCityResp(city), nil
}
