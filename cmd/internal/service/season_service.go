package service

import (
	"context"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/utils/apierror"
)

type SeasonRepository interface {
	CrudRepository[entity.Season]
}

type DefaultSeasonService struct {
	SeasonRepo SeasonRepository
	Registry   *Registry
}

func NewSeasonService(seasonRepo SeasonRepository, registry *Registry) *DefaultSeasonService {
	return &DefaultSeasonService{
		SeasonRepo: seasonRepo,
		Registry:   registry,
	}
}

func (s *DefaultSeasonService) GetAllSeasons(ctx context.Context) ([]*contract.SeasonResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.SeasonRepo, graph.KindSeason, toSeasonResp)
}

func (s *DefaultSeasonService) GetSeasonByID(ctx context.Context, id int64) (*contract.SeasonResponse, apierror.ErrorResponse) {
	season, apierr := findOrFail(ctx, s.Registry, s.SeasonRepo, operation(conflict.ActionRead, graph.KindSeason, id))
	if apierr != nil {
		return nil, apierr
	}
	return toSeasonResp(season), nil
}

func (s *DefaultSeasonService) CreateSeason(ctx context.Context, req *contract.SeasonRequest) (*contract.SeasonResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindSeason, 0)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Registry.checkUnique(ctx, o, "year", req.Year); apierr != nil {
		return nil, apierr
	}

	season := &entity.Season{Year: req.Year}
	if err := s.SeasonRepo.Create(ctx, season); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toSeasonResp(season), nil
}

func (s *DefaultSeasonService) UpdateSeason(ctx context.Context, id int64, req *contract.UpdateSeasonRequest) (*contract.SeasonResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindSeason, id)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	season, apierr := findOrFail(ctx, s.Registry, s.SeasonRepo, o)
	if apierr != nil {
		return nil, apierr
	}

	if req.Year != nil {
		if apierr = s.Registry.checkUnique(ctx, o, "year", *req.Year); apierr != nil {
			return nil, apierr
		}
		season.Year = *req.Year
	}

	if err := s.SeasonRepo.Save(ctx, season); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toSeasonResp(season), nil
}

func (s *DefaultSeasonService) DeleteSeason(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.SeasonRepo, operation(conflict.ActionDelete, graph.KindSeason, id))
}
