package service

import (
	"context"
	"strings"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/utils/apierror"
)

type StateRepository interface {
	CrudRepository[entity.State]
}

type DefaultStateService struct {
	StateRepo StateRepository
	Registry  *Registry
}

func NewStateService(stateRepo StateRepository, registry *Registry) *DefaultStateService {
	return &DefaultStateService{
		StateRepo: stateRepo,
		Registry:  registry,
	}
}

func (s *DefaultStateService) GetAllStates(ctx context.Context) ([]*contract.StateResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.StateRepo, graph.KindState, toStateResp)
}

func (s *DefaultStateService) GetStateByID(ctx context.Context, id int64) (*contract.StateResponse, apierror.ErrorResponse) {
	state, apierr := findOrFail(ctx, s.Registry, s.StateRepo, operation(conflict.ActionRead, graph.KindState, id))
	if apierr != nil {
		return nil, apierr
	}
	return toStateResp(state), nil
}

func (s *DefaultStateService) CreateState(ctx context.Context, req *contract.StateRequest) (*contract.StateResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindState, 0)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	state := &entity.State{
		Name:         req.Name,
		Abbreviation: strings.ToUpper(req.Abbreviation),
	}

	if apierr := s.checkKeys(ctx, o, &state.Name, &state.Abbreviation); apierr != nil {
		return nil, apierr
	}

	if err := s.StateRepo.Create(ctx, state); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toStateResp(state), nil
}

func (s *DefaultStateService) UpdateState(ctx context.Context, id int64, req *contract.UpdateStateRequest) (*contract.StateResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindState, id)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	state, apierr := findOrFail(ctx, s.Registry, s.StateRepo, o)
	if apierr != nil {
		return nil, apierr
	}

	if req.Abbreviation != nil {
		upper := strings.ToUpper(*req.Abbreviation)
		req.Abbreviation = &upper
	}

	if apierr = s.checkKeys(ctx, o, req.Name, req.Abbreviation); apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		state.Name = *req.Name
	}
	if req.Abbreviation != nil {
		state.Abbreviation = *req.Abbreviation
	}

	if err := s.StateRepo.Save(ctx, state); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toStateResp(state), nil
}

func (s *DefaultStateService) DeleteState(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.StateRepo, operation(conflict.ActionDelete, graph.KindState, id))
}

// checkKeys verifies both natural keys of a state, nil values are skipped.
func (s *DefaultStateService) checkKeys(ctx context.Context, o conflict.Operation, name, abbreviation *string) apierror.ErrorResponse {
	if name != nil {
		if apierr := s.Registry.checkUnique(ctx, o, "name", *name); apierr != nil {
			return apierr
		}
	}

	if abbreviation != nil {
		if apierr := s.Registry.checkUnique(ctx, o, "abbreviation", *abbreviation); apierr != nil {
			return apierr
		}
	}
	return nil
}
