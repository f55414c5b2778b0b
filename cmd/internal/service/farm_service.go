package service

import (
	"context"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/domain/policy"
	"brainagro/cmd/internal/utils/apierror"
)

type FarmRepository interface {
	CrudRepository[entity.Farm]
	FindByProducerID(ctx context.Context, producerID int64) ([]*entity.Farm, error)
}

type DefaultFarmService struct {
	FarmRepo FarmRepository
	Policy   *policy.FarmPolicy
	Registry *Registry
}

func NewFarmService(farmRepo FarmRepository, farmPolicy *policy.FarmPolicy, registry *Registry) *DefaultFarmService {
	return &DefaultFarmService{
		FarmRepo: farmRepo,
		Policy:   farmPolicy,
		Registry: registry,
	}
}

func (s *DefaultFarmService) GetAllFarms(ctx context.Context) ([]*contract.FarmResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.FarmRepo, graph.KindFarm, toFarmResp)
}

func (s *DefaultFarmService) GetFarmByID(ctx context.Context, id int64) (*contract.FarmResponse, apierror.ErrorResponse) {
	farm, apierr := findOrFail(ctx, s.Registry, s.FarmRepo, operation(conflict.ActionRead, graph.KindFarm, id))
	if apierr != nil {
		return nil, apierr
	}
	return toFarmResp(farm), nil
}

func (s *DefaultFarmService) GetFarmsByProducer(ctx context.Context, producerID int64) ([]*contract.FarmResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionRead, graph.KindProducer, producerID)
	exists, err := s.Registry.Graph.Exists(ctx, graph.KindProducer, producerID)
	if err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	if !exists {
		return nil, notFound(graph.KindProducer, producerID)
	}

	farms, err := s.FarmRepo.FindByProducerID(ctx, producerID)
	if err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}
	return mapAll(farms, toFarmResp), nil
}

func (s *DefaultFarmService) CreateFarm(ctx context.Context, req *contract.FarmRequest) (*contract.FarmResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindFarm, 0)
	areas := policy.FarmAreas{
		Total:      req.TotalArea,
		Cultivable: req.CultivableArea,
		Vegetation: req.VegetationArea,
	}
	if apierr := withAreaProblems(s.Registry.validate(req), s.Policy.CheckAreas(areas)); apierr != nil {
		return nil, apierr
	}

	refs := map[string]int64{
		"producer_id": req.ProducerID,
		"city_id":     req.CityID,
	}
	if apierr := s.Registry.checkReferences(ctx, o, refs); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Registry.checkUnique(ctx, o, "name", req.Name); apierr != nil {
		return nil, apierr
	}

	farm := &entity.Farm{
		Name:           req.Name,
		TotalArea:      policy.RoundArea(*req.TotalArea),
		CultivableArea: policy.RoundArea(*req.CultivableArea),
		VegetationArea: policy.RoundArea(*req.VegetationArea),
		ProducerID:     req.ProducerID,
		CityID:         req.CityID,
	}

	if err := s.FarmRepo.Create(ctx, farm); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return s.reload(ctx, o, farm.ID)
}

// UpdateFarm applies a partial update. The area rule is checked against
// the merge of the stored areas and the supplied ones, so changing a
// single area can still be refused.
func (s *DefaultFarmService) UpdateFarm(ctx context.Context, id int64, req *contract.UpdateFarmRequest) (*contract.FarmResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindFarm, id)
	verr := s.Registry.validate(req)

	farm, apierr := findOrFail(ctx, s.Registry, s.FarmRepo, o)
	if apierr != nil {
		// Field problems come first, as for every other kind
		if verr != nil {
			return nil, verr
		}
		return nil, apierr
	}

	current := policy.FarmAreas{
		Total:      &farm.TotalArea,
		Cultivable: &farm.CultivableArea,
		Vegetation: &farm.VegetationArea,
	}
	merged := current.Merge(policy.FarmAreas{
		Total:      req.TotalArea,
		Cultivable: req.CultivableArea,
		Vegetation: req.VegetationArea,
	})
	if apierr = withAreaProblems(verr, s.Policy.CheckAreas(merged)); apierr != nil {
		return nil, apierr
	}

	refs := make(map[string]int64)
	if req.ProducerID != nil {
		refs["producer_id"] = *req.ProducerID
	}
	if req.CityID != nil {
		refs["city_id"] = *req.CityID
	}
	if apierr = s.Registry.checkReferences(ctx, o, refs); apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		if apierr = s.Registry.checkUnique(ctx, o, "name", *req.Name); apierr != nil {
			return nil, apierr
		}
	}

	applyFarmUpdate(farm, req)
	if err := s.FarmRepo.Save(ctx, farm); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return s.reload(ctx, o, farm.ID)
}

func (s *DefaultFarmService) DeleteFarm(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.FarmRepo, operation(conflict.ActionDelete, graph.KindFarm, id))
}

func (s *DefaultFarmService) reload(ctx context.Context, o conflict.Operation, id int64) (*contract.FarmResponse, apierror.ErrorResponse) {
	o.ID = id
	farm, apierr := findOrFail(ctx, s.Registry, s.FarmRepo, o)
	if apierr != nil {
		return nil, apierr
	}
	return toFarmResp(farm), nil
}

func applyFarmUpdate(farm *entity.Farm, req *contract.UpdateFarmRequest) {
	if req.Name != nil {
		farm.Name = *req.Name
	}
	if req.TotalArea != nil {
		farm.TotalArea = policy.RoundArea(*req.TotalArea)
	}
	if req.CultivableArea != nil {
		farm.CultivableArea = policy.RoundArea(*req.CultivableArea)
	}
	if req.VegetationArea != nil {
		farm.VegetationArea = policy.RoundArea(*req.VegetationArea)
	}
	if req.ProducerID != nil {
		farm.ProducerID = *req.ProducerID
		farm.Producer = nil
	}
	if req.CityID != nil {
		farm.CityID = *req.CityID
		farm.City = nil
	}
}

// withAreaProblems reports the area rule next to the field problems, so a
// request learns about both at once.
func withAreaProblems(verr apierror.ErrorResponse, aerr *apierror.StructuredError) apierror.ErrorResponse {
	if verr == nil {
		if aerr == nil {
			return nil
		}
		return aerr
	}

	if fields, ok := verr.(*apierror.StructuredError); ok {
		fields.Merge(aerr)
	}
	return verr
}
