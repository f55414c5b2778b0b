package service

import (
	"context"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/utils/apierror"
)

type CropRepository interface {
	CrudRepository[entity.Crop]
}

type DefaultCropService struct {
	CropRepo CropRepository
	Registry *Registry
}

func NewCropService(cropRepo CropRepository, registry *Registry) *DefaultCropService {
	return &DefaultCropService{
		CropRepo: cropRepo,
		Registry: registry,
	}
}

func (s *DefaultCropService) GetAllCrops(ctx context.Context) ([]*contract.CropResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.CropRepo, graph.KindCrop, toCropResp)
}

func (s *DefaultCropService) GetCropByID(ctx context.Context, id int64) (*contract.CropResponse, apierror.ErrorResponse) {
	crop, apierr := findOrFail(ctx, s.Registry, s.CropRepo, operation(conflict.ActionRead, graph.KindCrop, id))
	if apierr != nil {
		return nil, apierr
	}
	return toCropResp(crop), nil
}

func (s *DefaultCropService) CreateCrop(ctx context.Context, req *contract.CropRequest) (*contract.CropResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindCrop, 0)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Registry.checkUnique(ctx, o, "name", req.Name); apierr != nil {
		return nil, apierr
	}

	crop := &entity.Crop{Name: req.Name}
	if err := s.CropRepo.Create(ctx, crop); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toCropResp(crop), nil
}

func (s *DefaultCropService) UpdateCrop(ctx context.Context, id int64, req *contract.UpdateCropRequest) (*contract.CropResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindCrop, id)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	crop, apierr := findOrFail(ctx, s.Registry, s.CropRepo, o)
	if apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		if apierr = s.Registry.checkUnique(ctx, o, "name", *req.Name); apierr != nil {
			return nil, apierr
		}
		crop.Name = *req.Name
	}

	if err := s.CropRepo.Save(ctx, crop); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toCropResp(crop), nil
}

func (s *DefaultCropService) DeleteCrop(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.CropRepo, operation(conflict.ActionDelete, graph.KindCrop, id))
}
