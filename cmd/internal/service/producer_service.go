package service

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/utils"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ProducerRepository interface {
	CrudRepository[entity.Producer]
	FindByTaxID(ctx context.Context, taxID string) (*entity.Producer, error)
}

// RegistrationLookup reads the federal registry record of a CNPJ.
type RegistrationLookup interface {
	GetRegistration(ctx context.Context, cnpj string) (*contract.RegistrationResponse, apierror.ErrorResponse)
}

type DefaultProducerService struct {
	ProducerRepo ProducerRepository
	Registry     *Registry

	// Registrations is optional, without it lookups carry no registry data.
	Registrations RegistrationLookup
}

func NewProducerService(producerRepo ProducerRepository, registry *Registry) *DefaultProducerService {
	return &DefaultProducerService{
		ProducerRepo: producerRepo,
		Registry:     registry,
	}
}

func (s *DefaultProducerService) GetAllProducers(ctx context.Context) ([]*contract.ProducerResponse, apierror.ErrorResponse) {
	return listAll(ctx, s.Registry, s.ProducerRepo, graph.KindProducer, toProducerResp)
}

func (s *DefaultProducerService) GetProducerByID(ctx context.Context, id int64) (*contract.ProducerResponse, apierror.ErrorResponse) {
	producer, apierr := findOrFail(ctx, s.Registry, s.ProducerRepo, operation(conflict.ActionRead, graph.KindProducer, id))
	if apierr != nil {
		return nil, apierr
	}
	return toProducerResp(producer), nil
}

// GetProducerByTaxID accepts the tax id formatted or not.
func (s *DefaultProducerService) GetProducerByTaxID(ctx context.Context, taxID string) (*contract.ProducerResponse, apierror.ErrorResponse) {
	if !utils.IsTaxIDValid(taxID) {
		return nil, apierror.InvalidTaxIDError
	}

	producer, err := s.ProducerRepo.FindByTaxID(ctx, utils.OnlyDigits(taxID))
	if err != nil {
		return nil, s.Registry.storeError(ctx, operation(conflict.ActionRead, graph.KindProducer, 0), err)
	}

	if producer == nil {
		return nil, apierror.NewSimple(http.StatusNotFound, "Producer with this tax id not found")
	}

	resp := toProducerResp(producer)
	resp.Registration = s.registrationOf(ctx, producer.TaxID)
	return resp, nil
}

// registrationOf returns the registry record of a CNPJ producer. The lookup
// never fails because of the registry: an unknown or unreachable record is left out.
func (s *DefaultProducerService) registrationOf(ctx context.Context, taxID string) *contract.RegistrationResponse {
	if s.Registrations == nil || !utils.IsCNPJValid(taxID) {
		return nil
	}

	reg, apierr := s.Registrations.GetRegistration(ctx, taxID)
	if apierr != nil {
		if apierr.Code() != http.StatusNotFound {
			log.Warnf("registry lookup of producer CNPJ %s failed with status %d", taxID, apierr.Code())
		}
		return nil
	}
	return reg
}

func (s *DefaultProducerService) CreateProducer(ctx context.Context, req *contract.ProducerRequest) (*contract.ProducerResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionCreate, graph.KindProducer, 0)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	taxID := utils.OnlyDigits(req.TaxID)
	if apierr := s.Registry.checkUnique(ctx, o, "tax_id", taxID); apierr != nil {
		return nil, apierr
	}

	producer := &entity.Producer{
		TaxID:    taxID,
		Name:     req.Name,
		IsActive: true,
	}

	if err := s.ProducerRepo.Create(ctx, producer); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toProducerResp(producer), nil
}

func (s *DefaultProducerService) UpdateProducer(ctx context.Context, id int64, req *contract.UpdateProducerRequest) (*contract.ProducerResponse, apierror.ErrorResponse) {
	o := operation(conflict.ActionUpdate, graph.KindProducer, id)
	if apierr := s.Registry.validate(req); apierr != nil {
		return nil, apierr
	}

	producer, apierr := findOrFail(ctx, s.Registry, s.ProducerRepo, o)
	if apierr != nil {
		return nil, apierr
	}

	if req.TaxID != nil {
		taxID := utils.OnlyDigits(*req.TaxID)
		if apierr = s.Registry.checkUnique(ctx, o, "tax_id", taxID); apierr != nil {
			return nil, apierr
		}
		producer.TaxID = taxID
	}
	if req.Name != nil {
		producer.Name = *req.Name
	}
	if req.IsActive != nil {
		producer.IsActive = *req.IsActive
	}

	if err := s.ProducerRepo.Save(ctx, producer); err != nil {
		return nil, s.Registry.storeError(ctx, o, err)
	}

	s.Registry.recordMutation(o)
	return toProducerResp(producer), nil
}

func (s *DefaultProducerService) DeleteProducer(ctx context.Context, id int64) apierror.ErrorResponse {
	return deleteRow(ctx, s.Registry, s.ProducerRepo, operation(conflict.ActionDelete, graph.KindProducer, id))
}
