package service

import (
	"context"
	"errors"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/infrastructure/minhareceita"
	"brainagro/cmd/internal/utils"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

var RegistrationNotFoundError = apierror.NewSimple(http.StatusNotFound, "CNPJ not found in the federal registry")

type RegistrationRepository interface {
	FindByCNPJ(ctx context.Context, cnpj string) (*entity.Registration, error)
	Save(ctx context.Context, reg *entity.Registration) error
}

// RegistryClient asks the federal company registry about a CNPJ.
type RegistryClient interface {
	GetRegistration(ctx context.Context, cnpj string) (*entity.Registration, error)
}

// DefaultRegistrationService answers registry lookups for CNPJ producers,
// going through a database cache that also remembers unknown CNPJs.
type DefaultRegistrationService struct {
	Client           RegistryClient
	RegistrationRepo RegistrationRepository

	// now is swapped in tests
	now func() int64
}

func NewRegistrationService(client RegistryClient, repo RegistrationRepository) *DefaultRegistrationService {
	return &DefaultRegistrationService{
		Client:           client,
		RegistrationRepo: repo,
		now:              utils.NowUTC,
	}
}

// GetRegistration expects a bare, valid 14 digit CNPJ.
func (s *DefaultRegistrationService) GetRegistration(ctx context.Context, cnpj string) (*contract.RegistrationResponse, apierror.ErrorResponse) {
	now := s.now()

	cached, err := s.RegistrationRepo.FindByCNPJ(ctx, cnpj)
	if err != nil {
		log.Errorf("failed to read cached registration of CNPJ %s: %v", cnpj, err)
		return nil, apierror.InternalServerError
	}

	if cached != nil && now < cached.ExpiresAt() {
		if !cached.Found {
			return nil, RegistrationNotFoundError
		}
		return toRegistrationResp(cached, true), nil
	}

	reg, err := s.Client.GetRegistration(ctx, cnpj)
	if errors.Is(err, minhareceita.ErrNotFound) {
		reg = &entity.Registration{Found: false}
	} else if err != nil {
		log.Errorf("failed to query the registry for CNPJ %s: %v", cnpj, err)
		return nil, apierror.InternalServerError
	}

	reg.CNPJ = cnpj
	reg.CheckedAt = now

	// A failed cache write only costs a registry call next time
	if err = s.RegistrationRepo.Save(ctx, reg); err != nil {
		log.Warnf("failed to cache registration of CNPJ %s: %v", cnpj, err)
	}

	if !reg.Found {
		return nil, RegistrationNotFoundError
	}
	return toRegistrationResp(reg, false), nil
}

func toRegistrationResp(r *entity.Registration, cached bool) *contract.RegistrationResponse {
	return &contract.RegistrationResponse{
		CNPJ:         r.CNPJ,
		LegalName:    r.LegalName,
		TradeName:    r.TradeName,
		Status:       string(r.Status),
		StatusDate:   r.StatusDate,
		MainActivity: r.MainActivity,
		City:         r.City,
		State:        r.State,
		Active:       r.Active(),
		Cached:       cached,
		CheckedAt:    utils.FormatEpoch(r.CheckedAt),
	}
}
