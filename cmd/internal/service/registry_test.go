package service

import (
	"context"
	"strconv"

	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/database/databasetest"
	"brainagro/cmd/internal/domain/database/repository"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/domain/policy"
	"brainagro/cmd/internal/metrics"
	"brainagro/cmd/internal/utils/apierror"
	"brainagro/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// registrySuite wires every registry service over a fresh SQLite database.
type registrySuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB

	states    *DefaultStateService
	cities    *DefaultCityService
	producers *DefaultProducerService
	crops     *DefaultCropService
	seasons   *DefaultSeasonService
	farms     *DefaultFarmService
	plantings *DefaultPlantingService
}

func (s *registrySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = databasetest.Open(s.T())

	validate := validator.New()
	validators.Register(validate)

	logger := log.New("test")
	logger.SetLevel(log.OFF)

	m := metrics.New(prometheus.NewRegistry())
	registry := NewRegistry(graph.New(s.db), conflict.NewClassifier(logger, m), validate, m)

	s.states = NewStateService(repository.NewStateRepository(s.db), registry)
	s.cities = NewCityService(repository.NewCityRepository(s.db), registry)
	s.producers = NewProducerService(repository.NewProducerRepository(s.db), registry)
	s.crops = NewCropService(repository.NewCropRepository(s.db), registry)
	s.seasons = NewSeasonService(repository.NewSeasonRepository(s.db), registry)
	s.farms = NewFarmService(repository.NewFarmRepository(s.db), policy.NewFarmPolicy(), registry)
	s.plantings = NewPlantingService(repository.NewPlantingRepository(s.db), registry)
}

// requireOK fails the test right away when the service returned an error.
func (s *registrySuite) requireOK(apierr apierror.ErrorResponse) {
	s.T().Helper()
	if apierr != nil {
		s.FailNowf("unexpected api error", "status %d: %+v", apierr.Code(), apierr)
	}
}

func (s *registrySuite) requireMessage(apierr apierror.ErrorResponse, status int, msg string) {
	s.T().Helper()
	s.Require().NotNil(apierr)
	s.Require().Equal(status, apierr.Code())

	simple, ok := apierr.(*apierror.APIError)
	s.Require().True(ok, "expected *apierror.APIError, got %T", apierr)
	s.Equal(msg, simple.Message)
}

func (s *registrySuite) requireFieldError(apierr apierror.ErrorResponse, status int, field string) []string {
	s.T().Helper()
	s.Require().NotNil(apierr)
	s.Require().Equal(status, apierr.Code())

	structured, ok := apierr.(*apierror.StructuredError)
	s.Require().True(ok, "expected *apierror.StructuredError, got %T", apierr)
	s.Require().Contains(structured.Errors, field)
	return structured.Errors[field]
}

func (s *registrySuite) countRows(table string) int64 {
	var n int64
	s.Require().NoError(s.db.Table(table).Count(&n).Error)
	return n
}

func ptr[T any](v T) *T {
	return &v
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
