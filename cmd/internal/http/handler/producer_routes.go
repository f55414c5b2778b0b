package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProducerService interface {
	GetAllProducers(ctx context.Context) ([]*contract.ProducerResponse, apierror.ErrorResponse)
	GetProducerByID(ctx context.Context, id int64) (*contract.ProducerResponse, apierror.ErrorResponse)
	CreateProducer(ctx context.Context, req *contract.ProducerRequest) (*contract.ProducerResponse, apierror.ErrorResponse)
	UpdateProducer(ctx context.Context, id int64, req *contract.UpdateProducerRequest) (*contract.ProducerResponse, apierror.ErrorResponse)
	DeleteProducer(ctx context.Context, id int64) apierror.ErrorResponse
	GetProducerByTaxID(ctx context.Context, taxID string) (*contract.ProducerResponse, apierror.ErrorResponse)
}

type DefaultProducerRoute struct {
	ProducerService ProducerService
}

func NewProducerRoute(producerService ProducerService) *DefaultProducerRoute {
	return &DefaultProducerRoute{ProducerService: producerService}
}

func (r *DefaultProducerRoute) GetProducers(c echo.Context) error {
	producers, apierr := r.ProducerService.GetAllProducers(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"producers": producers})
}

func (r *DefaultProducerRoute) GetProducer(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	producer, apierr := r.ProducerService.GetProducerByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, producer)
}

func (r *DefaultProducerRoute) CreateProducer(c echo.Context) error {
	var req contract.ProducerRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	producer, apierr := r.ProducerService.CreateProducer(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, producer)
}

func (r *DefaultProducerRoute) UpdateProducer(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdateProducerRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	producer, apierr := r.ProducerService.UpdateProducer(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, producer)
}

func (r *DefaultProducerRoute) DeleteProducer(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.ProducerService.DeleteProducer(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}

// LookupProducer finds a producer by the tax_id query parameter.
func (r *DefaultProducerRoute) LookupProducer(c echo.Context) error {
	producer, apierr := r.ProducerService.GetProducerByTaxID(c.Request().Context(), c.QueryParam("tax_id"))
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, producer)
}
