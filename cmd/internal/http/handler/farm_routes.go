package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type FarmService interface {
	GetAllFarms(ctx context.Context) ([]*contract.FarmResponse, apierror.ErrorResponse)
	GetFarmByID(ctx context.Context, id int64) (*contract.FarmResponse, apierror.ErrorResponse)
	CreateFarm(ctx context.Context, req *contract.FarmRequest) (*contract.FarmResponse, apierror.ErrorResponse)
	UpdateFarm(ctx context.Context, id int64, req *contract.UpdateFarmRequest) (*contract.FarmResponse, apierror.ErrorResponse)
	DeleteFarm(ctx context.Context, id int64) apierror.ErrorResponse
	GetFarmsByProducer(ctx context.Context, producerID int64) ([]*contract.FarmResponse, apierror.ErrorResponse)
}

type DefaultFarmRoute struct {
	FarmService FarmService
}

func NewFarmRoute(farmService FarmService) *DefaultFarmRoute {
	return &DefaultFarmRoute{FarmService: farmService}
}

func (r *DefaultFarmRoute) GetFarms(c echo.Context) error {
	farms, apierr := r.FarmService.GetAllFarms(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"farms": farms})
}

func (r *DefaultFarmRoute) GetFarm(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	farm, apierr := r.FarmService.GetFarmByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, farm)
}

func (r *DefaultFarmRoute) CreateFarm(c echo.Context) error {
	var req contract.FarmRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	farm, apierr := r.FarmService.CreateFarm(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, farm)
}

func (r *DefaultFarmRoute) UpdateFarm(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdateFarmRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	farm, apierr := r.FarmService.UpdateFarm(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, farm)
}

func (r *DefaultFarmRoute) DeleteFarm(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.FarmService.DeleteFarm(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}

func (r *DefaultFarmRoute) GetProducerFarms(c echo.Context) error {
	producerID, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	farms, apierr := r.FarmService.GetFarmsByProducer(c.Request().Context(), producerID)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"farms": farms})
}
