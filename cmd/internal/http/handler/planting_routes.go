package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PlantingService interface {
	GetAllPlantings(ctx context.Context) ([]*contract.PlantingResponse, apierror.ErrorResponse)
	GetPlantingByID(ctx context.Context, id int64) (*contract.PlantingResponse, apierror.ErrorResponse)
	CreatePlanting(ctx context.Context, req *contract.PlantingRequest) (*contract.PlantingResponse, apierror.ErrorResponse)
	UpdatePlanting(ctx context.Context, id int64, req *contract.UpdatePlantingRequest) (*contract.PlantingResponse, apierror.ErrorResponse)
	DeletePlanting(ctx context.Context, id int64) apierror.ErrorResponse
	GetPlantingsByFarm(ctx context.Context, farmID int64) ([]*contract.PlantingResponse, apierror.ErrorResponse)
}

type DefaultPlantingRoute struct {
	PlantingService PlantingService
}

func NewPlantingRoute(plantingService PlantingService) *DefaultPlantingRoute {
	return &DefaultPlantingRoute{PlantingService: plantingService}
}

func (r *DefaultPlantingRoute) GetPlantings(c echo.Context) error {
	plantings, apierr := r.PlantingService.GetAllPlantings(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"plantings": plantings})
}

func (r *DefaultPlantingRoute) GetPlanting(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	planting, apierr := r.PlantingService.GetPlantingByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, planting)
}

func (r *DefaultPlantingRoute) CreatePlanting(c echo.Context) error {
	var req contract.PlantingRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	planting, apierr := r.PlantingService.CreatePlanting(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, planting)
}

func (r *DefaultPlantingRoute) UpdatePlanting(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdatePlantingRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	planting, apierr := r.PlantingService.UpdatePlanting(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, planting)
}

func (r *DefaultPlantingRoute) DeletePlanting(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.PlantingService.DeletePlanting(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}

func (r *DefaultPlantingRoute) GetFarmPlantings(c echo.Context) error {
	farmID, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	plantings, apierr := r.PlantingService.GetPlantingsByFarm(c.Request().Context(), farmID)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"plantings": plantings})
}
