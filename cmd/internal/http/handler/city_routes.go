package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CityService interface {
	GetAllCities(ctx context.Context) ([]*contract.CityResponse, apierror.ErrorResponse)
	GetCityByID(ctx context.Context, id int64) (*contract.CityResponse, apierror.ErrorResponse)
	CreateCity(ctx context.Context, req *contract.CityRequest) (*contract.CityResponse, apierror.ErrorResponse)
	UpdateCity(ctx context.Context, id int64, req *contract.UpdateCityRequest) (*contract.CityResponse, apierror.ErrorResponse)
	DeleteCity(ctx context.Context, id int64) apierror.ErrorResponse
}

type DefaultCityRoute struct {
	CityService CityService
}

func NewCityRoute(cityService CityService) *DefaultCityRoute {
	return &DefaultCityRoute{CityService: cityService}
}

func (r *DefaultCityRoute) GetCities(c echo.Context) error {
	cities, apierr := r.CityService.GetAllCities(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"cities": cities})
}

func (r *DefaultCityRoute) GetCity(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	city, apierr := r.CityService.GetCityByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, city)
}

func (r *DefaultCityRoute) CreateCity(c echo.Context) error {
	var req contract.CityRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	city, apierr := r.CityService.CreateCity(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, city)
}

func (r *DefaultCityRoute) UpdateCity(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdateCityRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	city, apierr := r.CityService.UpdateCity(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, city)
}

func (r *DefaultCityRoute) DeleteCity(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.CityService.DeleteCity(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}
