package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SeasonService interface {
	GetAllSeasons(ctx context.Context) ([]*contract.SeasonResponse, apierror.ErrorResponse)
	GetSeasonByID(ctx context.Context, id int64) (*contract.SeasonResponse, apierror.ErrorResponse)
	CreateSeason(ctx context.Context, req *contract.SeasonRequest) (*contract.SeasonResponse, apierror.ErrorResponse)
	UpdateSeason(ctx context.Context, id int64, req *contract.UpdateSeasonRequest) (*contract.SeasonResponse, apierror.ErrorResponse)
	DeleteSeason(ctx context.Context, id int64) apierror.ErrorResponse
}

type DefaultSeasonRoute struct {
	SeasonService SeasonService
}

func NewSeasonRoute(seasonService SeasonService) *DefaultSeasonRoute {
	return &DefaultSeasonRoute{SeasonService: seasonService}
}

func (r *DefaultSeasonRoute) GetSeasons(c echo.Context) error {
	seasons, apierr := r.SeasonService.GetAllSeasons(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"seasons": seasons})
}

func (r *DefaultSeasonRoute) GetSeason(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	season, apierr := r.SeasonService.GetSeasonByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, season)
}

func (r *DefaultSeasonRoute) CreateSeason(c echo.Context) error {
	var req contract.SeasonRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	season, apierr := r.SeasonService.CreateSeason(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, season)
}

func (r *DefaultSeasonRoute) UpdateSeason(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdateSeasonRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	season, apierr := r.SeasonService.UpdateSeason(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, season)
}

func (r *DefaultSeasonRoute) DeleteSeason(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.SeasonService.DeleteSeason(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}
