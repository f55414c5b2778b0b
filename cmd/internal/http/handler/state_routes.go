package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type StateService interface {
	GetAllStates(ctx context.Context) ([]*contract.StateResponse, apierror.ErrorResponse)
	GetStateByID(ctx context.Context, id int64) (*contract.StateResponse, apierror.ErrorResponse)
	CreateState(ctx context.Context, req *contract.StateRequest) (*contract.StateResponse, apierror.ErrorResponse)
	UpdateState(ctx context.Context, id int64, req *contract.UpdateStateRequest) (*contract.StateResponse, apierror.ErrorResponse)
	DeleteState(ctx context.Context, id int64) apierror.ErrorResponse
}

type DefaultStateRoute struct {
	StateService StateService
}

func NewStateRoute(stateService StateService) *DefaultStateRoute {
	return &DefaultStateRoute{StateService: stateService}
}

func (r *DefaultStateRoute) GetStates(c echo.Context) error {
	states, apierr := r.StateService.GetAllStates(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"states": states})
}

func (r *DefaultStateRoute) GetState(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	state, apierr := r.StateService.GetStateByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, state)
}

func (r *DefaultStateRoute) CreateState(c echo.Context) error {
	var req contract.StateRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	state, apierr := r.StateService.CreateState(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, state)
}

func (r *DefaultStateRoute) UpdateState(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdateStateRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	state, apierr := r.StateService.UpdateState(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, state)
}

func (r *DefaultStateRoute) DeleteState(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.StateService.DeleteState(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}
