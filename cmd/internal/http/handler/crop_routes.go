package handler

import (
	"context"
	"net/http"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CropService interface {
	GetAllCrops(ctx context.Context) ([]*contract.CropResponse, apierror.ErrorResponse)
	GetCropByID(ctx context.Context, id int64) (*contract.CropResponse, apierror.ErrorResponse)
	CreateCrop(ctx context.Context, req *contract.CropRequest) (*contract.CropResponse, apierror.ErrorResponse)
	UpdateCrop(ctx context.Context, id int64, req *contract.UpdateCropRequest) (*contract.CropResponse, apierror.ErrorResponse)
	DeleteCrop(ctx context.Context, id int64) apierror.ErrorResponse
}

type DefaultCropRoute struct {
	CropService CropService
}

func NewCropRoute(cropService CropService) *DefaultCropRoute {
	return &DefaultCropRoute{CropService: cropService}
}

func (r *DefaultCropRoute) GetCrops(c echo.Context) error {
	crops, apierr := r.CropService.GetAllCrops(c.Request().Context())
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"crops": crops})
}

func (r *DefaultCropRoute) GetCrop(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	crop, apierr := r.CropService.GetCropByID(c.Request().Context(), id)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, crop)
}

func (r *DefaultCropRoute) CreateCrop(c echo.Context) error {
	var req contract.CropRequest
	if apierr := bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	crop, apierr := r.CropService.CreateCrop(c.Request().Context(), &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusCreated, crop)
}

func (r *DefaultCropRoute) UpdateCrop(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	var req contract.UpdateCropRequest
	if apierr = bindJSON(c, &req); apierr != nil {
		return writeError(c, apierr)
	}

	crop, apierr := r.CropService.UpdateCrop(c.Request().Context(), id, &req)
	if apierr != nil {
		return writeError(c, apierr)
	}
	return c.JSON(http.StatusOK, crop)
}

func (r *DefaultCropRoute) DeleteCrop(c echo.Context) error {
	id, apierr := parseID(c, "id")
	if apierr != nil {
		return writeError(c, apierr)
	}

	if apierr = r.CropService.DeleteCrop(c.Request().Context(), id); apierr != nil {
		return writeError(c, apierr)
	}
	return noContent(c)
}
