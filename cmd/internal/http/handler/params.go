package handler

import (
	"net/http"
	"strconv"

	"brainagro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// parseID reads a positive id out of the named path parameter.
func parseID(c echo.Context, name string) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "int")
	}

	if id <= 0 {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}

// bindJSON decodes the request body into req.
func bindJSON(c echo.Context, req any) apierror.ErrorResponse {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return apierror.MalformedJSONError
	}
	return nil
}

func writeError(c echo.Context, apierr apierror.ErrorResponse) error {
	return c.JSON(apierr.Code(), apierr)
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
