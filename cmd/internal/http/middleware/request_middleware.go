package middleware

import (
	"brainagro/cmd/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestID tags every request with a uuid, unless the client already sent one.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestContext copies the request id, method and path into the request
// context, so services can log them without depending on echo.
// It must run after RequestID.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			info := utils.RequestInfoFromEcho(c)
			req := c.Request()
			c.SetRequest(req.WithContext(utils.WithRequestInfo(req.Context(), info)))
			return next(c)
		}
	}
}
