package middleware

import (
	"errors"
	"net/http"
	"time"

	"brainagro/cmd/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records the count and latency of every request, labelled by the
// route pattern rather than the raw path to keep cardinality bounded.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, status, start)
			return err
		}
	}
}
