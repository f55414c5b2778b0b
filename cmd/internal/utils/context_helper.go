package utils

import (
	"context"

	"github.com/labstack/echo/v4"
)

type requestInfoKey struct{}

// RequestInfo is the slice of the incoming request that is worth carrying
// down to services for diagnostics.
type RequestInfo struct {
	ID     string
	Method string
	Path   string
}

func WithRequestInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFromContext never returns nil, background contexts yield an empty info.
func RequestInfoFromContext(ctx context.Context) *RequestInfo {
	if ctx == nil {
		return &RequestInfo{}
	}

	info, ok := ctx.Value(requestInfoKey{}).(*RequestInfo)
	if !ok || info == nil {
		return &RequestInfo{}
	}
	return info
}

// RequestInfoFromEcho builds the info out of the echo request, using the
// request id set by the RequestID middleware (if any).
func RequestInfoFromEcho(c echo.Context) *RequestInfo {
	req := c.Request()
	return &RequestInfo{
		ID:     c.Response().Header().Get(echo.HeaderXRequestID),
		Method: req.Method,
		Path:   req.URL.Path,
	}
}
