package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// callerMiddleware resolves the calendar caller from the JWT claims once per request.
func callerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, err := getContextClaims(ctx)
		if err != nil {
			return errors.Wrap(err, "getting context claims")
		}
		ctx.Set(contextCallerKey, callerFromClaims(claims))
		return next(ctx)
	}
}
