package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-calendar/core"
)

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")

type (
	successResponse struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
	}

	errorResponse struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors,omitempty"`
	}
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		resp := errorResponse{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				resp.Message = fmt.Sprint(origErr.Message)
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			resp.Message = fmt.Sprint(origErr.Message)
		case validator.ValidationErrors:
			resp.Errors = make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				resp.Errors[vErr.Field()] = vErr.Error()
			}
			code = http.StatusBadRequest
			resp.Message = http.StatusText(code)
		case *core.ValidationError:
			if origErr.Fields != nil {
				resp.Errors = make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					resp.Errors[fErr.Field] = fErr.Error
				}
			}
			code = http.StatusBadRequest
			resp.Message = origErr.Error()
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(code)
			resp.Message = msg

			logger.Error(msg, errors.Wrap(err, msg), getContextCaller(ctx))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
			if ctx.Echo().Debug {
				resp.Message = err.Error()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, resp)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
