package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataResponse writes data in the APIResponse envelope.
func DataResponse(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, APIResponse{Status: status, Message: http.StatusText(status), Data: data})
}

// BadRequestResponse writes request validation failures.
func BadRequestResponse(c echo.Context, errs []ValidationError) error {
	return DataResponse(c, http.StatusBadRequest, errs)
}

func TooManyRequestsResponse(c echo.Context) error {
	return AppErrorResponse(c, NewAppError(http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded"))
}

func InternalServerErrorResponse(c echo.Context) error {
	return AppErrorResponse(c, InternalError("something went wrong"))
}

// AppErrorResponse writes err as a one-element error list. Errors that are
// not AppErrors are reported as a bare 500 without their text.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError("something went wrong")
	}
	return DataResponse(c, StatusOf(appErr), []*AppError{appErr})
}
