package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var codeToStatus = map[string]int{
	CodeInvalidArgument: http.StatusBadRequest,
	CodeUnauthenticated: http.StatusUnauthorized,
	CodeForbidden:       http.StatusForbidden,
	CodeNotFound:        http.StatusNotFound,
	CodeConflict:        http.StatusConflict,
	CodeInternal:        http.StatusInternalServerError,
}

// ToHTTPStatus converts an error code to an HTTP status code.
func ToHTTPStatus(code string) int {
	if status, ok := codeToStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// JSON writes the error as {"error": message} with the mapped status code.
// Wrapped internal causes never leak into the response body.
func JSON(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return c.JSON(ToHTTPStatus(appErr.Code()), map[string]string{"error": appErr.Message()})
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return c.JSON(echoErr.Code, map[string]string{"error": http.StatusText(echoErr.Code)})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
