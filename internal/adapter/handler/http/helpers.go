package http

import (
	"strconv"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
)

// sessionUserID reads the user id straight from the session cookie, for
// routes mounted outside the auth guard.
func sessionUserID(c echo.Context) (uint, bool) {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return 0, false
	}
	userID, ok := sess.Values[middleware.UserIDKey].(uint)
	return userID, ok && userID != 0
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// bindPagination reads page/per_page query parameters and normalizes them.
func bindPagination(c echo.Context) entity.PaginationParams {
	var params entity.PaginationParams
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil {
		params.PerPage = perPage
	}
	params.Validate()
	return params
}
