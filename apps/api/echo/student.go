package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core/user"
)

type studentApi struct {
	svc *user.Service
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps Deps) {
	api := studentApi{svc: deps.UserSvc}

	g.GET("/students", api.query, jwt, teacherMiddleware())
}

func (api *studentApi) query(ctx echo.Context) error {
	filter := new(user.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []user.User{})
	}
	filter.Clean()

	students, err := api.svc.QueryStudents(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []user.User{}
	}
	return ctx.JSON(http.StatusOK, students)
}
