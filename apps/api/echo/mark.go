package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core/mark"
)

type markApi struct {
	svc      *mark.Service
	validate *validator.Validate
}

func registerMarkAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps Deps) {
	api := markApi{svc: deps.MarkSvc, validate: deps.Validate}

	mg := g.Group("/marks", jwt)
	mg.POST("", api.upsert, teacherMiddleware())
	mg.GET("/student/:id", api.queryByStudent)
	mg.GET("/subject/:id", api.queryBySubject, teacherMiddleware())
}

func (api *markApi) upsert(ctx echo.Context) error {
	var data mark.NewMark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMark")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	mrk, err := api.svc.Upsert(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "upserting mark")
	}
	return ctx.JSON(http.StatusOK, mrk)
}

// queryByStudent lists the marks of a student, by internal user ID.
func (api *markApi) queryByStudent(ctx echo.Context) error {
	marks, err := api.svc.QueryByStudent(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student marks")
	}
	return ctx.JSON(http.StatusOK, nonNilMarks(marks))
}

func (api *markApi) queryBySubject(ctx echo.Context) error {
	marks, err := api.svc.QueryBySubject(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying subject marks")
	}
	return ctx.JSON(http.StatusOK, nonNilMarks(marks))
}

func nonNilMarks(marks []mark.Mark) []mark.Mark {
	if marks == nil {
		return []mark.Mark{}
	}
	return marks
}
