package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/grading"
)

type dashboardApi struct {
	svc *grading.Service
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps Deps) {
	api := dashboardApi{svc: deps.GradingSvc}

	dg := g.Group("/dashboard/student/:student_id", jwt)
	dg.GET("", api.transcript)
	dg.GET("/semesters/:semester", api.semester)
}

func (api *dashboardApi) transcript(ctx echo.Context) error {
	transcript, err := api.svc.StudentTranscript(ctx.Request().Context(), ctx.Param("student_id"))
	if err != nil {
		if errors.Cause(err) == grading.ErrStudentNotFound {
			return errStudentNotFound
		}
		return errors.Wrap(err, "building transcript")
	}
	return ctx.JSON(http.StatusOK, transcript)
}

func (api *dashboardApi) semester(ctx echo.Context) error {
	semester, err := strconv.Atoi(ctx.Param("semester"))
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "semester", Error: "semester must be a number"})
	}

	summary, err := api.svc.StudentSemester(ctx.Request().Context(), ctx.Param("student_id"), semester)
	if err != nil {
		if errors.Cause(err) == grading.ErrStudentNotFound {
			return errStudentNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, summary)
}
