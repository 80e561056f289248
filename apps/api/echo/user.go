package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/user"
)

type authApi struct {
	conf       *core.Config
	svc        *user.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps Deps) {
	api := authApi{
		conf:       deps.Conf,
		svc:        deps.UserSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/register", api.register)
	ag.POST("/login", api.login)

	// authed endpoints
	ag.GET("/me", api.me, jwt)
	ag.POST("/token-refresh", api.refreshToken, jwt)
}

// Handlers

func (api *authApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(ctx.Request().Context(), api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return api.respondWithToken(ctx, http.StatusCreated, usr)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.Identifier, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidCreds {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}
	return api.respondWithToken(ctx, http.StatusOK, usr)
}

func (api *authApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.svc)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errUserNotFound
		}
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *authApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx, api.svc, api.conf)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *authApi) respondWithToken(ctx echo.Context, code int, usr user.User) error {
	token, err := GenerateToken(GetUserClaims(usr, api.conf), api.conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(code, AuthResponse{Token: token, User: usr})
}

type (
	LoginRequest struct {
		Identifier string `json:"identifier" validate:"required"` // email (teachers) or student ID
		Password   string `json:"password" validate:"required"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}

	AuthResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Identifier = core.CleanString(lr.Identifier)
	return validate.Struct(lr)
}
