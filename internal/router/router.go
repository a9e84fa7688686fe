package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"agenda/internal/auth"
	"agenda/internal/config"
	apperrors "agenda/internal/errors"
	"agenda/internal/handler"
)

// Register wires routes and middleware. Contacts are served at /users and
// cards at /carts, matching the public API of the service this replaces.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	contactHandler *handler.ContactHandler,
	cardHandler *handler.CardHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Contact routes (open, no token required)
	e.GET("/users", contactHandler.List)
	e.GET("/users/:id", contactHandler.Get)
	e.POST("/users", contactHandler.Create)
	e.PATCH("/users/:id", contactHandler.Update)
	e.DELETE("/users/:id", contactHandler.Delete)

	// Card routes (open, no token required)
	e.GET("/carts", cardHandler.List)
	e.GET("/carts/:id", cardHandler.Get)
	e.POST("/carts", cardHandler.Create)
	e.PATCH("/carts/:id", cardHandler.Update)
	e.DELETE("/carts/:id", cardHandler.Delete)

	// Auth routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Token-gated probe: a missing Authorization header is 401, a malformed,
	// badly signed or expired token is 403. The same JWTService that issues
	// tokens does the verification.
	protected := e.Group("/protected", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrNoToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))
	protected.GET("", authHandler.Protected)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
