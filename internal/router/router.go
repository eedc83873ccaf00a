package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"canteen/internal/auth"
	"canteen/internal/config"
	"canteen/internal/handler"
	"canteen/internal/service"
	"canteen/internal/session"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Shop    *handler.ShopHandler
	Admin   *handler.AdminHandler
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	API     *handler.APIHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *session.Store,
	jwtService *auth.JWTService,
	authService service.AuthService,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// JSON API and live feed carry no session or login state
	e.GET("/api/menu", h.API.ListMenu)
	e.GET("/api/queue", h.API.ListQueue)
	e.GET("/ws/queue", h.API.QueueSocket)

	site := e.Group("",
		sessions.Middleware(),
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "cookie:" + handler.AuthCookieName,
			ContextKey:  handler.ClaimsContextKey,
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return jwtService.ValidateToken(token)
			},
			// a missing or bad login cookie means an anonymous visitor
			ContinueOnIgnoredError: true,
			ErrorHandler: func(c echo.Context, err error) error {
				return nil
			},
		}),
		handler.LoadUser(authService, cfg.CookieSecure),
	)

	// Customer routes
	site.GET("/", h.Shop.Index)
	site.POST("/add_to_cart/:item_id", h.Shop.AddToCart)
	site.GET("/cart", h.Shop.ViewCart)
	site.POST("/clear_cart", h.Shop.ClearCart)
	site.POST("/pay", h.Shop.Pay)
	site.GET("/success", h.Shop.Success)

	// Account routes
	site.POST("/handle_register", h.Auth.HandleRegister)
	site.POST("/handle_login", h.Auth.HandleLogin)
	site.GET("/logout", h.Auth.Logout, handler.RequireLogin)

	profile := site.Group("/profile", handler.RequireLogin)
	profile.GET("", h.Profile.Show)
	profile.POST("", h.Profile.Update)
	profile.POST("/change_password", h.Profile.ChangePassword)
	profile.POST("/payment_methods", h.Profile.PaymentMethods)

	// Admin routes
	admin := site.Group("/admin", handler.RequireAdmin)
	admin.GET("", h.Admin.Panel)
	admin.POST("/add", h.Admin.AddItem)
	admin.POST("/edit/:item_id", h.Admin.EditItem)
	admin.POST("/delete/:item_id", h.Admin.DeleteItem)
	admin.GET("/menu/export", h.Admin.ExportMenu)
	admin.POST("/queue/:entry_id/done", h.Admin.QueueDone)
	admin.POST("/queue/:entry_id/restore", h.Admin.QueueRestore)
	admin.POST("/queue/:entry_id/delete", h.Admin.QueueDelete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
