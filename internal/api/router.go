package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/adminhub/console-api/docs"
	"github.com/adminhub/console-api/internal/api/handler"
	"github.com/adminhub/console-api/internal/api/middleware"
	"github.com/adminhub/console-api/internal/core/ports"
)

// Deps bundles the long-lived handles and services the router needs.
// Everything is constructed once at startup and treated as an immutable
// reference afterwards; no handler mutates shared state.
type Deps struct {
	Mongo *mongo.Database
	Redis *redis.Client

	Auth     ports.AuthService
	Users    ports.UserService
	UserRepo ports.UserRepository
	Throttle ports.ThrottleStore
	Messages ports.MessageService
	Chat     ports.ChatService

	DocsUsername       string
	DocsPassword       string
	StaticBearerSecret string

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	registerHandler := handler.NewRegisterHandler(deps.Users)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	chatHandler := handler.NewChatHandler(deps.Chat)

	// --- Guard chain ---
	authenticated := middleware.Auth(deps.Auth)
	guarded := middleware.Guard(deps.UserRepo)
	bearer := middleware.StaticBearer(deps.StaticBearerSecret)
	docsAuth := middleware.DocsBasicAuth(deps.DocsUsername, deps.DocsPassword, deps.Throttle)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.POST("/token", authHandler.Login)
	v1.POST("/logout", authHandler.Logout)

	// --- Public routes (static bearer gate) ---
	public := v1.Group("", bearer)
	public.POST("/register", registerHandler.Register)
	public.POST("/users/forgot-password", registerHandler.ForgotPassword)
	public.POST("/users/reset-password", registerHandler.ResetPassword)

	// --- Protected routes (token → account status → permission) ---
	protected := v1.Group("", authenticated, guarded)
	protected.GET("/users", userHandler.List)
	protected.GET("/users/profile", userHandler.Profile)
	protected.GET("/users/:id", userHandler.Get)
	protected.GET("/check_user_exists", userHandler.Exists)
	protected.POST("/users", userHandler.Create)
	protected.PUT("/users/:id", userHandler.Update)
	protected.DELETE("/users/:id", userHandler.Delete)

	protected.GET("/config", messageHandler.GetConfig)
	protected.PUT("/config", messageHandler.UpdateConfig)
	protected.POST("/test-email", messageHandler.TestEmail)
	protected.POST("/send-email", messageHandler.SendEmail)

	protected.GET("/chat", chatHandler.Chat)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Introspection (basic auth, throttled) ---
	e.GET("/metrics", echoprometheus.NewHandler(), docsAuth)
	e.GET("/docs/*", echoSwagger.WrapHandler, docsAuth)

	return e
}
