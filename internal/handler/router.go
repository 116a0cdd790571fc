package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/handler/api"
	"paseos-api/internal/handler/middleware"
	"paseos-api/internal/pkg/config"
)

type Handlers struct {
	Auth         *api.AuthHandler
	Registration *api.RegistrationHandler
	Cedula       *api.CedulaHandler
	Quiz         *api.QuizHandler
	Reservation  *api.ReservationHandler
}

// access decides which guards run in front of a route.
type access int

const (
	public access = iota
	signedIn
	walkersOnly
)

type route struct {
	method  string
	path    string
	access  access
	handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// outermost, so panics in any later middleware are caught
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func apiRoutes(h Handlers) []route {
	return []route{
		{http.MethodPost, "/auth/login", public, h.Auth.Login},
		{http.MethodPost, "/auth/refresh", public, h.Auth.Refresh},
		{http.MethodPost, "/auth/logout", signedIn, h.Auth.Logout},
		{http.MethodGet, "/auth/me", signedIn, h.Auth.Me},

		{http.MethodPost, "/owners", public, h.Registration.RegisterOwner},
		{http.MethodPost, "/walkers", public, h.Registration.RegisterWalker},
		{http.MethodPost, "/validations/cedula", public, h.Cedula.Validate},

		{http.MethodGet, "/quiz/questions", public, h.Quiz.Questions},
		{http.MethodPost, "/quiz/sessions", walkersOnly, h.Quiz.StartSession},
		{http.MethodPost, "/quiz/sessions/:id/answers", walkersOnly, h.Quiz.Answer},

		{http.MethodGet, "/reservations", signedIn, h.Reservation.List},
		{http.MethodGet, "/reservations/groups/:groupId", signedIn, h.Reservation.GetGroup},
	}
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	guards := map[access][]gin.HandlerFunc{
		public:      nil,
		signedIn:    {authMiddleware.RequireAuth()},
		walkersOnly: {authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleWalker)},
	}

	group := engine.Group("/api")
	for _, r := range apiRoutes(h) {
		chain := append(append([]gin.HandlerFunc{}, guards[r.access]...), r.handler)
		group.Handle(r.method, r.path, chain...)
	}
}

// @Summary Health check
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "paseos-api"})
}
