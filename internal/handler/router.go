package handler

import (
	"embed"
	"html/template"
	"time"

	"nutriguide/internal/logging"
	"nutriguide/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "nutriguide/docs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// RouterOptions are the HTTP-level settings of the server.
type RouterOptions struct {
	AllowedOrigins     []string
	DebugKey           string
	RateLimitPerMinute int
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinLogger(h.logger), logging.GinRecovery(h.logger))
	router.SetTrustedProxies(nil)

	config := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 || (len(opts.AllowedOrigins) == 1 && opts.AllowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.AllowedOrigins
		config.AllowCredentials = true
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "X-Debug-Key")
	config.MaxAge = 12 * time.Hour
	router.Use(cors.New(config))

	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl")))

	limit := middleware.RateLimit(opts.RateLimitPerMinute)
	withSession := middleware.LoadSession(h.sessions)
	debug := middleware.DebugKey(opts.DebugKey)

	router.GET("/", withSession, h.FormPage)
	router.POST("/submit", limit, h.SubmitForm)
	router.GET("/dashboard", withSession, h.DashboardPage)
	router.POST("/logout", h.Logout)
	router.GET("/assets/background", h.Background)

	api := router.Group("/api")
	{
		api.POST("/profiles", limit, h.CreateProfile)
		api.GET("/profiles", debug, h.ListProfiles)
		api.GET("/profiles/:id", h.GetProfile)
		api.GET("/profiles/:id/dashboard", h.GetDashboard)
		api.GET("/dashboard", middleware.RequireSession(h.sessions), h.GetSessionDashboard)
		api.GET("/dashboard/latest", debug, h.GetLatestDashboard)
	}

	router.GET("/ws/dashboard", middleware.RequireSession(h.sessions), h.DashboardSocket)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", h.Health)

	return router
}
