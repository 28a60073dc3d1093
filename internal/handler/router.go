package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mediexplain/docs"
	"mediexplain/internal/middleware"
)

type RouterOptions struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	config := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 || (len(opts.AllowedOrigins) == 1 && opts.AllowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.AllowedOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	router.POST("/login", h.Login)
	router.POST("/signup", h.Signup)
	router.POST("/login/demo", h.DemoLogin)

	requireAuth := middleware.AuthMiddleware(h.Sessions)

	public := router.Group("/api")
	{
		public.GET("/languages", h.Languages)
		public.GET("/about", h.About)
	}

	protected := router.Group("/api", requireAuth)
	{
		protected.POST("/logout", h.Logout)
		protected.GET("/profile", h.Profile)

		analyze := []gin.HandlerFunc{middleware.SingleSubmit(middleware.SessionKey)}
		if opts.RateLimitRPS > 0 {
			analyze = append([]gin.HandlerFunc{middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst)}, analyze...)
		}
		protected.POST("/analyze", append(analyze, h.Analyze)...)

		protected.GET("/dashboard", h.Dashboard)
		protected.GET("/dashboard/trends.html", h.TrendsChart)
		protected.GET("/history", h.GetHistory)
		protected.GET("/history/:id/narration", h.StreamNarration)

		protected.GET("/knowledge/tests", h.ListTests)
		protected.GET("/knowledge/medications", h.ListMedications)
		protected.GET("/knowledge/test/:name", h.TestDetail)
		protected.GET("/knowledge/medication/:name", h.MedicationDetail)
	}

	router.GET("/ws/storage", requireAuth, h.HandleStorageEvents)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
