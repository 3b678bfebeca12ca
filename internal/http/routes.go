package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Metrics())
	r.Use(cors.Default()) // the SPA may be served from another origin in dev

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/users/register", h.Register)
		api.POST("/users/login", h.Login)

		api.POST("/interviews", h.SaveInterview)
		api.GET("/interviews/user/:userId", h.ListInterviewsByUser)
		api.GET("/interviews/:id", h.GetInterview)

		api.GET("/questions/:category", h.QuestionsByCategory)
	}

	r.NoRoute(h.SPA)
	return r
}
