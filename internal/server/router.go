package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/http/handlers"
	"github.com/zhilu/aicareer-backend/internal/http/middleware"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration

	PersonalityHandler *handlers.PersonalityHandler
	CareerHandler      *handlers.CareerHandler
	PathHandler        *handlers.PathHandler
	GraphHandler       *handlers.GraphHandler
	ChatHandler        *handlers.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/personality/submit", cfg.PersonalityHandler.SubmitResult)
		api.GET("/personality/types", cfg.PersonalityHandler.ListTypes)
		api.GET("/personality/types/:code", cfg.PersonalityHandler.GetType)
		api.GET("/personality/types/:code/careers", cfg.PersonalityHandler.RecommendCareers)

		api.GET("/careers", cfg.CareerHandler.List)
		api.GET("/careers/:id", cfg.CareerHandler.Detail)
		api.GET("/careers/:id/paths", cfg.CareerHandler.Paths)

		api.GET("/paths/:id", cfg.PathHandler.Detail)
		api.GET("/students/:id/recommendations", cfg.PathHandler.RecommendForStudent)

		api.GET("/graph/student/:id", cfg.GraphHandler.StudentGraph)
		api.GET("/graph/full", cfg.GraphHandler.FullGraph)
		api.GET("/graph/career/:id", cfg.GraphHandler.CareerGraph)

		api.POST("/chat", cfg.ChatHandler.Chat)
		api.GET("/chat/suggestions", cfg.ChatHandler.Suggestions)
	}

	return router
}
