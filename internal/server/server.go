// Package server is the thin HTTP glue over the models: request
// binding, validation messages, and status codes. No business rules
// live here.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/assistant"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/insights"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/storage"
)

type insightQueue interface {
	RequestInsight(req insights.Request) error
}

type insightCache interface {
	GetInsight(userID, period string) (string, error)
	InvalidateInsights(userID string, periods []string) error
}

type Server struct {
	store     storage.Store
	assistant *assistant.Service
	queue     insightQueue
	cache     insightCache
}

// New builds the server. queue and cache may be nil; the insight
// endpoints then answer 503.
func New(store storage.Store, assistantSvc *assistant.Service, queue insightQueue, cache insightCache) *Server {
	return &Server{
		store:     store,
		assistant: assistantSvc,
		queue:     queue,
		cache:     cache,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/users/signup", s.handleSignUp)
		api.POST("/users/signin", s.handleSignIn)
		api.POST("/users/signout", s.handleSignOut)
		api.GET("/users/me", s.handleMe)

		api.GET("/finances", s.handleGetFinances)
		api.PUT("/finances/balance", s.handleSetBalance)
		api.POST("/finances/income", s.handleAddIncome)
		api.POST("/finances/expenses", s.handleAddExpense)

		api.GET("/goals", s.handleListGoals)
		api.POST("/goals", s.handleCreateGoal)
		api.PUT("/goals/:id/progress", s.handleGoalProgress)
		api.DELETE("/goals/:id", s.handleDeleteGoal)

		api.GET("/chat", s.handleChatHistory)
		api.POST("/chat", s.handleChatMessage)

		api.POST("/insights", s.handleRequestInsight)
		api.GET("/insights", s.handleGetInsight)

		api.DELETE("/data", s.handleClearAll)
	}

	return r
}
