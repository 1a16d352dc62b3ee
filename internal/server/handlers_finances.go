package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/logger"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/analytics"
	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/insights"
)

func (s *Server) handleGetFinances(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	data, err := s.store.GetFinancialData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"summary": analytics.Summarize(&data),
	})
}

type setBalanceRequest struct {
	TotalBalance float64 `json:"totalBalance"`
}

func (s *Server) handleSetBalance(c *gin.Context) {
	rec, ok := s.activeUser(c)
	if !ok {
		return
	}
	var req setBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := s.store.GetFinancialData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data.TotalBalance = req.TotalBalance
	if err := s.store.SaveFinancialData(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.invalidateInsights(rec.ID)
	c.JSON(http.StatusOK, data)
}

type entryRequest struct {
	Amount   float64    `json:"amount"`
	Category string     `json:"category"`
	Date     *time.Time `json:"date"`
}

func (r *entryRequest) date() time.Time {
	if r.Date != nil {
		return *r.Date
	}
	return time.Now()
}

func (s *Server) handleAddIncome(c *gin.Context) {
	rec, ok := s.activeUser(c)
	if !ok {
		return
	}
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	data, err := s.store.GetFinancialData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data.AddIncome(req.Amount, req.date())
	if err := s.store.SaveFinancialData(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.invalidateInsights(rec.ID)
	c.JSON(http.StatusOK, data)
}

func (s *Server) handleAddExpense(c *gin.Context) {
	rec, ok := s.activeUser(c)
	if !ok {
		return
	}
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	if req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	data, err := s.store.GetFinancialData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data.AddExpense(req.Amount, req.Category, req.date())
	if err := s.store.SaveFinancialData(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.invalidateInsights(rec.ID)
	c.JSON(http.StatusOK, data)
}

func (s *Server) invalidateInsights(userID string) {
	if s.cache == nil {
		return
	}
	// Stale cached reports are a cosmetic problem, not a correctness
	// one; log and move on.
	if err := s.cache.InvalidateInsights(userID, insights.AllPeriods); err != nil {
		logger.Warn("insight cache invalidation failed", zap.Error(err))
	}
}

func (s *Server) handleClearAll(c *gin.Context) {
	if err := s.store.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
