package server

import (
	"net/http"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/model/insights"
)

func (s *Server) handleChatHistory(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	msgs, err := s.store.GetMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleChatMessage(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := s.assistant.HandleMessage(c.Request.Context(), req.Message)
	if err != nil {
		// Reply text still exists; only persisting it failed.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"reply": reply.Text, "source": reply.Source}
	if reply.Summary != nil {
		resp["summary"] = reply.Summary
	}
	c.JSON(http.StatusOK, resp)
}

type insightRequest struct {
	Period string `json:"period"`
}

func (s *Server) handleRequestInsight(c *gin.Context) {
	rec, ok := s.activeUser(c)
	if !ok {
		return
	}
	if s.queue == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insights are not enabled"})
		return
	}
	var req insightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.queue.RequestInsight(insights.Request{UserID: rec.ID, Period: req.Period})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}

func (s *Server) handleGetInsight(c *gin.Context) {
	rec, ok := s.activeUser(c)
	if !ok {
		return
	}
	if s.cache == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insights are not enabled"})
		return
	}

	report, err := s.cache.GetInsight(rec.ID, c.Query("period"))
	if errors.Is(err, memcache.ErrCacheMiss) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not ready yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
