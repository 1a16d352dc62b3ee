package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/goal"
)

func (s *Server) handleListGoals(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	goals, err := s.store.GetGoals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

type createGoalRequest struct {
	Name         string     `json:"name" binding:"required"`
	TargetAmount float64    `json:"targetAmount"`
	Deadline     *time.Time `json:"deadline"`
}

func (s *Server) handleCreateGoal(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TargetAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target amount must be positive"})
		return
	}

	goals, err := s.store.GetGoals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	g := goal.New(req.Name, req.TargetAmount, req.Deadline)
	goals = append(goals, g)

	if err := s.store.SaveGoals(c.Request.Context(), goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

type goalProgressRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) handleGoalProgress(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	var req goalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	goals, err := s.store.GetGoals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	for i := range goals {
		if goals[i].ID == id {
			// Progress past the target is allowed; the UI shows >100%.
			goals[i].CurrentAmount += req.Amount
			if err := s.store.SaveGoals(c.Request.Context(), goals); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, goals[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
}

func (s *Server) handleDeleteGoal(c *gin.Context) {
	if _, ok := s.activeUser(c); !ok {
		return
	}
	goals, err := s.store.GetGoals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	for i := range goals {
		if goals[i].ID == id {
			goals = append(goals[:i], goals[i+1:]...)
			if err := s.store.SaveGoals(c.Request.Context(), goals); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
}
