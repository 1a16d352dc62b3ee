package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Nalina-Ramesh/finova-ai-finance-guide/internal/entity/user"
)

type signUpRequest struct {
	Email       string            `json:"email" binding:"required"`
	FullName    string            `json:"fullName" binding:"required"`
	Password    string            `json:"password"`
	Demographic *user.Demographic `json:"demographic"`
	Goals       []string          `json:"goals"`
}

func (s *Server) handleSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := s.store.GetUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
			return
		}
	}

	rec := user.Record{
		ID:          uuid.NewString(),
		Email:       email,
		FullName:    req.FullName,
		Password:    req.Password,
		Demographic: req.Demographic,
		Goals:       req.Goals,
		CreatedAt:   time.Now(),
	}
	users = append(users, rec)

	if err := s.store.SaveUsers(c.Request.Context(), users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.SetActiveUser(c.Request.Context(), rec.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rec.Password = ""
	c.JSON(http.StatusCreated, rec)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

func (s *Server) handleSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := s.store.GetUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, req.Email) && users[i].Password == req.Password {
			if err := s.store.SetActiveUser(c.Request.Context(), users[i].ID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			rec := users[i]
			rec.Password = ""
			c.JSON(http.StatusOK, rec)
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
}

func (s *Server) handleSignOut(c *gin.Context) {
	if err := s.store.SetActiveUser(c.Request.Context(), ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleMe(c *gin.Context) {
	rec, ok := s.activeUser(c)
	if !ok {
		return
	}
	rec.Password = ""
	c.JSON(http.StatusOK, rec)
}

// activeUser resolves the signed-in user or writes the error response
// and reports false.
func (s *Server) activeUser(c *gin.Context) (user.Record, bool) {
	id, err := s.store.ActiveUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return user.Record{}, false
	}
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active user"})
		return user.Record{}, false
	}
	users, err := s.store.GetUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return user.Record{}, false
	}
	for i := range users {
		if users[i].ID == id {
			return users[i], true
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "active user no longer exists"})
	return user.Record{}, false
}
