package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

// DieLister yields the AccuQuilt die list for the selector.
type DieLister interface {
	ListDies(ctx context.Context) ([]domain.Die, error)
}

type Handler struct {
	projects Source
	dies     DieLister
}

func Register(rg *gin.RouterGroup, projects Source, dies DieLister) {
	h := &Handler{projects: projects, dies: dies}
	rg.GET("/projects", h.listProjects)
	rg.GET("/dies", h.listDies)
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) listDies(c *gin.Context) {
	dies, err := h.dies.ListDies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "dies": dies})
}
