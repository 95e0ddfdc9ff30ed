package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
	"github.com/talohastudios/die-project-finder/internal/quiz/service"
)

func (h *Handler) match(c *gin.Context) {
	var req matchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.svc.Match(c.Request.Context(), req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"projects":     res.Projects,
		"crafter_type": res.CrafterType,
	})
}

func (h *Handler) saveResults(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	outcome, err := h.svc.SaveResults(c.Request.Context(), service.SaveRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		Answers:   req.Answers,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":          true,
		"unique_id":   outcome.UniqueID,
		"results_url": outcome.ResultsURL,
		"subscribed":  outcome.Subscribed,
	})
}

func (h *Handler) getResult(c *gin.Context) {
	res, err := h.svc.GetResult(c.Request.Context(), c.Param("unique_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

// writeError maps domain errors onto status codes; everything unknown is a
// plain 500 without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAnswers), errors.Is(err, domain.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "results not found"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "catalog unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}
