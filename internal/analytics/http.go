package analytics

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recorder is the storage seam the handler writes through.
type Recorder interface {
	Record(ctx context.Context, eventType string, eventData map[string]any) error
}

type Handler struct {
	recorder Recorder
	log      *zap.Logger
}

func Register(rg *gin.RouterGroup, recorder Recorder, log *zap.Logger) {
	h := &Handler{recorder: recorder, log: log}
	rg.POST("", h.record)
}

type eventReq struct {
	EventType string         `json:"event_type"`
	EventData map[string]any `json:"event_data"`
}

// record always answers 200: a broken analytics pipeline must never break
// the user's flow. Failures are logged and reflected in the success flag
// only.
func (h *Handler) record(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil || req.EventType == "" {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	if err := h.recorder.Record(c.Request.Context(), req.EventType, req.EventData); err != nil {
		h.log.Warn("analytics event dropped",
			zap.String("event_type", req.EventType), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
