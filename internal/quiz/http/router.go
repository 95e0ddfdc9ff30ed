package http

import "github.com/gin-gonic/gin"

// Register attaches the quiz and results routes to the given router group.
func (h *Handler) Register(api *gin.RouterGroup) {
	quiz := api.Group("/quiz")
	quiz.POST("/match", h.match)
	quiz.POST("/results", h.saveResults)

	api.GET("/results/:unique_id", h.getResult)
}
