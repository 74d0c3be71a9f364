package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	chat := rg.Group("/assistant")
	{
		chat.POST("/messages", h.ProcessMessage)
		chat.GET("/messages", h.Transcript)
		chat.GET("/snapshot", h.Snapshot)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.PATCH("/:id/toggle", h.ToggleTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	events := rg.Group("/events")
	{
		events.DELETE("/:id", h.DeleteEvent)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.LinkAccount)
		accounts.GET("", h.ListAccounts)
	}

	rg.POST("/export", h.Export)
}
