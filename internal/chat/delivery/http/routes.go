package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat routes onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.ProcessMessage)
}
