package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the validation routes onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	validate := rg.Group("/validate")
	{
		validate.POST("/run", h.RunSuite)
		validate.POST("/case", h.RunCase)
	}
}
