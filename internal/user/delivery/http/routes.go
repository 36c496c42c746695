package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the identity routes onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	users := rg.Group("/users")
	{
		users.GET("/:id", h.Detail)
		users.GET("/:id/transactions", h.Transactions)
		users.POST("/:id/tickets", h.CreateTicket)
	}
	rg.GET("/status", h.ServiceStatus)
}
