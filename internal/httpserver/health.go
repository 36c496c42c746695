package httpserver

import (
	"github.com/gin-gonic/gin"

	"customer-support-agents/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Customer Support Agents API"
	HealthVersion = "1.0.0"
	ServiceName   = "customer-support-agents"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// listAgents reports every registered handler and its health.
// @Summary List agents
// @Description Returns registered handlers, their intents, priorities and health.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Registered agents"
// @Router /agents [get]
func (srv HTTPServer) listAgents(c *gin.Context) {
	if srv.registry == nil {
		response.OK(c, gin.H{"agents": []gin.H{}})
		return
	}

	ctx := c.Request.Context()
	agents := make([]gin.H, 0)
	for _, md := range srv.registry.All() {
		agents = append(agents, gin.H{
			"name":             md.Name,
			"description":      md.Description,
			"intents":          md.Intents,
			"capabilities":     md.Capabilities,
			"priority":         md.Priority,
			"requires_user_id": md.RequiresUserID,
			"health":           md.Handler.HealthCheck(ctx),
		})
	}
	response.OK(c, gin.H{"agents": agents})
}
