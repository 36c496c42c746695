package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/response"
)

// ProcessMessage godoc
// @Summary     Process a chat message
// @Description Routes the message through intent classification and the specialized handlers.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body processMessageReq true "Message data"
// @Success     200 {object} processMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	requestID := uuid.NewString()
	rc := model.RequestContext{
		Message:   req.Message,
		UserID:    req.UserID,
		Timestamp: time.Now(),
	}

	// The router never fails: every failure mode is folded into the result.
	result, err := h.router.Process(ctx, rc)
	if err != nil {
		h.l.Errorf(ctx, "router.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	h.l.Infof(ctx, "internal.chat.ProcessMessage: request_id=%s agent=%s", requestID, result.Agent)
	response.OK(c, newProcessMessageResp(requestID, result))
}

func (h *handler) processMessageReq(c *gin.Context) (processMessageReq, error) {
	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
