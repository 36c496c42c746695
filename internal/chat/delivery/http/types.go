package http

import (
	"errors"
	"strings"

	"customer-support-agents/internal/model"
)

type processMessageReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func (r processMessageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

type processMessageResp struct {
	RequestID string                 `json:"request_id"`
	Response  string                 `json:"response"`
	Agent     string                 `json:"agent"`
	Metadata  map[string]interface{} `json:"metadata"`
}

func newProcessMessageResp(requestID string, result model.HandlerResult) processMessageResp {
	return processMessageResp{
		RequestID: requestID,
		Response:  result.Response,
		Agent:     result.Agent,
		Metadata:  result.Metadata,
	}
}
