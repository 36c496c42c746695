package http

import (
	"errors"
	"strings"
)

const defaultTransactionLimit = 10

type createTicketReq struct {
	Issue string `json:"issue"`
}

func (r createTicketReq) validate() error {
	if strings.TrimSpace(r.Issue) == "" {
		return errors.New("issue is required")
	}
	return nil
}
