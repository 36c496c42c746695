package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/store"
	"customer-support-agents/pkg/response"
)

// Detail godoc
// @Summary     Get user detail
// @Description Returns the account record for a user.
// @Tags        Users
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} model.User
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.store.GetUser(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		h.l.Errorf(ctx, "store.GetUser: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, user)
}

// Transactions godoc
// @Summary     List user transactions
// @Description Returns the user's most recent transactions, newest first.
// @Tags        Users
// @Produce     json
// @Param       id    path  string true  "User ID"
// @Param       limit query int    false "Maximum rows (default: 10)"
// @Success     200 {array} model.Transaction
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id}/transactions [GET]
func (h *handler) Transactions(c *gin.Context) {
	ctx := c.Request.Context()

	limit := defaultTransactionLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	txns, err := h.store.GetTransactions(ctx, c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		h.l.Errorf(ctx, "store.GetTransactions: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, txns)
}

// CreateTicket godoc
// @Summary     Open a support ticket
// @Description Opens a ticket on behalf of the user.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id   path string          true "User ID"
// @Param       body body createTicketReq true "Ticket data"
// @Success     200 {object} model.Ticket
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id}/tickets [POST]
func (h *handler) CreateTicket(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	ticket, err := h.store.CreateTicket(ctx, c.Param("id"), req.Issue)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		h.l.Errorf(ctx, "store.CreateTicket: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, ticket)
}

// ServiceStatus godoc
// @Summary     Platform service status
// @Description Reports the health of the platform's downstream services.
// @Tags        Status
// @Produce     json
// @Success     200 {object} model.ServiceStatus
// @Router      /api/v1/status [GET]
func (h *handler) ServiceStatus(c *gin.Context) {
	response.OK(c, h.store.ServiceStatus(c.Request.Context()))
}
