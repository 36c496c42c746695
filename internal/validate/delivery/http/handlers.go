package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-agents/pkg/response"
)

// RunSuite godoc
// @Summary     Run the full validation suite
// @Description Replays every suite case against the answering pipeline, sequentially.
// @Tags        Validation
// @Produce     json
// @Success     200 {object} validator.SuiteResult
// @Router      /api/v1/validate/run [POST]
func (h *handler) RunSuite(c *gin.Context) {
	ctx := c.Request.Context()

	result := h.harness.RunAll(ctx)
	response.OK(c, result)
}

// RunCase godoc
// @Summary     Run a single validation case
// @Description Replays one suite case by id, or an ad hoc question/expected pair.
// @Tags        Validation
// @Accept      json
// @Produce     json
// @Param       body body runCaseReq true "Case selector"
// @Success     200 {object} validator.CaseResult
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown case id"
// @Router      /api/v1/validate/case [POST]
func (h *handler) RunCase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunCaseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tc := req.toCase()
	if req.ID != "" {
		var ok bool
		if tc, ok = h.harness.CaseByID(req.ID); !ok {
			response.NotFound(c, "unknown case id")
			return
		}
	}

	response.OK(c, h.harness.RunCase(ctx, tc))
}

func (h *handler) processRunCaseReq(c *gin.Context) (runCaseReq, error) {
	var req runCaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
