package http

import (
	"errors"

	"customer-support-agents/internal/agent/validator"
)

type runCaseReq struct {
	// ID selects a suite case. When empty, Question and ExpectedAnswer
	// define an ad hoc case.
	ID             string `json:"id"`
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

func (r runCaseReq) validate() error {
	if r.ID == "" && (r.Question == "" || r.ExpectedAnswer == "") {
		return errors.New("either id or question plus expected_answer is required")
	}
	return nil
}

func (r runCaseReq) toCase() validator.TestCase {
	return validator.TestCase{
		ID:             "adhoc",
		Question:       r.Question,
		ExpectedAnswer: r.ExpectedAnswer,
	}
}
