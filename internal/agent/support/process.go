package support

import (
	"context"
	"fmt"
	"strings"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/gemini"
)

// Process implements agent.Handler. The model drives tool selection; this
// side executes tools against the identity attached to the request, never
// against model-provided identities.
func (s *Support) Process(ctx context.Context, rc model.RequestContext) (model.HandlerResult, error) {
	if rc.UserID == "" {
		result := model.NewHandlerResult(HandlerName, missingUserResponse)
		result.Metadata["confidence"] = 0.0
		result.Metadata["requires_user_id"] = true
		return result, nil
	}

	contents := []gemini.Content{
		{Role: "user", Parts: []gemini.Part{{Text: rc.Message}}},
	}
	var toolsUsed []string

	for i := 0; i < maxToolIterations; i++ {
		resp, err := s.llm.GenerateContent(ctx, gemini.GenerateRequest{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: systemInstruction}}},
			Contents:          contents,
			Tools:             s.tools.ToFunctionDeclarations(),
		})
		if err != nil {
			s.l.Warnf(ctx, "internal.agent.support.Process: generation failed: %v", err)
			return s.degraded(err), nil
		}
		if len(resp.Candidates) == 0 {
			return s.degraded(gemini.ErrEmptyResponse), nil
		}

		candidate := resp.Candidates[0].Content
		calls := functionCalls(candidate)
		if len(calls) == 0 {
			result := model.NewHandlerResult(HandlerName, strings.TrimSpace(textOf(candidate)))
			// Tool-grounded answers carry account data; untooled ones are
			// generic advice.
			if len(toolsUsed) > 0 {
				result.Metadata["confidence"] = 0.9
			} else {
				result.Metadata["confidence"] = 0.5
			}
			result.Metadata["tools_used"] = toolsUsed
			return result, nil
		}

		contents = append(contents, candidate)

		var responses []gemini.Part
		for _, call := range calls {
			toolsUsed = append(toolsUsed, call.Name)
			responses = append(responses, gemini.Part{
				FunctionResponse: &gemini.FunctionResponse{
					Name:     call.Name,
					Response: s.executeTool(ctx, rc.UserID, call),
				},
			})
		}
		contents = append(contents, gemini.Content{Role: "user", Parts: responses})
	}

	s.l.Warnf(ctx, "internal.agent.support.Process: tool loop exceeded %d iterations", maxToolIterations)
	return s.degraded(fmt.Errorf("tool loop exceeded %d iterations", maxToolIterations)), nil
}

// HealthCheck implements agent.Handler.
func (s *Support) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.Healthy()
}

// executeTool runs one tool call. Tool failures go back to the model as
// structured errors so it can apologize instead of hallucinating data.
func (s *Support) executeTool(ctx context.Context, userID string, call *gemini.FunctionCall) interface{} {
	tool, ok := s.tools.Get(call.Name)
	if !ok {
		return map[string]interface{}{"error": fmt.Sprintf("unknown tool %q", call.Name)}
	}

	out, err := tool.Execute(ctx, userID, call.Args)
	if err != nil {
		s.l.Warnf(ctx, "internal.agent.support.executeTool: %s failed: %v", call.Name, err)
		return map[string]interface{}{"error": err.Error()}
	}
	return out
}

func (s *Support) degraded(cause error) model.HandlerResult {
	result := model.NewHandlerResult(HandlerName, errorResponse)
	result.Metadata["confidence"] = 0.0
	result.Metadata["degraded"] = true
	result.Metadata["cause"] = cause.Error()
	return result
}

func functionCalls(content gemini.Content) []*gemini.FunctionCall {
	var calls []*gemini.FunctionCall
	for _, part := range content.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

func textOf(content gemini.Content) string {
	var b strings.Builder
	for _, part := range content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
