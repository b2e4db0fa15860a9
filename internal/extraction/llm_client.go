package extraction

import "context"

// LLMRequest is a single-shot completion request.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int32
	Temperature float32
}

// LLMResponse carries the raw model output.
type LLMResponse struct {
	Text       string
	StopReason string
}

// LLMClient abstracts the extraction model provider.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
