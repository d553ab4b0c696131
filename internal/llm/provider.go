package llm

import (
	"context"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a prompt and receive the completion text.
//
// Generate is a single blocking call: no retry, no backoff, no
// streaming. The workflow layer depends on exactly-one-request
// semantics per transition, so transient-failure policy belongs to the
// caller (in practice: the user presses the button again).
type Provider interface {
	// Generate sends a prompt to the LLM and returns the completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	// May be empty; the lesson and quiz prompts carry their own framing.
	System string

	// Prompt is the user instruction. Single-turn only.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Response holds the LLM's output.
type Response struct {
	// Text is the generated completion, expected to be markdown.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
