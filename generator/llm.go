package generator

import "context"

// LLMClient abstracts one text-completion call against a single credential.
// The Gateway owns key selection; implementations receive the key per call.
type LLMClient interface {
	Complete(ctx context.Context, apiKey string, prompt Prompt) (string, error)
}

// Prompt is the message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// Settings holds the model configuration shared by client implementations.
type Settings struct {
	Model   string
	BaseURL string
}
