package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat
// completions). Also covers OpenAI-compatible endpoints via BaseURL.
type OpenAILLM struct {
	Model   string
	BaseURL string
}

func NewOpenAILLM(cfg Settings) (*OpenAILLM, error) {
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	return &OpenAILLM{Model: cfg.Model, BaseURL: cfg.BaseURL}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, apiKey string, prompt Prompt) (string, error) {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	client := openai.NewClient(opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt.System),
		openai.UserMessage(prompt.User),
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: msgs,
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", StatusError{StatusCode: apierr.StatusCode, Message: apierr.Message}
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
