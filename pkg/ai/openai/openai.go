package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/cultural-wonders/backend/pkg/ai"
)

const (
	// ProviderName identifies this adapter in status reports and logs.
	ProviderName = "openai"

	defaultModel = "gpt-4.1-mini"

	// historyWindow bounds how many prior turns are forwarded upstream.
	historyWindow = 10

	maxOutputTokens = 500
)

// Client is the primary text-generation provider, backed by the OpenAI
// chat completions API.
//
// A Client should be created using NewClient.
type Client struct {
	model        string
	systemPrompt string

	client *openai.Client
}

// NewClientParams defines the configuration for creating a Client.
// An empty APIKey produces an unavailable client: Available reports false
// and Complete fails with NotConfigured without a network attempt.
type NewClientParams struct {
	APIKey       string
	BaseURL      string
	Model        string
	SystemPrompt string
}

// NewClient creates a new OpenAI-backed provider.
func NewClient(params NewClientParams) *Client {
	model := params.Model
	if model == "" {
		model = defaultModel
	}
	systemPrompt := params.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = ai.SystemPrompt
	}

	var client *openai.Client
	if params.APIKey != "" {
		options := []option.RequestOption{
			option.WithAPIKey(params.APIKey),
		}
		if params.BaseURL != "" {
			options = append(options, option.WithBaseURL(params.BaseURL))
		}
		c := openai.NewClient(options...)
		client = &c
	}

	return &Client{
		model:        model,
		systemPrompt: systemPrompt,
		client:       client,
	}
}

// Name implements ai.Provider.
func (c *Client) Name() string {
	return ProviderName
}

// Available implements ai.Provider.
func (c *Client) Available() bool {
	return c.client != nil
}

// Complete sends the message, preceded by the system prompt and the most
// recent turns of history, to the chat model and returns the generated
// text.
func (c *Client) Complete(
	ctx context.Context,
	message string,
	history []ai.ChatMessage,
) (string, error) {
	if c.client == nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.NotConfigured}
	}

	recent := ai.TruncateHistory(history, historyWindow)
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(recent)+2)
	msgs = append(msgs, openai.SystemMessage(c.systemPrompt))
	for _, turn := range recent {
		if turn.Role == ai.RoleAssistant {
			msgs = append(msgs, openai.AssistantMessage(turn.Content))
		} else {
			msgs = append(msgs, openai.UserMessage(turn.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(message))

	response, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		Messages:            msgs,
		MaxCompletionTokens: openai.Int(maxOutputTokens),
	})
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}
	if len(response.Choices) == 0 {
		return "", &ai.ProviderError{
			Provider: ProviderName,
			Kind:     ai.Upstream,
			Err:      errors.New("no choices in response"),
		}
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
