package ollama

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/pkoukk/tiktoken-go"
	"golang.org/x/sync/semaphore"

	"github.com/cultural-wonders/backend/pkg/ai"
)

const (
	// ProviderName identifies this adapter in status reports and logs.
	ProviderName = "ollama"

	defaultModel = "llama3.2"

	historyWindow = 10

	// numCtxThreshold is the model's default context window; num_ctx is
	// only raised when the prompt would not fit in it.
	numCtxThreshold = 4096
)

// Client is an optional locally-hosted provider backed by an Ollama
// server. It lets the chatbot answer without any external AI credentials
// when a local model is running.
//
// A Client should be created using NewClient.
type Client struct {
	model        string
	systemPrompt string

	reqLock *semaphore.Weighted

	Client *api.Client
}

// NewClientParams contains configuration options for creating a Client.
// An empty BaseURL produces an unavailable client.
type NewClientParams struct {
	BaseURL string
	APIKey  string
	Model   string

	SystemPrompt string

	MaxConcurrentRequests int64
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so original request isn't modified
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		// don't overwrite if already set
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewClient creates a new Ollama-backed provider talking to the server at
// BaseURL.
func NewClient(params NewClientParams) (*Client, error) {
	model := params.Model
	if model == "" {
		model = defaultModel
	}
	systemPrompt := params.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = ai.SystemPrompt
	}
	maxConcurrent := params.MaxConcurrentRequests
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	client := &Client{
		model:        model,
		systemPrompt: systemPrompt,
		reqLock:      semaphore.NewWeighted(maxConcurrent),
	}

	if params.BaseURL == "" {
		return client, nil
	}

	u, err := url.Parse(params.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := http.DefaultClient
	if params.APIKey != "" {
		httpClient = &http.Client{
			Transport: &headerTransport{
				headers: map[string]string{
					"Authorization": "Bearer " + params.APIKey,
				},
				rt: http.DefaultTransport,
			},
		}
	}

	client.Client = api.NewClient(u, httpClient)
	return client, nil
}

// Name implements ai.Provider.
func (c *Client) Name() string {
	return ProviderName
}

// Available implements ai.Provider.
func (c *Client) Available() bool {
	return c.Client != nil
}

// Complete implements ai.Provider.
func (c *Client) Complete(
	ctx context.Context,
	message string,
	history []ai.ChatMessage,
) (string, error) {
	if c.Client == nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.NotConfigured}
	}

	if err := c.reqLock.Acquire(ctx, 1); err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}
	defer c.reqLock.Release(1)

	recent := ai.TruncateHistory(history, historyWindow)
	msgs := make([]api.Message, 0, len(recent)+2)
	msgs = append(msgs, api.Message{Role: "system", Content: c.systemPrompt})
	for _, turn := range recent {
		msgs = append(msgs, api.Message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, api.Message{Role: "user", Content: message})

	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: msgs,
		Stream:   &stream,
		Options:  map[string]any{"temperature": 0.3},
	}

	// Grow the context window when the prompt would overflow the default.
	tokens, err := promptTokens(msgs)
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}
	if tokens > numCtxThreshold {
		req.Options["num_ctx"] = tokens
	}

	var final api.ChatResponse
	if err := c.Client.Chat(ctx, req, func(cr api.ChatResponse) error {
		final.Message.Content += cr.Message.Content
		if cr.Done {
			final.Done = true
		}
		return nil
	}); err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}

	return strings.TrimSpace(final.Message.Content), nil
}

func promptTokens(msgs []api.Message) (int, error) {
	enc, err := tiktoken.GetEncoding("o200k_base")
	if err != nil {
		return 0, err
	}

	// Headroom for the reply and per-message framing.
	tokens := 200
	for _, msg := range msgs {
		tokens += len(enc.Encode(msg.Content, nil, nil))
	}
	return tokens, nil
}
