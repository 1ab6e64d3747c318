package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cultural-wonders/backend/pkg/ai"
)

const (
	// ProviderName identifies this adapter in status reports and logs.
	ProviderName = "huggingface"

	defaultModel   = "microsoft/DialoGPT-medium"
	defaultBaseURL = "https://api-inference.huggingface.co/models"

	// historyWindow is smaller than the primary provider's: the
	// conversational model works on a flat transcript, so the payload
	// grows linearly with every included turn.
	historyWindow = 5

	requestTimeout = 30 * time.Second
)

// Client is the secondary text-generation provider, backed by the Hugging
// Face inference API. The conversation is flattened into a
// "Human:"/"Assistant:" transcript and the generated continuation after
// the final "Assistant:" marker is returned.
//
// There is no Hugging Face SDK for Go, so the adapter speaks the inference
// API directly over a timeout-bounded HTTP client.
type Client struct {
	apiKey  string
	model   string
	baseURL string

	httpClient *http.Client
}

// NewClientParams defines the configuration for creating a Client.
// An empty APIKey produces an unavailable client.
type NewClientParams struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewClient creates a new Hugging Face-backed provider.
func NewClient(params NewClientParams) *Client {
	model := params.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := strings.TrimSuffix(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  params.APIKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Name implements ai.Provider.
func (c *Client) Name() string {
	return ProviderName
}

// Available implements ai.Provider.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
	PadTokenID  int     `json:"pad_token_id"`
}

type inferenceResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Complete implements ai.Provider.
func (c *Client) Complete(
	ctx context.Context,
	message string,
	history []ai.ChatMessage,
) (string, error) {
	if c.apiKey == "" {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.NotConfigured}
	}

	body, err := json.Marshal(inferenceRequest{
		Inputs: buildTranscript(message, history),
		Parameters: inferenceParameters{
			MaxLength:   200,
			Temperature: 0.7,
			DoSample:    true,
			PadTokenID:  50256,
		},
	})
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ai.ProviderError{
			Provider: ProviderName,
			Kind:     ai.Upstream,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}

	generated, err := extractGeneratedText(raw)
	if err != nil {
		return "", &ai.ProviderError{Provider: ProviderName, Kind: ai.Upstream, Err: err}
	}

	return generated, nil
}

// buildTranscript flattens the most recent history turns and the current
// message into the Human/Assistant dialogue format the model was trained
// on, ending with an open "Assistant:" for the model to continue.
func buildTranscript(message string, history []ai.ChatMessage) string {
	var b strings.Builder
	for _, turn := range ai.TruncateHistory(history, historyWindow) {
		speaker := "Assistant"
		if turn.Role == ai.RoleUser {
			speaker = "Human"
		}
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	b.WriteString("Human: ")
	b.WriteString(message)
	b.WriteString("\nAssistant:")
	return b.String()
}

// extractGeneratedText pulls the assistant's reply out of an inference
// response. The API returns either a single object or a one-element array
// carrying generated_text, which echoes the full transcript; only the text
// after the final "Assistant:" marker is the new reply.
func extractGeneratedText(raw []byte) (string, error) {
	var single inferenceResponse
	if err := json.Unmarshal(raw, &single); err != nil || single.GeneratedText == "" {
		var many []inferenceResponse
		if err := json.Unmarshal(raw, &many); err != nil || len(many) == 0 || many[0].GeneratedText == "" {
			return "", errors.New("no generated text in response")
		}
		single = many[0]
	}

	parts := strings.Split(single.GeneratedText, "Assistant:")
	return strings.TrimSpace(parts[len(parts)-1]), nil
}
