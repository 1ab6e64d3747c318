package ai

import (
	"context"
	"fmt"
)

// ChatMessage represents a single message in a chat conversation.
//
// Role must be one of:
//   - "user"      → a user-provided message
//   - "assistant" → a message from the AI assistant
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrorKind classifies why a provider call failed.
type ErrorKind int

const (
	// NotConfigured means the provider has no usable credential.
	NotConfigured ErrorKind = iota
	// Upstream means the provider call itself failed: network error,
	// timeout, auth rejection, rate limiting, or a malformed response.
	Upstream
)

func (k ErrorKind) String() string {
	switch k {
	case NotConfigured:
		return "not_configured"
	case Upstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// ProviderError is returned by Provider.Complete when a call fails.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Provider is implemented by each external text-generation backend.
// Implementations are substitutable: the resolution pipeline depends only
// on this contract, never on a concrete provider.
type Provider interface {
	// Name returns a stable provider identifier, e.g. "openai".
	Name() string

	// Available reports whether the provider has usable credentials.
	// Callers check this before Complete to avoid pointless network
	// attempts when a credential is known to be absent.
	Available() bool

	// Complete sends message plus a bounded slice of prior conversation
	// turns to the provider and returns the generated text. Failures are
	// reported as *ProviderError.
	Complete(ctx context.Context, message string, history []ChatMessage) (string, error)
}

// Status describes one provider's availability, derived from its
// configuration at call time.
type Status struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// TruncateHistory returns at most the last n turns of history. The returned
// slice aliases the input; callers must treat it as read-only.
func TruncateHistory(history []ChatMessage, n int) []ChatMessage {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
