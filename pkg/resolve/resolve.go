package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/cultural-wonders/backend/pkg/ai"
	"github.com/cultural-wonders/backend/pkg/dataset"
	"github.com/cultural-wonders/backend/pkg/logger"
	"github.com/cultural-wonders/backend/pkg/states"
)

// Stage identifies which step of the fallback chain produced an answer.
type Stage int

const (
	// StageDataset means the curated knowledge base answered the query.
	StageDataset Stage = iota
	// StageRegion means the state index answered the query.
	StageRegion
	// StageProvider means an external AI provider answered the query.
	StageProvider
	// StageFallback means every other stage failed or was skipped.
	StageFallback
)

func (s Stage) String() string {
	switch s {
	case StageDataset:
		return "dataset"
	case StageRegion:
		return "region"
	case StageProvider:
		return "provider"
	case StageFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// DefaultFallbackMessage is returned when no local source matches and no
// provider is configured or reachable.
const DefaultFallbackMessage = `AI service not configured.

Please add your OpenAI API key in:
.env

Example:
OPENAI_API_KEY=sk-xxxxxxx

Then restart the server.

Try asking:
"Tell me about Kathakali" or "Famous monuments of India"`

// Pipeline resolves a user message to an answer through an ordered
// fallback chain: curated dataset, state index, each configured provider
// in turn, and finally a fixed guidance message.
//
// The order is load-bearing: the free in-memory sources are always
// consulted before any paid network call, and a query they can answer
// never leaves the process. Answer always returns a non-empty string and
// never an error; provider failures are absorbed here.
//
// A Pipeline holds no per-request state, so one instance serves all
// requests concurrently.
type Pipeline struct {
	facts     *dataset.Collection
	regions   *states.Index
	providers []ai.Provider
	fallback  string
}

// NewPipelineParams defines the collaborators of a Pipeline. Facts and
// Regions default to the built-in collections, FallbackMessage to
// DefaultFallbackMessage. Providers are attempted in slice order.
type NewPipelineParams struct {
	Facts           *dataset.Collection
	Regions         *states.Index
	Providers       []ai.Provider
	FallbackMessage string
}

// NewPipeline creates a resolution pipeline.
func NewPipeline(params NewPipelineParams) *Pipeline {
	facts := params.Facts
	if facts == nil {
		facts = dataset.Default()
	}
	regions := params.Regions
	if regions == nil {
		regions = states.Default()
	}
	fallback := params.FallbackMessage
	if fallback == "" {
		fallback = DefaultFallbackMessage
	}

	return &Pipeline{
		facts:     facts,
		regions:   regions,
		providers: params.Providers,
		fallback:  fallback,
	}
}

// Answer resolves message to an answer string and reports the stage that
// produced it. History is read-only input owned by the caller; providers
// receive a truncated view of it.
func (p *Pipeline) Answer(ctx context.Context, message string, history []ai.ChatMessage) (string, Stage) {
	if fact := p.facts.Find(message); fact != nil {
		logger.Debug("Answered from cultural dataset", "question", fact.Question)
		return fact.Answer, StageDataset
	}

	if state := p.regions.Match(message); state != nil {
		logger.Debug("Answered from state index", "state", state.Name)
		return fmt.Sprintf("Here's some information about %s:\n%s", state.Name, state.Intro), StageRegion
	}

	for _, provider := range p.providers {
		if !provider.Available() {
			logger.Debug("Skipping unconfigured provider", "provider", provider.Name())
			continue
		}

		text, err := provider.Complete(ctx, message, history)
		if err != nil {
			logger.Warn("Provider failed, falling through", "provider", provider.Name(), "err", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			logger.Warn("Provider returned empty text, falling through", "provider", provider.Name())
			continue
		}

		logger.Debug("Answered by provider", "provider", provider.Name())
		return text, StageProvider
	}

	logger.Debug("No stage produced an answer, using fallback message")
	return p.fallback, StageFallback
}

// ServiceStatus reports provider availability for the status endpoint.
// Primary names the first available provider, or "none".
type ServiceStatus struct {
	Providers []ai.Status `json:"providers"`
	Primary   string      `json:"primary"`
}

// Status derives the current provider availability. It is recomputed per
// call; availability is cheap to re-derive and configuration does not
// change while the process runs.
func (p *Pipeline) Status() ServiceStatus {
	status := ServiceStatus{
		Providers: make([]ai.Status, 0, len(p.providers)),
		Primary:   "none",
	}
	for _, provider := range p.providers {
		available := provider.Available()
		status.Providers = append(status.Providers, ai.Status{
			Name:      provider.Name(),
			Available: available,
		})
		if available && status.Primary == "none" {
			status.Primary = provider.Name()
		}
	}
	return status
}

// QuizHint answers a quiz-hint request for the given question and options.
func (p *Pipeline) QuizHint(ctx context.Context, question string, options []string) string {
	answer, _ := p.Answer(ctx, ai.QuizHintPrompt(question, options), nil)
	return answer
}

// Story generates a cultural story about topic.
func (p *Pipeline) Story(ctx context.Context, topic, background string) string {
	answer, _ := p.Answer(ctx, ai.StoryPrompt(topic, background), nil)
	return answer
}

// TravelItinerary plans a cultural trip through state over durationDays.
func (p *Pipeline) TravelItinerary(ctx context.Context, state string, durationDays int) string {
	answer, _ := p.Answer(ctx, ai.TravelItineraryPrompt(state, durationDays), nil)
	return answer
}

// HistoricalPerspective narrates tradition as experienced two centuries
// ago.
func (p *Pipeline) HistoricalPerspective(ctx context.Context, tradition, background string) string {
	answer, _ := p.Answer(ctx, ai.PerspectivePrompt(tradition, background), nil)
	return answer
}

// Search answers a free-text cultural search query.
func (p *Pipeline) Search(ctx context.Context, query string) string {
	answer, _ := p.Answer(ctx, ai.CulturalSearchPrompt(query), nil)
	return answer
}
