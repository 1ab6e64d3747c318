package resolve

import (
	"context"
	"strings"
	"testing"

	"github.com/cultural-wonders/backend/pkg/ai"
	"github.com/cultural-wonders/backend/pkg/dataset"
	"github.com/cultural-wonders/backend/pkg/states"
)

type stubProvider struct {
	name        string
	available   bool
	text        string
	err         error
	calls       int
	lastMessage string
}

func (s *stubProvider) Name() string    { return s.name }
func (s *stubProvider) Available() bool { return s.available }

func (s *stubProvider) Complete(_ context.Context, message string, _ []ai.ChatMessage) (string, error) {
	s.calls++
	s.lastMessage = message
	return s.text, s.err
}

func TestAnswerDatasetStage(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub", available: true, text: "from provider"}
	pipeline := NewPipeline(NewPipelineParams{Providers: []ai.Provider{provider}})

	answer, stage := pipeline.Answer(context.Background(), "What is Kathakali?", nil)
	if stage != StageDataset {
		t.Fatalf("stage = %v, want %v", stage, StageDataset)
	}
	if !strings.Contains(answer, "Kathakali") {
		t.Fatalf("answer = %q, want the curated Kathakali answer", answer)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times for a dataset hit", provider.calls)
	}
}

func TestAnswerRegionStage(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub", available: true, text: "from provider"}
	pipeline := NewPipeline(NewPipelineParams{Providers: []ai.Provider{provider}})

	answer, stage := pipeline.Answer(context.Background(), "tell me about kerala", nil)
	if stage != StageRegion {
		t.Fatalf("stage = %v, want %v", stage, StageRegion)
	}
	if !strings.HasPrefix(answer, "Here's some information about Kerala:\n") {
		t.Fatalf("answer = %q, want the Kerala template", answer)
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times for a region hit", provider.calls)
	}
}

func TestAnswerProviderStage(t *testing.T) {
	t.Parallel()

	const query = "how to bake sourdough bread"

	primary := &stubProvider{name: "primary", available: true, text: "provider answer"}
	secondary := &stubProvider{name: "secondary", available: true, text: "unused"}
	pipeline := NewPipeline(NewPipelineParams{Providers: []ai.Provider{primary, secondary}})

	answer, stage := pipeline.Answer(context.Background(), query, nil)
	if stage != StageProvider {
		t.Fatalf("stage = %v, want %v", stage, StageProvider)
	}
	if answer != "provider answer" {
		t.Fatalf("answer = %q, want the primary provider's text", answer)
	}
	if primary.lastMessage != query {
		t.Fatalf("provider received %q, want %q", primary.lastMessage, query)
	}
	if secondary.calls != 0 {
		t.Fatalf("secondary called %d times after primary succeeded", secondary.calls)
	}
}

func TestAnswerProviderFallthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		providers []ai.Provider
	}{
		{
			name: "primary fails upstream",
			providers: []ai.Provider{
				&stubProvider{name: "primary", available: true, err: &ai.ProviderError{
					Provider: "primary",
					Kind:     ai.Upstream,
					Err:      context.DeadlineExceeded,
				}},
				&stubProvider{name: "secondary", available: true, text: "second answer"},
			},
		},
		{
			name: "primary not configured",
			providers: []ai.Provider{
				&stubProvider{name: "primary", available: false, text: "never used"},
				&stubProvider{name: "secondary", available: true, text: "second answer"},
			},
		},
		{
			name: "primary returns blank text",
			providers: []ai.Provider{
				&stubProvider{name: "primary", available: true, text: "   \n"},
				&stubProvider{name: "secondary", available: true, text: "second answer"},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			pipeline := NewPipeline(NewPipelineParams{Providers: tc.providers})
			answer, stage := pipeline.Answer(context.Background(), "quantum computing speedup", nil)
			if stage != StageProvider {
				t.Fatalf("stage = %v, want %v", stage, StageProvider)
			}
			if answer != "second answer" {
				t.Fatalf("answer = %q, want the secondary provider's text", answer)
			}
		})
	}
}

func TestAnswerFallbackStage(t *testing.T) {
	t.Parallel()

	t.Run("no providers", func(t *testing.T) {
		pipeline := NewPipeline(NewPipelineParams{})
		answer, stage := pipeline.Answer(context.Background(), "quantum computing speedup", nil)
		if stage != StageFallback {
			t.Fatalf("stage = %v, want %v", stage, StageFallback)
		}
		if answer != DefaultFallbackMessage {
			t.Fatalf("answer = %q, want the default fallback message", answer)
		}
	})

	t.Run("every provider fails", func(t *testing.T) {
		pipeline := NewPipeline(NewPipelineParams{
			FallbackMessage: "custom fallback",
			Providers: []ai.Provider{
				&stubProvider{name: "primary", available: false},
				&stubProvider{name: "secondary", available: true, err: &ai.ProviderError{
					Provider: "secondary",
					Kind:     ai.Upstream,
					Err:      context.DeadlineExceeded,
				}},
			},
		})
		answer, stage := pipeline.Answer(context.Background(), "quantum computing speedup", nil)
		if stage != StageFallback {
			t.Fatalf("stage = %v, want %v", stage, StageFallback)
		}
		if answer != "custom fallback" {
			t.Fatalf("answer = %q, want the custom fallback message", answer)
		}
	})
}

func TestAnswerNeverEmpty(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(NewPipelineParams{})
	for _, query := range []string{"", "   ", "completely unrelated gibberish xyzzy"} {
		answer, _ := pipeline.Answer(context.Background(), query, nil)
		if strings.TrimSpace(answer) == "" {
			t.Fatalf("Answer(%q) returned an empty answer", query)
		}
	}
}

func TestAnswerDeterministicForLocalStages(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(NewPipelineParams{})

	first, firstStage := pipeline.Answer(context.Background(), "What is Kathakali?", nil)
	for i := 0; i < 3; i++ {
		again, againStage := pipeline.Answer(context.Background(), "What is Kathakali?", nil)
		if again != first || againStage != firstStage {
			t.Fatalf("repeated Answer differed: %q/%v vs %q/%v", again, againStage, first, firstStage)
		}
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("primary is first available", func(t *testing.T) {
		pipeline := NewPipeline(NewPipelineParams{Providers: []ai.Provider{
			&stubProvider{name: "openai", available: false},
			&stubProvider{name: "huggingface", available: true},
			&stubProvider{name: "ollama", available: true},
		}})

		status := pipeline.Status()
		if status.Primary != "huggingface" {
			t.Fatalf("Primary = %q, want huggingface", status.Primary)
		}
		if len(status.Providers) != 3 {
			t.Fatalf("Providers has %d entries, want 3", len(status.Providers))
		}
		if status.Providers[0].Available || !status.Providers[1].Available {
			t.Fatalf("availability flags wrong: %+v", status.Providers)
		}
	})

	t.Run("none available", func(t *testing.T) {
		pipeline := NewPipeline(NewPipelineParams{Providers: []ai.Provider{
			&stubProvider{name: "openai", available: false},
		}})
		if got := pipeline.Status().Primary; got != "none" {
			t.Fatalf("Primary = %q, want none", got)
		}
	})
}

func TestFeaturePromptsReachProvider(t *testing.T) {
	t.Parallel()

	// Empty local sources so the composed prompts always reach the provider.
	newPipeline := func(provider ai.Provider) *Pipeline {
		return NewPipeline(NewPipelineParams{
			Facts:     dataset.New(nil),
			Regions:   states.New(nil),
			Providers: []ai.Provider{provider},
		})
	}

	tests := []struct {
		name string
		call func(p *Pipeline) string
		want []string
	}{
		{
			name: "quiz hint",
			call: func(p *Pipeline) string {
				return p.QuizHint(context.Background(), "Which dance is from Kerala?", []string{"Kathakali", "Garba"})
			},
			want: []string{"Which dance is from Kerala?", "Kathakali, Garba"},
		},
		{
			name: "story",
			call: func(p *Pipeline) string {
				return p.Story(context.Background(), "Diwali", "festival of lights")
			},
			want: []string{"Diwali", "festival of lights"},
		},
		{
			name: "travel itinerary",
			call: func(p *Pipeline) string {
				return p.TravelItinerary(context.Background(), "Rajasthan", 3)
			},
			want: []string{"3-day plan", "Rajasthan"},
		},
		{
			name: "historical perspective",
			call: func(p *Pipeline) string {
				return p.HistoricalPerspective(context.Background(), "Pongal", "harvest")
			},
			want: []string{"Pongal", "harvest"},
		},
		{
			name: "search",
			call: func(p *Pipeline) string {
				return p.Search(context.Background(), "temples of Odisha")
			},
			want: []string{"temples of Odisha"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{name: "stub", available: true, text: "generated"}
			pipeline := newPipeline(provider)

			if got := tc.call(pipeline); got != "generated" {
				t.Fatalf("answer = %q, want the provider's text", got)
			}
			if provider.calls != 1 {
				t.Fatalf("provider called %d times, want 1", provider.calls)
			}
			for _, fragment := range tc.want {
				if !strings.Contains(provider.lastMessage, fragment) {
					t.Fatalf("composed prompt %q missing %q", provider.lastMessage, fragment)
				}
			}
		})
	}
}
