package ai

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTruncateHistory(t *testing.T) {
	t.Parallel()

	history := []ChatMessage{
		{Role: RoleUser, Content: "one"},
		{Role: RoleAssistant, Content: "two"},
		{Role: RoleUser, Content: "three"},
		{Role: RoleAssistant, Content: "four"},
	}

	tests := []struct {
		name    string
		history []ChatMessage
		n       int
		want    []ChatMessage
	}{
		{
			name:    "shorter than window",
			history: history,
			n:       10,
			want:    history,
		},
		{
			name:    "exactly the window",
			history: history,
			n:       4,
			want:    history,
		},
		{
			name:    "keeps the most recent turns",
			history: history,
			n:       2,
			want:    history[2:],
		},
		{
			name:    "zero window keeps everything",
			history: history,
			n:       0,
			want:    history,
		},
		{
			name:    "nil history",
			history: nil,
			n:       5,
			want:    nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateHistory(tc.history, tc.n)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("TruncateHistory() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProviderError(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")
	err := &ProviderError{Provider: "openai", Kind: Upstream, Err: inner}

	if got := err.Error(); got != "openai: upstream: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Fatal("errors.Is does not see the wrapped error")
	}

	bare := &ProviderError{Provider: "huggingface", Kind: NotConfigured}
	if got := bare.Error(); got != "huggingface: not_configured" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestPromptBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "quiz hint",
			prompt: QuizHintPrompt("Which dance is from Kerala?", []string{"Kathakali", "Garba", "Bhangra"}),
			want:   []string{HintPrompt, "Question: Which dance is from Kerala?", "Options: Kathakali, Garba, Bhangra"},
		},
		{
			name:   "story",
			prompt: StoryPrompt("Diwali", "festival of lights"),
			want:   []string{StorytellingPrompt, "Topic: Diwali", "Context: festival of lights"},
		},
		{
			name:   "travel itinerary",
			prompt: TravelItineraryPrompt("Rajasthan", 4),
			want:   []string{TravelGuidePrompt, "Create a 4-day plan for Rajasthan"},
		},
		{
			name:   "historical perspective",
			prompt: PerspectivePrompt("Pongal", "harvest festival"),
			want:   []string{HistoricalPerspectivePrompt, "Tradition: Pongal", "Context: harvest festival"},
		},
		{
			name:   "cultural search",
			prompt: CulturalSearchPrompt("temples of Odisha"),
			want:   []string{SearchPrompt, "User Query: temples of Odisha"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for _, fragment := range tc.want {
				if !strings.Contains(tc.prompt, fragment) {
					t.Fatalf("prompt %q missing %q", tc.prompt, fragment)
				}
			}
		})
	}
}
