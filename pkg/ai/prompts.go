package ai

import (
	"fmt"
	"strings"
)

// SystemPrompt is prepended to every generic chat completion.
const SystemPrompt = `You are a knowledgeable cultural heritage guide specializing in Indian culture, traditions, arts, crafts, festivals, and historical monuments.
Keep answers short, friendly, and informative (2-3 paragraphs).`

// HintPrompt instructs the model to help with a quiz question without
// revealing the answer.
const HintPrompt = `You are a quiz assistant for Indian culture. Give a small hint, NOT the answer. Max 2 lines.`

// StorytellingPrompt instructs the model to narrate a cultural story.
const StorytellingPrompt = `You are a storyteller for Indian culture. Create an engaging cultural story in 3-4 paragraphs.`

// TravelGuidePrompt instructs the model to plan a cultural trip.
const TravelGuidePrompt = `You are a travel guide for Indian cultural tourism. Provide a day-wise (3-5 days) itinerary.`

// HistoricalPerspectivePrompt instructs the model to describe a tradition as
// it would have been experienced two centuries ago.
const HistoricalPerspectivePrompt = `You are describing Indian culture from 200 years ago. Keep it historical and immersive.`

// SearchPrompt instructs the model to act as a search assistant.
const SearchPrompt = `You are a cultural search assistant. Provide relevant Indian cultural suggestions.`

// QuizHintPrompt wraps a quiz question and its options into a hint request.
func QuizHintPrompt(question string, options []string) string {
	return fmt.Sprintf("%s\n\nQuestion: %s\nOptions: %s", HintPrompt, question, strings.Join(options, ", "))
}

// StoryPrompt wraps a topic and optional context into a storytelling request.
func StoryPrompt(topic, context string) string {
	return fmt.Sprintf("%s\n\nTopic: %s\nContext: %s", StorytellingPrompt, topic, context)
}

// TravelItineraryPrompt wraps a state name and trip duration into a
// travel-planning request.
func TravelItineraryPrompt(state string, durationDays int) string {
	return fmt.Sprintf("%s\n\nCreate a %d-day plan for %s", TravelGuidePrompt, durationDays, state)
}

// PerspectivePrompt wraps a tradition and optional context into a
// historical-narration request.
func PerspectivePrompt(tradition, context string) string {
	return fmt.Sprintf("%s\n\nTradition: %s\nContext: %s", HistoricalPerspectivePrompt, tradition, context)
}

// CulturalSearchPrompt wraps a free-text query into a search-assistance
// request.
func CulturalSearchPrompt(query string) string {
	return fmt.Sprintf("%s\n\nUser Query: %s", SearchPrompt, query)
}
