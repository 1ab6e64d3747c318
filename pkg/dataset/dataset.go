package dataset

import (
	"math/rand/v2"
	"strings"
)

// Fact is one curated question/answer entry in the cultural knowledge base.
type Fact struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// Collection is an immutable, ordered set of facts. All lookups scan in
// insertion order, so the first matching fact wins.
type Collection struct {
	facts []Fact
}

// New creates a collection from the given facts. The slice is not copied;
// callers must not mutate it afterwards.
func New(facts []Fact) *Collection {
	return &Collection{facts: facts}
}

// Default returns a collection backed by the built-in cultural facts.
func Default() *Collection {
	return New(culturalFacts)
}

// Len returns the number of facts in the collection.
func (c *Collection) Len() int {
	return len(c.facts)
}

// Find returns the best-matching fact for a free-text query, or nil when
// nothing matches. Three strategies are tried in priority order:
//
//  1. Exact match on the normalized (trimmed, lowercased) question.
//  2. Keyword match: a fact matches when at least half its keywords
//     (rounded up) have a bidirectional-containment hit against the query
//     tokens. Facts without keywords never match at this stage.
//  3. Partial match: the normalized question contains the query, or the
//     query contains the question.
//
// An empty result is not an error; callers fall through to other sources.
func (c *Collection) Find(query string) *Fact {
	normalized := strings.ToLower(strings.TrimSpace(query))

	for i := range c.facts {
		if strings.ToLower(c.facts[i].Question) == normalized {
			return &c.facts[i]
		}
	}

	tokens := strings.Fields(normalized)
	for i := range c.facts {
		fact := &c.facts[i]
		if len(fact.Keywords) == 0 {
			continue
		}

		matched := 0
		for _, keyword := range fact.Keywords {
			for _, token := range tokens {
				if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
					matched++
					break
				}
			}
		}

		// ceil(len(keywords) * 0.5)
		threshold := (len(fact.Keywords) + 1) / 2
		if matched >= threshold {
			return fact
		}
	}

	for i := range c.facts {
		question := strings.ToLower(c.facts[i].Question)
		if strings.Contains(question, normalized) || strings.Contains(normalized, question) {
			return &c.facts[i]
		}
	}

	return nil
}

// Random returns up to count facts drawn from a fresh uniform shuffle of the
// collection. It never returns more facts than the collection holds.
func (c *Collection) Random(count int) []Fact {
	if count < 0 {
		count = 0
	}
	if count > len(c.facts) {
		count = len(c.facts)
	}

	shuffled := make([]Fact, len(c.facts))
	copy(shuffled, c.facts)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count]
}

// ByCategory returns all facts with the given category, in insertion order.
// Unknown categories yield an empty slice.
func (c *Collection) ByCategory(category string) []Fact {
	result := make([]Fact, 0)
	for _, fact := range c.facts {
		if fact.Category == category {
			result = append(result, fact)
		}
	}
	return result
}

// Categories returns the distinct categories present in the collection, in
// first-seen order.
func (c *Collection) Categories() []string {
	seen := make(map[string]struct{}, len(c.facts))
	categories := make([]string, 0)
	for _, fact := range c.facts {
		if _, exists := seen[fact.Category]; exists {
			continue
		}
		seen[fact.Category] = struct{}{}
		categories = append(categories, fact.Category)
	}
	return categories
}
