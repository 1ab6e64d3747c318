package states

import "strings"

// State is one static geographic entry with a short cultural introduction.
type State struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Intro string `json:"intro"`
}

// Index is an immutable, ordered list of states.
type Index struct {
	states []State
}

// New creates an index from the given states. The slice is not copied;
// callers must not mutate it afterwards.
func New(states []State) *Index {
	return &Index{states: states}
}

// Default returns an index backed by the built-in list of Indian states.
func Default() *Index {
	return New(indianStates)
}

// Len returns the number of states in the index.
func (x *Index) Len() int {
	return len(x.states)
}

// All returns the full list of states in fixed order.
func (x *Index) All() []State {
	return x.states
}

// Match returns the first state whose lowercased name appears as a
// substring of the query, or nil when none does. First match wins in the
// index's fixed order; a state name embedded in a longer word or in
// another state's name will still match. Known limitation, kept for
// compatibility with the frontend's expectations.
func (x *Index) Match(query string) *State {
	normalized := strings.ToLower(query)
	for i := range x.states {
		if strings.Contains(normalized, strings.ToLower(x.states[i].Name)) {
			return &x.states[i]
		}
	}
	return nil
}

// BySlug returns the state with the given slug, or nil when unknown.
func (x *Index) BySlug(slug string) *State {
	for i := range x.states {
		if x.states[i].Slug == slug {
			return &x.states[i]
		}
	}
	return nil
}
