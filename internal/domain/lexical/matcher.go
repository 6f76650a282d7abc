// Package lexical implements fuzzy keyword matching between free-text
// goal/benefit/ingredient strings using a curated synonym table.
package lexical

import "strings"

// Strength classifies how strongly a term corresponds to a candidate string.
type Strength int

// Match strengths, ordered weakest to strongest.
const (
	None Strength = iota
	Partial
	Exact
)

// minPrefixLen is the shortest variant prefix considered for a partial
// match. Prefixes are variant length minus 2, but never shorter than this,
// which tolerates stemming differences ("immune" vs "immunity") without
// matching on noise.
const minPrefixLen = 4

// String returns the strength name for logs and tests.
func (s Strength) String() string {
	switch s {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	default:
		return "none"
	}
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithSynonyms sets the synonym table mapping a recognized keyword to its
// lowercase variants. The map is used as-is and must not be mutated after.
func WithSynonyms(synonyms map[string][]string) Option {
	return func(m *Matcher) {
		if synonyms != nil {
			m.synonyms = synonyms
		}
	}
}

// Matcher resolves term/candidate matches through a synonym table. It is
// stateless after construction and safe for concurrent use.
type Matcher struct {
	synonyms map[string][]string
}

// New creates a Matcher with configuration options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		synonyms: map[string][]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Matches reports whether term corresponds to candidateText at any strength.
func (m *Matcher) Matches(term, candidateText string) bool {
	return m.strength(term, candidateText) != None
}

// BestMatchStrength scans candidates in order and returns the strongest
// strength found for term. An exact hit short-circuits the scan.
func (m *Matcher) BestMatchStrength(term string, candidates []string) Strength {
	best := None
	for _, c := range candidates {
		switch m.strength(term, c) {
		case Exact:
			return Exact
		case Partial:
			best = Partial
		case None:
		}
	}
	return best
}

// strength classifies a single term/candidate pair. A variant substring hit
// is exact; a truncated variant prefix hit is partial. Terms absent from the
// synonym table fall back to the raw lowercased term as the sole variant.
func (m *Matcher) strength(term, candidateText string) Strength {
	text := strings.ToLower(candidateText)
	if text == "" {
		return None
	}

	for _, variant := range m.variants(term) {
		if variant == "" {
			continue
		}
		if strings.Contains(text, variant) {
			return Exact
		}
	}
	for _, variant := range m.variants(term) {
		prefixLen := len(variant) - 2
		if prefixLen < minPrefixLen {
			prefixLen = minPrefixLen
		}
		if prefixLen >= len(variant) {
			continue // prefix would not truncate anything
		}
		if strings.Contains(text, variant[:prefixLen]) {
			return Partial
		}
	}
	return None
}

// variants returns the lowercase variant list for term.
func (m *Matcher) variants(term string) []string {
	key := strings.ToLower(strings.TrimSpace(term))
	if vs, ok := m.synonyms[key]; ok {
		return vs
	}
	return []string{key}
}
