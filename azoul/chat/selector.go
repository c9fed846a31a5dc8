package chat

import (
	"math/rand/v2"
	"sort"
)

// ResponseBank holds the canned replies per language and category. It is
// never mutated after construction; accessors hand out copies.
type ResponseBank struct {
	entries map[string]map[Category][]string
}

// NewResponseBank deep-copies responses, normalising language codes.
func NewResponseBank(responses map[string]map[Category][]string) *ResponseBank {
	entries := make(map[string]map[Category][]string, len(responses))
	for lang, byCategory := range responses {
		code := NormalizeLanguage(lang)
		if entries[code] == nil {
			entries[code] = make(map[Category][]string, len(byCategory))
		}
		for category, candidates := range byCategory {
			entries[code][category] = append(entries[code][category], candidates...)
		}
	}
	return &ResponseBank{entries: entries}
}

// Candidates returns the replies stored for exactly (language, category).
func (b *ResponseBank) Candidates(language string, category Category) []string {
	src := b.entries[NormalizeLanguage(language)][category]
	return append([]string(nil), src...)
}

// Languages lists the languages present in the bank.
func (b *ResponseBank) Languages() []string {
	langs := make([]string, 0, len(b.entries))
	for lang := range b.entries {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Picker is the randomness source used to pick among candidates.
// *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Selector picks a reply for a category, falling back to English when the
// requested language has nothing for it.
type Selector struct {
	bank   *ResponseBank
	picker Picker
}

// NewSelector uses the process-wide random source when picker is nil.
func NewSelector(bank *ResponseBank, picker Picker) *Selector {
	if picker == nil {
		picker = globalPicker{}
	}
	return &Selector{bank: bank, picker: picker}
}

// Select returns a uniformly chosen candidate for (category, language).
// An empty candidate set in both the language and English is reported as a
// ConfigurationError wrapping ErrNoResponse.
func (s *Selector) Select(category Category, language string) (string, error) {
	lang := NormalizeLanguage(language)
	candidates := s.bank.entries[lang][category]
	if len(candidates) == 0 && lang != DefaultLanguage {
		candidates = s.bank.entries[DefaultLanguage][category]
	}
	if len(candidates) == 0 {
		return "", &ConfigurationError{Language: lang, Category: category, Err: ErrNoResponse}
	}
	return candidates[s.picker.IntN(len(candidates))], nil
}

// CandidatesFor returns the set Select draws from, fallback included.
func (s *Selector) CandidatesFor(category Category, language string) []string {
	if c := s.bank.Candidates(language, category); len(c) > 0 {
		return c
	}
	return s.bank.Candidates(DefaultLanguage, category)
}
