package chat

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed phrasebook.yaml
var defaultPhrasebook []byte

// Rule is one category's keyword list; rules are evaluated in file order.
type Rule struct {
	Category Category `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Phrasebook is the static configuration behind the assistant: keyword
// rules for the classifier and canned replies for the selector.
type Phrasebook struct {
	Rules     []Rule                           `yaml:"categories"`
	Responses map[string]map[Category][]string `yaml:"responses"`
}

// DefaultPhrasebook returns the phrasebook compiled into the binary.
func DefaultPhrasebook() (*Phrasebook, error) {
	return ParsePhrasebook(bytes.NewReader(defaultPhrasebook))
}

// LoadPhrasebook reads a phrasebook from path, or the embedded one when path is empty.
func LoadPhrasebook(path string) (*Phrasebook, error) {
	if path == "" {
		return DefaultPhrasebook()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePhrasebook(f)
}

// ParsePhrasebook decodes and validates a YAML phrasebook.
func ParsePhrasebook(r io.Reader) (*Phrasebook, error) {
	var pb Phrasebook
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhrasebook, err)
	}
	if err := pb.normalize(); err != nil {
		return nil, err
	}
	return &pb, nil
}

func (pb *Phrasebook) normalize() error {
	seen := make(map[Category]bool, len(pb.Rules))
	for i, rule := range pb.Rules {
		if !rule.Category.Valid() || rule.Category == General {
			return fmt.Errorf("%w: rule %d has unusable category %q", ErrInvalidPhrasebook, i, rule.Category)
		}
		if seen[rule.Category] {
			return fmt.Errorf("%w: category %q declared twice", ErrInvalidPhrasebook, rule.Category)
		}
		seen[rule.Category] = true

		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			return fmt.Errorf("%w: category %q has no keywords", ErrInvalidPhrasebook, rule.Category)
		}
		pb.Rules[i].Keywords = keywords
	}

	responses := make(map[string]map[Category][]string, len(pb.Responses))
	for lang, byCategory := range pb.Responses {
		code := NormalizeLanguage(lang)
		if responses[code] == nil {
			responses[code] = make(map[Category][]string)
		}
		for category, candidates := range byCategory {
			if !category.Valid() {
				return fmt.Errorf("%w: %s responses use unknown category %q", ErrInvalidPhrasebook, lang, category)
			}
			for _, c := range candidates {
				if c = strings.TrimSpace(c); c != "" {
					responses[code][category] = append(responses[code][category], c)
				}
			}
		}
	}
	pb.Responses = responses

	// every category the classifier can produce must be answerable in English
	for _, category := range Categories() {
		if len(responses[DefaultLanguage][category]) == 0 {
			return &ConfigurationError{Language: DefaultLanguage, Category: category, Err: ErrNoResponse}
		}
	}
	return nil
}
