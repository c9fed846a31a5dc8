package chat

import (
	"fmt"
	"regexp"
	"strings"
)

type compiledRule struct {
	category Category
	pattern  *regexp.Regexp
}

// Classifier maps free text to a Category by keyword matching.
//
// Keywords are plain substrings (no word boundaries), so "fes" also matches
// "festival". The lists are Latin-script only: Arabic or Tifinagh input never
// matches and always lands in General.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles one alternation per rule, keeping rule order as
// the priority order. Blank keywords are dropped; a rule left without any
// is rejected, since an empty alternative would match every input.
func NewClassifier(rules []Rule) (*Classifier, error) {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for i, rule := range rules {
		quoted := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				quoted = append(quoted, regexp.QuoteMeta(kw))
			}
		}
		if len(quoted) == 0 {
			return nil, fmt.Errorf("%w: rule %d (%s) has no keywords", ErrInvalidPhrasebook, i, rule.Category)
		}
		pattern, err := regexp.Compile("(?:" + strings.Join(quoted, "|") + ")")
		if err != nil {
			return nil, err
		}
		c.rules = append(c.rules, compiledRule{category: rule.Category, pattern: pattern})
	}
	return c, nil
}

// Classify returns the first category whose keywords occur in text, or General.
func (c *Classifier) Classify(text string) Category {
	normalized := strings.ToLower(text)
	if normalized == "" {
		return General
	}
	for _, rule := range c.rules {
		if rule.pattern.MatchString(normalized) {
			return rule.category
		}
	}
	return General
}

// Order returns the categories in the order they are tested.
func (c *Classifier) Order() []Category {
	order := make([]Category, len(c.rules))
	for i, rule := range c.rules {
		order[i] = rule.category
	}
	return order
}
