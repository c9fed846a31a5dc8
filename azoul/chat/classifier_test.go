package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	pb, err := DefaultPhrasebook()
	require.NoError(t, err)
	c, err := NewClassifier(pb.Rules)
	require.NoError(t, err)
	return c
}

func TestClassify(t *testing.T) {
	c := defaultClassifier(t)

	cases := []struct {
		input string
		want  Category
	}{
		{"Tell me about the desert", Destinations},
		{"What language do they speak?", Culture},
		{"Tell me about Berber music", Culture},
		{"Where can I try a tagine?", Food},
		{"Do I need a visa?", Travel},
		{"Can you recommend a riad?", Accommodation},
		{"I'd like to ride a camel", Activities},
		{"Hello there", General},
		{"", General},
		{"   ", General},
		{"MARRAKECH!!!", Destinations},
		{"مرحبا، أين الصحراء؟", General},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.input))
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := defaultClassifier(t)

	// both food and destinations keywords are present
	assert.Equal(t, Destinations, c.Classify("What food is there in the desert?"))
	assert.Equal(t, Destinations, c.Classify("I want to see Marrakech and the souks"))
}

func TestClassifySubstringMatch(t *testing.T) {
	c := defaultClassifier(t)

	// "fes" is a destination keyword and matches inside "festival"
	assert.Equal(t, Destinations, c.Classify("any festival soon?"))
}

func TestClassifierOrder(t *testing.T) {
	c := defaultClassifier(t)
	assert.Equal(t, []Category{Destinations, Culture, Food, Travel, Accommodation, Activities}, c.Order())
}

func TestClassifierCustomRules(t *testing.T) {
	c, err := NewClassifier([]Rule{
		{Category: Food, Keywords: []string{"c++", "a.b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, Food, c.Classify("I write C++"))
	assert.Equal(t, General, c.Classify("axb"), "keywords are literal, not patterns")
}

func TestClassifierIgnoresBlankKeywords(t *testing.T) {
	c, err := NewClassifier([]Rule{
		{Category: Food, Keywords: []string{"tagine", "", "  "}},
	})
	require.NoError(t, err)

	assert.Equal(t, Food, c.Classify("one tagine please"))
	assert.Equal(t, General, c.Classify("Hello there"))
}

func TestClassifierRejectsRuleWithoutKeywords(t *testing.T) {
	for name, keywords := range map[string][]string{
		"nil":   nil,
		"blank": {"", " "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewClassifier([]Rule{
				{Category: Food, Keywords: []string{"tagine"}},
				{Category: Travel, Keywords: keywords},
			})
			assert.ErrorIs(t, err, ErrInvalidPhrasebook)
		})
	}
}
