package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	pb, err := DefaultPhrasebook()
	require.NoError(t, err)
	engine, err := NewEngineFromPhrasebook(pb, fixedPicker(0))
	require.NoError(t, err)
	return engine
}

func TestEngineReply(t *testing.T) {
	engine := newTestEngine(t)

	reply := engine.Reply("Can you recommend a riad?", "en")
	assert.Equal(t, Accommodation, reply.Category)
	assert.Contains(t, engine.Selector().CandidatesFor(Accommodation, "en"), reply.Text)
	assert.False(t, reply.Degraded)

	fr := engine.Reply("Do I need a visa?", "fr")
	assert.Equal(t, Travel, fr.Category)
	assert.Contains(t, engine.Selector().CandidatesFor(Travel, "fr"), fr.Text)
}

func TestEngineReplyDegradesOnMissingCandidates(t *testing.T) {
	classifier, err := NewClassifier([]Rule{{Category: Food, Keywords: []string{"tagine"}}})
	require.NoError(t, err)
	localizer, err := NewLocalizer()
	require.NoError(t, err)
	bank := NewResponseBank(map[string]map[Category][]string{
		"en": {General: {"general answer"}},
	})
	engine := NewEngine(classifier, NewSelector(bank, nil), localizer)

	reply := engine.Reply("tagine please", "fr")
	assert.Equal(t, Food, reply.Category)
	assert.Equal(t, "general answer", reply.Text)
	assert.True(t, reply.Degraded)
}

func TestEngineFallbackWithoutBank(t *testing.T) {
	classifier, err := NewClassifier(nil)
	require.NoError(t, err)
	localizer, err := NewLocalizer()
	require.NoError(t, err)
	engine := NewEngine(classifier, NewSelector(NewResponseBank(nil), nil), localizer)

	reply := engine.Reply("anything", "fr")
	assert.True(t, reply.Degraded)
	assert.Equal(t, localizer.Text("fr", MsgFallbackReply), reply.Text)
}
