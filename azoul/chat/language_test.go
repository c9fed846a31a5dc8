package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"":      "en",
		"en":    "en",
		"FR":    "fr",
		"fr-FR": "fr",
		"ar_MA": "ar",
		"ber":   "ber",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeLanguage(in), in)
	}
}

func TestPreferredLanguage(t *testing.T) {
	assert.Equal(t, "fr", PreferredLanguage("fr", "ar"))
	assert.Equal(t, "ar", PreferredLanguage("", "ar-MA,fr;q=0.8"))
	assert.Equal(t, "fr", PreferredLanguage("", "fr-CA, en;q=0.5"))
	assert.Equal(t, "ber", PreferredLanguage("", "zgh, fr;q=0.5"))
	assert.Equal(t, "en", PreferredLanguage("", ""))
	assert.Equal(t, "en", PreferredLanguage("", "ja"))
}

func TestLocalizer(t *testing.T) {
	l, err := NewLocalizer()
	require.NoError(t, err)

	en := l.Text("en", MsgWelcome)
	fr := l.Text("fr", MsgWelcome)
	assert.Contains(t, en, "Welcome")
	assert.NotEqual(t, en, fr)
	assert.Equal(t, en, l.Text("de", MsgWelcome))
	assert.Equal(t, en, l.Text("ber", MsgWelcome))
	assert.Equal(t, "no-such-id", l.Text("en", "no-such-id"))
}
