package chat

import (
	"embed"
	"encoding/json"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Message ids of the fixed interface strings.
const (
	MsgWelcome       = "welcome"
	MsgFallbackReply = "fallback-reply"
	MsgEmptyMessage  = "empty-message"
	MsgReplyPending  = "reply-pending"
	MsgSessionClosed = "session-closed"
)

// Localizer serves the widget's fixed strings (greeting, fallback, input
// errors). Canned answers live in the phrasebook instead.
type Localizer struct {
	bundle *i18n.Bundle
}

func NewLocalizer() (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	files, err := fs.Glob(localeFS, "locales/*.json")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			return nil, err
		}
	}
	return &Localizer{bundle: bundle}, nil
}

// Text localizes id for lang, falling back to English. Unknown ids come
// back unchanged.
func (l *Localizer) Text(lang, id string) string {
	loc := i18n.NewLocalizer(l.bundle, NormalizeLanguage(lang), DefaultLanguage)
	s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return id
	}
	return s
}
