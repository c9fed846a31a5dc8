package chat

import (
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

// Supported site languages. ber is Tamazight.
var SupportedLanguages = []string{"en", "fr", "ar", "ber"}

// NormalizeLanguage reduces a language code or tag ("fr-FR", "AR") to its
// base subtag. Empty input means English.
func NormalizeLanguage(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultLanguage
	}
	if tag, err := language.Parse(code); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	if i := strings.IndexAny(code, "-_"); i > 0 {
		return code[:i]
	}
	return code
}

var supportedTags = []language.Tag{language.English, language.French, language.Arabic}

var matcher = language.NewMatcher(supportedTags)

// PreferredLanguage picks a site language from an explicit code first, then
// an Accept-Language header, defaulting to English.
func PreferredLanguage(explicit, acceptLanguage string) string {
	if explicit != "" {
		return NormalizeLanguage(explicit)
	}
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	for _, tag := range tags {
		if base, _ := tag.Base(); base.String() == "ber" || base.String() == "zgh" {
			return "ber"
		}
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}
