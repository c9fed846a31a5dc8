package chat

import (
	"errors"

	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
)

// Reply is the assistant's answer to one user message.
type Reply struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
	// Degraded is set when the text came from a fallback rather than the
	// classified category.
	Degraded bool `json:"degraded,omitempty"`
}

// Engine runs classification then selection. It holds no per-conversation
// state and is safe for concurrent use.
type Engine struct {
	classifier *Classifier
	selector   *Selector
	localizer  *Localizer
}

func NewEngine(classifier *Classifier, selector *Selector, localizer *Localizer) *Engine {
	return &Engine{classifier: classifier, selector: selector, localizer: localizer}
}

// NewEngineFromPhrasebook wires classifier, bank and selector from pb.
func NewEngineFromPhrasebook(pb *Phrasebook, picker Picker) (*Engine, error) {
	classifier, err := NewClassifier(pb.Rules)
	if err != nil {
		return nil, err
	}
	localizer, err := NewLocalizer()
	if err != nil {
		return nil, err
	}
	selector := NewSelector(NewResponseBank(pb.Responses), picker)
	return NewEngine(classifier, selector, localizer), nil
}

func (e *Engine) Classifier() *Classifier { return e.classifier }
func (e *Engine) Selector() *Selector     { return e.selector }
func (e *Engine) Localizer() *Localizer   { return e.localizer }

// Reply answers text in language. It never fails: a bank hole degrades to
// the English general reply, then to the localized fallback string.
func (e *Engine) Reply(text, language string) Reply {
	category := e.classifier.Classify(text)
	answer, err := e.selector.Select(category, language)
	if err == nil {
		return Reply{Category: category, Text: answer}
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		logging.ErrorLogger.Error("response bank is missing candidates",
			zap.String("language", cfgErr.Language),
			zap.String("category", string(cfgErr.Category)),
			zap.Error(err),
		)
	}
	return Reply{Category: category, Text: e.Fallback(language), Degraded: true}
}

// Fallback is the reply used when nothing better is available.
func (e *Engine) Fallback(language string) string {
	if answer, err := e.selector.Select(General, DefaultLanguage); err == nil {
		return answer
	}
	return e.Text(language, MsgFallbackReply)
}

// Text returns a localized interface string.
func (e *Engine) Text(language, id string) string {
	if e.localizer == nil {
		return id
	}
	return e.localizer.Text(language, id)
}
