package chat

import (
	"strings"
	"sync"
	"time"
)

// State of the chat widget. The classifier itself is stateless.
type State int

const (
	StateClosed State = iota
	StateIdle
	StateAwaitingReply
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingReply:
		return "awaiting-reply"
	default:
		return "closed"
	}
}

// Session is one visitor's conversation: closed → idle → awaiting-reply →
// idle … Replies are produced after a delay on a timer that Close cancels,
// so nothing is appended once the conversation is gone.
type Session struct {
	engine *Engine
	store  *Store
	delay  time.Duration
	now    func() time.Time

	mu         sync.Mutex
	state      State
	language   string
	welcomed   bool
	generation uint64
	timer      *time.Timer
	onReply    func(Message)
}

type SessionOption func(*Session)

// WithDelay sets the pause before the assistant answers.
func WithDelay(d time.Duration) SessionOption {
	return func(s *Session) { s.delay = d }
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithLanguage sets the initial conversation language.
func WithLanguage(lang string) SessionOption {
	return func(s *Session) { s.language = NormalizeLanguage(lang) }
}

// WithReplyHandler is called, outside the session lock, with every
// assistant message appended by the reply timer.
func WithReplyHandler(fn func(Message)) SessionOption {
	return func(s *Session) { s.onReply = fn }
}

func NewSession(engine *Engine, opts ...SessionOption) *Session {
	s := &Session{
		engine:   engine,
		store:    NewStore(),
		delay:    time.Second,
		now:      func() time.Time { return time.Now().UTC() },
		language: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open shows the conversation. The first open greets the visitor; the
// greeting is returned so callers can render it.
func (s *Session) Open() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateClosed {
		return Message{}, false
	}
	s.state = StateIdle
	if s.welcomed {
		return Message{}, false
	}
	s.welcomed = true
	welcome := NewMessage(SenderAssistant, s.engine.Text(s.language, MsgWelcome), s.now())
	s.store.Append(welcome)
	return welcome, true
}

// Submit records the visitor's message and schedules the reply.
func (s *Session) Submit(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateClosed:
		return Message{}, ErrClosed
	case StateAwaitingReply:
		return Message{}, ErrAwaitingReply
	}

	msg := NewMessage(SenderUser, text, s.now())
	s.store.Append(msg)
	s.state = StateAwaitingReply
	s.generation++
	gen, lang := s.generation, s.language
	s.timer = time.AfterFunc(s.delay, func() { s.deliver(gen, text, lang) })
	return msg, nil
}

func (s *Session) deliver(gen uint64, text, lang string) {
	reply := s.engine.Reply(text, lang)

	s.mu.Lock()
	if s.state != StateAwaitingReply || s.generation != gen {
		// closed (or reopened) while the timer was running
		s.mu.Unlock()
		return
	}
	msg := NewMessage(SenderAssistant, reply.Text, s.now())
	s.store.Append(msg)
	s.state = StateIdle
	s.timer = nil
	handler := s.onReply
	s.mu.Unlock()

	if handler != nil {
		handler(msg)
	}
}

// Close hides the conversation and drops any pending reply. The history
// stays in memory until the session itself is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	s.state = StateClosed
}

func (s *Session) SetLanguage(lang string) {
	s.mu.Lock()
	s.language = NormalizeLanguage(lang)
	s.mu.Unlock()
}

func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns the conversation so far, oldest first.
func (s *Session) Messages() []Message {
	return s.store.All()
}
