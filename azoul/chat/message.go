package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry of a conversation. Values are copied, never edited.
type Message struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Sender Sender    `json:"sender"`
	SentAt time.Time `json:"sentAt"`
}

func NewMessage(sender Sender, text string, sentAt time.Time) Message {
	return Message{
		ID:     uuid.NewString(),
		Text:   text,
		Sender: sender,
		SentAt: sentAt,
	}
}

// Store is the append-only message list of one conversation. It lives as
// long as the session that owns it and is never persisted.
type Store struct {
	mu       sync.RWMutex
	messages []Message
}

func NewStore() *Store {
	return &Store{messages: make([]Message, 0, 16)}
}

func (s *Store) Append(m Message) {
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
}

// All returns the messages in insertion order.
func (s *Store) All() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
