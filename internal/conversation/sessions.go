package conversation

import (
	"sync"
	"time"
)

// Session records what the bot last understood from a chat. Nothing in the
// response path reads it back yet; it exists so future contextual logic has
// somewhere to hang state without reworking the handlers.
type Session struct {
	LastTopic Topic
	LastSeen  time.Time
}

// Sessions is a mutex-guarded map of chat ID to Session. It is passed
// explicitly into the handlers rather than living as package state.
type Sessions struct {
	mu       sync.Mutex
	sessions map[int64]Session
}

// NewSessions returns an empty session store.
func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[int64]Session)}
}

// Track records the topic classified for a chat at the given time.
func (s *Sessions) Track(chatID int64, topic Topic, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = Session{LastTopic: topic, LastSeen: at}
}

// Get returns the session for a chat, if one has been recorded.
func (s *Sessions) Get(chatID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Len reports how many chats have recorded sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
