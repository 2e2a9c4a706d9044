package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Role identifies who produced a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one displayed conversation turn. Entries are immutable once
// appended and their order is never changed.
type Entry struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ErrBusy is returned by Ask while a previous turn is still awaiting its
// response. The session is strictly request-response: one turn at a time.
var ErrBusy = errors.New("a chat turn is already in progress")

// Generator produces the full answer for a composed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ComposeFunc builds the prompt for one user query. It typically reads the
// profile store, so it may fail.
type ComposeFunc func(userQuery string) (string, error)

// Session holds the append-only transcript for one interactive session and
// drives the two-state loop: idle, or awaiting a response. The transcript
// is display state only; it is never fed back into prompts and never
// persisted.
type Session struct {
	compose ComposeFunc
	gen     Generator

	mu      sync.Mutex
	busy    bool
	entries []Entry
}

// NewSession creates a session seeded with the synthetic assistant greeting.
func NewSession(greeting string, compose ComposeFunc, gen Generator) *Session {
	return &Session{
		compose: compose,
		gen:     gen,
		entries: []Entry{newEntry(RoleAssistant, greeting)},
	}
}

// Ask processes one user turn. The user entry is appended immediately; the
// assistant entry is appended only on success. On failure the transcript is
// left without a response for this turn and the error is returned to the
// caller to surface.
func (s *Session) Ask(ctx context.Context, query string) (user, assistant Entry, err error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return Entry{}, Entry{}, ErrBusy
	}
	s.busy = true
	user = newEntry(RoleUser, query)
	s.entries = append(s.entries, user)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	prompt, err := s.compose(query)
	if err != nil {
		return user, Entry{}, err
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return user, Entry{}, err
	}

	assistant = newEntry(RoleAssistant, text)
	s.mu.Lock()
	s.entries = append(s.entries, assistant)
	s.mu.Unlock()
	return user, assistant, nil
}

// Transcript returns a copy of all entries in chronological order.
func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func newEntry(role Role, text string) Entry {
	return Entry{ID: uuid.New().String(), Role: role, Text: text}
}
