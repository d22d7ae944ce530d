// Package conversation models chat turns and the bounded in-memory
// window of recent history. Nothing here is persisted; the window lives
// only for the request or session that owns it.
package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ParseRole maps a wire role string to a Role, defaulting to user.
func ParseRole(s string) Role {
	if s == string(RoleAssistant) {
		return RoleAssistant
	}
	return RoleUser
}

// Turn is a single message in a conversation.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTurn creates a turn with a fresh id and timestamp.
func NewTurn(role Role, content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// DefaultCapacity is the window bound used when none is configured.
const DefaultCapacity = 20

// Window is a FIFO-bounded slice of recent turns. Appending beyond
// capacity evicts the oldest turn. Not safe for concurrent use; each
// session owns its window.
type Window struct {
	capacity int
	turns    []Turn
}

// NewWindow creates a window bounded to capacity turns.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Window{capacity: capacity}
}

// Append adds a turn, evicting the oldest when the window is full.
func (w *Window) Append(t Turn) {
	if len(w.turns) == w.capacity {
		copy(w.turns, w.turns[1:])
		w.turns = w.turns[:len(w.turns)-1]
	}
	w.turns = append(w.turns, t)
}

// Len returns the number of turns currently held.
func (w *Window) Len() int {
	return len(w.turns)
}

// Turns returns a copy of the window contents, oldest first.
func (w *Window) Turns() []Turn {
	out := make([]Turn, len(w.turns))
	copy(out, w.turns)
	return out
}

// LastN returns a copy of the most recent n turns, oldest first.
func (w *Window) LastN(n int) []Turn {
	if n <= 0 || len(w.turns) == 0 {
		return nil
	}
	if n > len(w.turns) {
		n = len(w.turns)
	}
	out := make([]Turn, n)
	copy(out, w.turns[len(w.turns)-n:])
	return out
}
