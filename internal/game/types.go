// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Ordering: three-way result of comparing a guess with the secret.
//   - State: coarse session state (awaiting input / done).
//   - Game: state for a single session.

package game

// Ordering is the result of comparing a guess against the secret value.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// String returns the lowercase name used in logs.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// State is the session state as seen between iterations.
// Parse failures and comparisons are transient and always settle back
// into one of these two.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateDone          State = "done"
)

// Game holds the state of a single guessing session.
type Game struct {
	ID      string // Unique session identifier (random hex string).
	Secret  uint32 // Value to guess, fixed for the session.
	Guesses int    // Number of accepted (parsed) guesses so far.
	Done    bool   // True once the secret has been guessed.
}
