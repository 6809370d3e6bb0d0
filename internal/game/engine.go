// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create new games with a secret drawn from [MinSecret, MaxSecret).
//   - Validate raw input into a guess (unsigned base-10, 32 bits).
//   - Compare guesses with the secret and track awaiting → done.
//
// Notes:
//   - Parse failures never touch game state; the caller simply asks again.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"strconv"
	"strings"
)

const (
	MinSecret = 1
	MaxSecret = 101 // exclusive
)

var (
	// ErrNotANumber is matched by every ParseError.
	ErrNotANumber = errors.New("not a number")
	// ErrFinished is returned when guessing on a game that is already won.
	ErrFinished = errors.New("game finished")
)

// ParseError reports raw input that is not a valid guess.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse guess %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrNotANumber, e.Err} }

// Source returns a secret in [MinSecret, MaxSecret).
type Source func() uint32

// RandomSecret draws from math/rand/v2, which is seeded from process entropy.
func RandomSecret() uint32 {
	return MinSecret + mrand.Uint32N(MaxSecret-MinSecret)
}

// New constructs a game. A nil src falls back to RandomSecret.
func New(src Source) *Game {
	if src == nil {
		src = RandomSecret
	}
	return &Game{
		ID:     randomID(),
		Secret: src(),
	}
}

// ParseGuess trims surrounding whitespace and parses an unsigned base-10
// integer that fits in 32 bits. A single leading '+' is accepted.
func ParseGuess(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &ParseError{Input: s, Err: err}
	}
	return uint32(n), nil
}

// Compare orders guess against secret.
func Compare(guess, secret uint32) Ordering {
	switch {
	case guess < secret:
		return Less
	case guess > secret:
		return Greater
	default:
		return Equal
	}
}

// Guess compares n with the secret and records it.
// Equal moves the game to StateDone.
func (g *Game) Guess(n uint32) (Ordering, error) {
	if g.Done {
		return Equal, ErrFinished
	}
	g.Guesses++
	ord := Compare(n, g.Secret)
	if ord == Equal {
		g.Done = true
	}
	return ord, nil
}

// ApplyGuess validates raw input and, if it parses, compares it.
// Returns: the parsed guess, its ordering, and the resulting state.
//
// On a ParseError the game is untouched and the state stays
// StateAwaitingInput.
func (g *Game) ApplyGuess(raw string) (uint32, Ordering, State, error) {
	if g.Done {
		return 0, Equal, g.State(), ErrFinished
	}
	n, err := ParseGuess(raw)
	if err != nil {
		return 0, Equal, g.State(), err
	}
	ord, err := g.Guess(n)
	return n, ord, g.State(), err
}

// State reports the current session state.
func (g *Game) State() State {
	if g.Done {
		return StateDone
	}
	return StateAwaitingInput
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
