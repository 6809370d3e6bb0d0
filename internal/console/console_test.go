package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessing-game/internal/game"
)

func newGame(secret uint32) *game.Game {
	return game.New(func() uint32 { return secret })
}

func run(t *testing.T, secret uint32, input string, opts Options) (*game.Game, string, error) {
	t.Helper()
	g := newGame(secret)
	var out bytes.Buffer
	err := New(g, strings.NewReader(input), &out, opts).WithLogger(zerolog.Nop()).Run()
	return g, out.String(), err
}

func TestRunBigSmallWin(t *testing.T) {
	g, out, err := run(t, 42, "50\n10\n42\n", Options{})
	require.NoError(t, err)

	want := strings.Join([]string{
		banner,
		prompt, "You guessed: 50", "Too big!",
		prompt, "You guessed: 10", "Too small!",
		prompt, "You guessed: 42", "You win!",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
	assert.Equal(t, game.StateDone, g.State())
	assert.Equal(t, 3, g.Guesses)
}

func TestRunRecoversFromBadInput(t *testing.T) {
	t.Run("with hint", func(t *testing.T) {
		g, out, err := run(t, 7, "abc\n7\n", Options{ParseHint: true})
		require.NoError(t, err)
		assert.Equal(t, banner+"\n"+prompt+"\n"+parseHint+"\n"+prompt+"\nYou guessed: 7\nYou win!\n", out)
		assert.Equal(t, 1, g.Guesses)
	})
	t.Run("silent", func(t *testing.T) {
		g, out, err := run(t, 7, "abc\n7\n", Options{})
		require.NoError(t, err)
		assert.Equal(t, banner+"\n"+prompt+"\n"+prompt+"\nYou guessed: 7\nYou win!\n", out)
		assert.NotContains(t, out, "You guessed: abc")
		assert.Equal(t, 1, g.Guesses)
	})
}

func TestRunImmediateWin(t *testing.T) {
	_, out, err := run(t, 1, "1\n", Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "You guessed: 1\nYou win!\n"))
}

func TestRunStopsReadingAfterWin(t *testing.T) {
	_, out, err := run(t, 5, "5\n6\n", Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "You guessed: 6")
}

func TestRunClosedStream(t *testing.T) {
	g, out, err := run(t, 42, "", Options{})
	var se *InputStreamError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, banner+"\n"+prompt+"\n", out)
	assert.NotContains(t, out, "You win!")
	assert.Equal(t, game.StateAwaitingInput, g.State())
}

func TestRunStreamClosesMidGame(t *testing.T) {
	_, out, err := run(t, 42, "abc\n3\n", Options{})
	var se *InputStreamError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, out, "Too small!")
	assert.NotContains(t, out, "You win!")
}

func TestRunFinalLineWithoutNewline(t *testing.T) {
	_, out, err := run(t, 9, "9", Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "You win!")
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunReadFailure(t *testing.T) {
	boom := errors.New("broken pipe")
	var out bytes.Buffer
	err := New(newGame(3), failingReader{boom}, &out, Options{}).WithLogger(zerolog.Nop()).Run()
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "failed to read line: broken pipe")
}

func TestRunClearScreen(t *testing.T) {
	_, out, err := run(t, 2, "2\n", Options{ClearScreen: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, clearScreen+banner+"\n"))
}

func TestRunRepeatedBadInputKeepsSecret(t *testing.T) {
	input := strings.Repeat("nope\n-5\n3.5\n\n99999999999\n", 50) + "64\n"
	g, out, err := run(t, 64, input, Options{ParseHint: true})
	require.NoError(t, err)
	assert.Equal(t, uint32(64), g.Secret)
	assert.Equal(t, 1, g.Guesses)
	assert.Equal(t, 250, strings.Count(out, parseHint))
	assert.Equal(t, 251, strings.Count(out, prompt))
}
