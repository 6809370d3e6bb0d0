// internal/console/console.go
//
// Line-oriented front end for a guessing session.
// Responsibilities:
//   - Print the banner (optionally after clearing the screen).
//   - Loop: prompt, read one line, validate, echo, compare, report.
//   - Stop on a correct guess; fail on a broken input stream.
//
// Notes:
//   - Bad input is recovered locally, optionally with a one-line hint.
//   - A read failure is returned as *InputStreamError and is never retried.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/game"
)

const (
	clearScreen = "\x1b[2J"
	banner      = "Guess the number!"
	prompt      = "Please input your guess."
	parseHint   = "Please input a number"
)

// InputStreamError reports that the input stream could not be read.
type InputStreamError struct {
	Err error
}

func (e *InputStreamError) Error() string { return "failed to read line: " + e.Err.Error() }

func (e *InputStreamError) Unwrap() error { return e.Err }

// Options selects between the two presentation variants.
type Options struct {
	ClearScreen bool // emit ESC[2J once before the banner
	ParseHint   bool // print a hint after unparseable input
}

// Console drives one game over a reader/writer pair.
type Console struct {
	g    *game.Game
	in   *bufio.Reader
	out  io.Writer
	opts Options
	log  zerolog.Logger
}

// New wires a console around g. The global zerolog logger is used,
// tagged with the session id.
func New(g *game.Game, in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		g:    g,
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
		log:  log.With().Str("session", g.ID).Logger(),
	}
}

// WithLogger replaces the console's logger.
func (c *Console) WithLogger(l zerolog.Logger) *Console {
	c.log = l.With().Str("session", c.g.ID).Logger()
	return c
}

// Run plays until the secret is guessed. It returns nil after the win
// message, or an *InputStreamError if a line could not be read.
func (c *Console) Run() error {
	c.log.Debug().Uint32("secret", c.g.Secret).Msg("session started")

	if c.opts.ClearScreen {
		fmt.Fprint(c.out, clearScreen)
	}
	fmt.Fprintln(c.out, banner)

	for {
		fmt.Fprintln(c.out, prompt)

		line, err := c.readLine()
		if err != nil {
			return err
		}

		n, ord, state, err := c.g.ApplyGuess(line)
		if err != nil {
			var pe *game.ParseError
			if !errors.As(err, &pe) {
				return err
			}
			c.log.Debug().Str("input", pe.Input).Msg("rejected input")
			if c.opts.ParseHint {
				fmt.Fprintln(c.out, parseHint)
			}
			continue
		}

		fmt.Fprintf(c.out, "You guessed: %d\n", n)
		c.log.Debug().Uint32("guess", n).Stringer("ordering", ord).Msg("guess")

		switch ord {
		case game.Less:
			fmt.Fprintln(c.out, "Too small!")
		case game.Greater:
			fmt.Fprintln(c.out, "Too big!")
		case game.Equal:
			fmt.Fprintln(c.out, "You win!")
		}

		if state == game.StateDone {
			c.log.Info().Int("guesses", c.g.Guesses).Msg("session won")
			return nil
		}
	}
}

// readLine returns the next line. A final line without a newline is
// still returned; end of stream with nothing pending is an error.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", &InputStreamError{Err: err}
	}
	return line, nil
}
