// cmd/sail/session.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/go-sail/pkg/engine"
	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/logging"
	"github.com/opd-ai/go-sail/pkg/physics"
	"github.com/opd-ai/go-sail/pkg/validation"
)

const helpText = `Keys: d/l E, e/u NE, w/k N, q/y NW, a/h W, z/b SW, s/j S, c/n SE, space or . hold
Words: north, ne, "turn sw", hold, wait
Other: wind <dir>, help, quit`

// session steers one vessel from line-based input
type session struct {
	game     *engine.Game
	vesselID entity.ID
	renderer entity.Renderer
	out      io.Writer
	logger   *logging.Logger
}

func newSession(game *engine.Game, vesselID entity.ID, r entity.Renderer, out io.Writer) *session {
	return &session{
		game:     game,
		vesselID: vesselID,
		renderer: r,
		out:      out,
		logger:   game.Logger.WithComponent("session").WithVessel(uint64(vesselID)),
	}
}

// run draws the board, then handles one command per input line until the
// input ends, a quit command arrives or ctx is done
func (s *session) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	s.draw("")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if s.handleLine(ctx, line) {
				return nil
			}
		}
	}
}

// handleLine runs one command and reports whether the session should end
func (s *session) handleLine(ctx context.Context, line string) bool {
	ctx = logging.WithCorrelationID(ctx, "")
	word := strings.ToLower(strings.TrimSpace(line))

	switch {
	case word == "quit" || word == "exit":
		return true
	case word == "help":
		s.draw(helpText)
		return false
	case line == "":
		s.draw("")
		return false
	case strings.HasPrefix(word, "wind "):
		s.draw(s.setWind(strings.TrimPrefix(word, "wind ")))
		return false
	}

	action, err := validation.ParseCommand(line)
	if err != nil {
		s.logger.Debug(ctx, "unparsed command", "input", line, "reason", err.Error())
		s.draw(fmt.Sprintf("%v (type help for commands)", err))
		return false
	}

	outcome, err := s.game.ApplyAction(ctx, s.vesselID, action)
	if err != nil {
		s.draw(fmt.Sprintf("Rejected: %v", err))
		return false
	}
	s.draw(describe(outcome))
	return false
}

func (s *session) setWind(arg string) string {
	d, err := physics.ParseDirection(arg)
	if err != nil {
		return err.Error()
	}
	if err := s.game.SetWind(d); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Wind now %s", d)
}

// draw redraws the board with an optional message underneath
func (s *session) draw(msg string) {
	s.game.Render(s.renderer)
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
}

// describe summarizes an accepted action in one line
func describe(o entity.Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: cost %d", o.Action, o.Cost)
	if o.Recovered {
		b.WriteString(", recovered 1")
	}
	if !o.Moved {
		b.WriteString(", in irons, no headway")
	}
	return b.String()
}
