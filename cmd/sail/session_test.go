package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-sail/pkg/config"
	"github.com/opd-ai/go-sail/pkg/engine"
	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/logging"
	"github.com/opd-ai/go-sail/pkg/physics"
	"github.com/opd-ai/go-sail/pkg/render"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	game := engine.NewGame(config.DefaultConfig())
	game.Logger = logging.NewLoggerWithWriter(io.Discard, slog.LevelError)
	ids, err := game.SpawnAll()
	require.NoError(t, err)
	game.Start()

	var out bytes.Buffer
	term := render.NewTerminalRenderer(&out, 2)
	term.SetBounds(game.Bounds)
	return newSession(game, ids[0], term, &out), &out
}

func (s *session) vessel(t *testing.T) entity.VesselState {
	t.Helper()
	v, ok := s.game.GetGameState().Vessel(s.vesselID)
	require.True(t, ok)
	return v
}

func TestSession_HandleLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		heading physics.Direction
	}{
		{"key turns north", "k", "turn N: cost 3", physics.North},
		{"word command", "turn ne", "turn NE: cost 1", physics.NorthEast},
		{"space holds", " ", "hold: cost 0", physics.East},
		{"reversal rejected", "a", "Rejected: maneuver rejected: cannot reverse heading", physics.East},
		{"unknown command", "bogus", "unknown command", physics.East},
		{"help", "help", "Other: wind <dir>, help, quit", physics.East},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession(t)

			quit := s.handleLine(context.Background(), tt.line)

			assert.False(t, quit)
			assert.Contains(t, out.String(), tt.want)
			assert.Equal(t, tt.heading, s.vessel(t).Heading)
		})
	}
}

func TestSession_Quit(t *testing.T) {
	for _, line := range []string{"quit", "EXIT", " quit "} {
		s, _ := newTestSession(t)
		assert.True(t, s.handleLine(context.Background(), line), "line %q", line)
	}
}

func TestSession_Wind(t *testing.T) {
	s, out := newTestSession(t)

	s.handleLine(context.Background(), "wind n")
	assert.Equal(t, physics.North, s.game.GetGameState().Wind)
	assert.Contains(t, out.String(), "Wind now ↑")

	out.Reset()
	s.handleLine(context.Background(), "wind sideways")
	assert.Equal(t, physics.North, s.game.GetGameState().Wind)
	assert.Contains(t, out.String(), `unknown direction "sideways"`)
}

func TestSession_RunStopsAtQuit(t *testing.T) {
	s, out := newTestSession(t)

	err := s.run(context.Background(), strings.NewReader("k\n \nquit\nd\n"))
	require.NoError(t, err)

	v := s.vessel(t)
	assert.Equal(t, physics.North, v.Heading)
	assert.Equal(t, physics.Vector{X: 0, Y: 2}, v.Position)
	assert.Equal(t, physics.Maneuver(8), v.Maneuver)
	assert.Contains(t, out.String(), "hold: cost 0, recovered 1")
}

func TestSession_RunEndsAtEOF(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.run(context.Background(), strings.NewReader("e\n")))
	assert.Equal(t, physics.NorthEast, s.vessel(t).Heading)
}

func TestSession_RunEndsWithContext(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	assert.NoError(t, s.run(ctx, pr))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "turn N: cost 3", describe(entity.Outcome{Action: entity.TurnTo(physics.North), Cost: 3, Moved: true}))
	assert.Equal(t, "hold: cost 0, recovered 1", describe(entity.Outcome{Action: entity.Hold(), Moved: true, Recovered: true}))
	assert.Equal(t, "hold: cost 0, in irons, no headway", describe(entity.Outcome{Action: entity.Hold()}))
}

func TestPickVessel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Vessels = append(cfg.Vessels, config.VesselConfig{Name: "Second", Heading: physics.North, X: 2, Maneuver: 10})
	game := engine.NewGame(cfg)
	game.Logger = logging.NewLoggerWithWriter(io.Discard, slog.LevelError)
	ids, err := game.SpawnAll()
	require.NoError(t, err)

	id, err := pickVessel(game, ids, "")
	require.NoError(t, err)
	assert.Equal(t, ids[0], id)

	id, err = pickVessel(game, ids, "Second")
	require.NoError(t, err)
	assert.Equal(t, ids[1], id)

	_, err = pickVessel(game, ids, "Ghost")
	assert.ErrorIs(t, err, engine.ErrVesselNotFound)
}
