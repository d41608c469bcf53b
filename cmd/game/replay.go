package main

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/dunjo/internal/application/replay"
	"github.com/younwookim/dunjo/internal/application/world"
	"github.com/younwookim/dunjo/internal/infrastructure/trace"
)

// Summary is the end state of a headless run
type Summary struct {
	Frames   int
	Deaths   int
	Room     int
	X, Y     float64
	Alive    bool
	Grounded bool
	Records  int
}

// simulate steps the world once per recorded frame without a window. Every
// step's body records go to tw when it is not nil.
func simulate(w *world.World, replayer *replay.Replayer, dt float64, tw *trace.Writer) (Summary, error) {
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		w.Step(input, dt)
		if err := tw.Write(w.Records()...); err != nil {
			return Summary{}, fmt.Errorf("frame %d: %w", w.Frame(), err)
		}
	}

	p := w.Player()
	room, _, _ := w.Room()
	s := Summary{
		Frames:   w.Frame(),
		Deaths:   p.Deaths,
		Room:     room,
		X:        p.Position.X,
		Y:        p.Position.Y,
		Alive:    p.Alive(),
		Grounded: p.Grounded,
		Records:  tw.Count(),
	}
	slog.Info("headless run finished",
		"frames", s.Frames, "deaths", s.Deaths, "room", s.Room,
		"x", s.X, "y", s.Y, "alive", s.Alive, "trace_records", s.Records)
	return s, nil
}
