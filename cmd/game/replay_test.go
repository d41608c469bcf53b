package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/dunjo/internal/application/replay"
	"github.com/younwookim/dunjo/internal/application/system"
	"github.com/younwookim/dunjo/internal/application/world"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
	"github.com/younwookim/dunjo/internal/infrastructure/trace"
)

// spawnFrames covers the spawn blink (6 steps of 0.2s at 60fps) with margin
const spawnFrames = 100

func loadTestWorld(t *testing.T, name string) (*config.GameConfig, *world.World) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	lvl, err := loadLevel(loader, name)
	require.NoError(t, err)
	w, err := world.New(cfg, lvl)
	require.NoError(t, err)
	return cfg, w
}

func idleThenRight(idle, right int) replay.ReplayData {
	data := replay.CreateTestReplayData(idle + right)
	for i := idle; i < idle+right; i++ {
		data.Frames[i].R = true
	}
	data.Frames[idle].RP = true
	return data
}

func TestEmbeddedConfig(t *testing.T) {
	cfg, _ := loadTestWorld(t, "demo")

	assert.Equal(t, 2, cfg.Physics.Display.Scale, "override applied")
	assert.Equal(t, 1.5, cfg.Physics.Camera.PanDuration)
	assert.Equal(t, 6, cfg.Physics.Blink.DeathSteps, "defaults kept")
}

func TestLoadLevel(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	t.Run("ascii stage", func(t *testing.T) {
		lvl, err := loadLevel(loader, "demo")
		require.NoError(t, err)
		assert.Equal(t, 40, lvl.Width)
		assert.Len(t, lvl.ObjectsOfType(system.ObjectRoomTrigger), 2)
	})

	t.Run("tmx", func(t *testing.T) {
		lvl, err := loadLevel(loader, "cave")
		require.NoError(t, err)
		assert.Equal(t, 20, lvl.Width)
		assert.Len(t, lvl.ObjectsOfType(system.ObjectKey), 1)
		assert.Len(t, lvl.ObjectsOfType(system.ObjectEnemy), 1)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loadLevel(loader, "nowhere")
		assert.Error(t, err)
	})
}

func TestSimulate_IdlePlayer(t *testing.T) {
	cfg, w := loadTestWorld(t, "demo")

	var buf bytes.Buffer
	tw := trace.NewWriter(&buf)
	s, err := simulate(w, replay.NewReplayer(replay.CreateTestReplayData(180)), cfg.Physics.StepSeconds(), tw)
	require.NoError(t, err)

	assert.Equal(t, 180, s.Frames)
	assert.True(t, s.Alive)
	assert.True(t, s.Grounded)
	assert.Equal(t, 0, s.Deaths)
	assert.Equal(t, 0, s.Room)
	assert.InDelta(t, 24.0, s.X, 1e-9)
	assert.InDelta(t, 220.0, s.Y, 1e-9)

	records, err := trace.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Records, len(records))

	// Once alive, resting on the floor never builds up velocity
	for _, r := range records {
		if r.Body != "player" || r.Frame <= spawnFrames {
			continue
		}
		assert.Equal(t, 0.0, r.VY, "frame %d", r.Frame)
		assert.InDelta(t, 220.0, r.Y, 1e-9, "frame %d", r.Frame)
		assert.Equal(t, "Grounded", r.State)
	}
}

func TestSimulate_WalkRight(t *testing.T) {
	cfg, w := loadTestWorld(t, "demo")

	s, err := simulate(w, replay.NewReplayer(idleThenRight(spawnFrames, 60)), cfg.Physics.StepSeconds(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 24+60*1.2, s.X, 1e-9)
	assert.True(t, s.Grounded)
	assert.True(t, s.Alive)
}

func TestSimulate_Deterministic(t *testing.T) {
	run := func() string {
		cfg, w := loadTestWorld(t, "demo")
		var buf bytes.Buffer
		_, err := simulate(w, replay.NewReplayer(idleThenRight(spawnFrames, 120)), cfg.Physics.StepSeconds(), trace.NewWriter(&buf))
		require.NoError(t, err)
		return buf.String()
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestRecorderAndReplayer(t *testing.T) {
	rec := replay.NewRecorder("demo", 60)
	data := idleThenRight(spawnFrames, 30)
	for _, fi := range data.Frames {
		rec.RecordFrame(fi.Input())
	}

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	loaded, err := replay.LoadReplay(path)
	require.NoError(t, err)

	cfg, direct := loadTestWorld(t, "demo")
	want, err := simulate(direct, replay.NewReplayer(data), cfg.Physics.StepSeconds(), nil)
	require.NoError(t, err)

	_, replayed := loadTestWorld(t, "demo")
	got, err := simulate(replayed, replay.NewReplayer(*loaded), cfg.Physics.StepSeconds(), nil)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestSimulate_TMXLevel(t *testing.T) {
	cfg, w := loadTestWorld(t, "cave")
	require.Len(t, w.Enemies(), 1)

	s, err := simulate(w, replay.NewReplayer(replay.CreateTestReplayData(spawnFrames)), cfg.Physics.StepSeconds(), nil)
	require.NoError(t, err)
	assert.True(t, s.Alive)
	assert.True(t, s.Grounded)

	// The slime dropped onto the floor
	enemy := w.Enemies()[0]
	assert.True(t, enemy.Grounded)
	assert.InDelta(t, 219.0, enemy.Position.Y, 1e-9)
}
