package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/younwookim/dunjo/internal/application/game"
	"github.com/younwookim/dunjo/internal/application/replay"
	"github.com/younwookim/dunjo/internal/application/scene/playing"
	"github.com/younwookim/dunjo/internal/application/system"
	"github.com/younwookim/dunjo/internal/application/world"
	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
	"github.com/younwookim/dunjo/internal/infrastructure/trace"
	"github.com/younwookim/dunjo/internal/infrastructure/watch"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir string
	level     string
	record    string
	replay    string
	trace     string
	frames    int
	watch     bool
	verbose   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.StringVar(&opts.level, "level", "demo", "Level name: levels/<name>.tmx or stages/<name>.json")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Re-simulate a recording headless")
	flag.StringVar(&opts.trace, "trace", "", "Write per-step body records as CSV (headless only)")
	flag.IntVar(&opts.frames, "frames", 0, "Run this many idle frames headless")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the level when files under -config change")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lvl, err := loadLevel(loader, opts.level)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	w, err := world.New(cfg, lvl)
	if errors.Is(err, system.ErrMissingCollisionLayer) {
		return fmt.Errorf("level %s cannot be played: %w", opts.level, err)
	}
	if err != nil {
		return err
	}

	if opts.replay != "" || opts.frames > 0 {
		return runHeadless(opts, cfg, w)
	}

	sceneOpts := playing.Options{RecordPath: opts.record}
	if opts.watch {
		if opts.configDir == "" {
			return errors.New("-watch needs -config")
		}
		watcher, err := watch.New(watchDirs(opts.configDir)...)
		if err != nil {
			return fmt.Errorf("watch %s: %w", opts.configDir, err)
		}
		sceneOpts.Watcher = watcher
		sceneOpts.Reload = func() (*entity.Level, error) {
			return loadLevel(loader, opts.level)
		}
	}

	display := cfg.Physics.Display
	g := game.New(playing.New(cfg, w, sceneOpts), display.ScreenWidth, display.ScreenHeight, display.Framerate)
	return g.Run("dunjo", display.Scale)
}

// watchDirs returns the config directory and its level subdirectories that exist
func watchDirs(dir string) []string {
	dirs := []string{dir}
	for _, sub := range []string{"levels", "stages"} {
		p := filepath.Join(dir, sub)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func runHeadless(opts options, cfg *config.GameConfig, w *world.World) error {
	var data replay.ReplayData
	if opts.replay != "" {
		loaded, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		if loaded.Level != opts.level {
			slog.Warn("replay was recorded on another level", "replay", loaded.Level, "level", opts.level)
		}
		data = *loaded
	} else {
		data = replay.CreateTestReplayData(opts.frames)
	}

	var out io.Writer
	if opts.trace != "" {
		f, err := os.Create(opts.trace)
		if err != nil {
			return fmt.Errorf("creating trace: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	_, err := simulate(w, replay.NewReplayer(data), cfg.Physics.StepSeconds(), trace.NewWriter(out))
	return err
}
