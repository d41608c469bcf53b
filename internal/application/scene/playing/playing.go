// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/dunjo/internal/application/camera"
	"github.com/younwookim/dunjo/internal/application/replay"
	"github.com/younwookim/dunjo/internal/application/scene"
	"github.com/younwookim/dunjo/internal/application/state"
	"github.com/younwookim/dunjo/internal/application/system"
	"github.com/younwookim/dunjo/internal/application/world"
	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
	"github.com/younwookim/dunjo/internal/infrastructure/watch"
)

// Colors for rendering
var (
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorBlock    = color.RGBA{140, 110, 60, 255}
	colorPlatform = color.RGBA{120, 160, 200, 255}
	colorLadder   = color.RGBA{150, 120, 80, 255}
	colorSpike    = color.RGBA{200, 50, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorKey      = color.RGBA{255, 215, 0, 255}
	colorNormal   = color.RGBA{255, 255, 255, 200}
)

// LevelSource reloads the level's tile data after its file changed
type LevelSource func() (*entity.Level, error)

// Options are the optional parts of a Playing scene
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string
	// Watcher and Reload enable hot reloading of the level
	Watcher *watch.Watcher
	Reload  LevelSource
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	world   *world.World
	input   *system.InputSystem
	camera  *camera.Camera
	state   state.GameState
	screenW int
	screenH int
	dt      float64

	showCollision bool

	recorder       *replay.Recorder
	recordFilename string

	watcher *watch.Watcher
	reload  LevelSource
}

// New creates a new Playing scene over a world
func New(cfg *config.GameConfig, w *world.World, opts Options) *Playing {
	level := w.Tiles().Level()
	display := cfg.Physics.Display

	p := &Playing{
		config:  cfg,
		world:   w,
		input:   system.NewInputSystem(),
		state:   state.StatePlaying,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      cfg.Physics.StepSeconds(),
		camera: camera.New(float64(display.ScreenWidth), float64(display.ScreenHeight),
			level.PixelWidth(), level.PixelHeight(), cfg.Physics.Camera.PanDuration),
		recordFilename: opts.RecordPath,
		watcher:        opts.Watcher,
		reload:         opts.Reload,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(level.Name, display.Framerate)
		slog.Info("recording enabled", "path", opts.RecordPath)
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.showCollision = !p.showCollision
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.checkReload()

	if !p.state.Steps() {
		return nil, nil
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	ev := p.world.Step(input, p.dt)

	player := p.world.Player()
	_, left, right := p.world.Room()
	if ev.RoomChanged {
		tx, _ := p.camera.Target(player.Position.X, player.Position.Y, left, right)
		p.camera.PanTo(tx)
	}
	p.camera.Update(p.dt, player.Position.X, player.Position.Y, left, right)

	return nil, nil // nil = stay on this scene
}

// checkReload queues fresh tile data when a watched level file changed
func (p *Playing) checkReload() {
	if p.watcher == nil || p.reload == nil {
		return
	}

	changed := p.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	level, err := p.reload()
	if err != nil {
		slog.Warn("level reload failed", "files", changed, "err", err)
		return
	}
	p.world.Reload(level)
	slog.Info("level reload queued", "files", changed)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		slog.Error("failed to save recording", "err", err)
	} else {
		slog.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera.X, p.camera.Y

	p.drawTiles(screen, camX, camY)
	p.drawPickups(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	level := p.world.Tiles().Level()
	grid := p.world.Tiles().Grid()
	tw, th := float64(level.TileWidth), float64(level.TileHeight)

	startCol := int(camX / tw)
	startRow := int(camY / th)
	endCol := int((camX+float64(p.screenW))/tw) + 1
	endRow := int((camY+float64(p.screenH))/th) + 1

	for row := max(startRow, 0); row <= endRow && row < level.Height; row++ {
		for col := max(startCol, 0); col <= endCol && col < level.Width; col++ {
			x := float64(col)*tw - camX
			y := float64(row)*th - camY
			center := grid.CellCenter(col, row)

			for _, typ := range level.TilesAt(center) {
				switch typ {
				case entity.TypeWall:
					ebitenutil.DrawRect(screen, x, y, tw, th, colorWall)
				case entity.TypeBlock:
					ebitenutil.DrawRect(screen, x, y, tw, th, colorBlock)
				case entity.TypePlatform:
					ebitenutil.DrawRect(screen, x, y, tw, 3, colorPlatform)
				case entity.TypeLadder, entity.TypeChain:
					ebitenutil.DrawRect(screen, x+tw/4, y, tw/2, th, colorLadder)
				case entity.TypeSpikes:
					ebitenutil.DrawRect(screen, x, y+th/2, tw, th/2, colorSpike)
				}
			}

			if p.showCollision {
				p.drawCollision(screen, grid.At(col, row), camX, camY)
			}
		}
	}
}

// drawCollision outlines a cell's collision polygon with its edge normals
func (p *Playing) drawCollision(screen *ebiten.Image, tc *entity.TileCollision, camX, camY float64) {
	if tc == nil {
		return
	}
	points := tc.Shape.Points()
	for i, a := range points {
		b := points[(i+1)%len(points)]
		ax, ay := tc.Center.X+a.X-camX, tc.Center.Y+a.Y-camY
		bx, by := tc.Center.X+b.X-camX, tc.Center.Y+b.Y-camY
		ebitenutil.DrawLine(screen, ax, ay, bx, by, colorNormal)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	player := p.world.Player()
	if !player.Visible() {
		return
	}
	b := player.Bounds()
	ebitenutil.DrawRect(screen, b.Min.X-camX, b.Min.Y-camY, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, colorPlayer)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, enemy := range p.world.Enemies() {
		if !enemy.Active {
			continue
		}
		b := enemy.Bounds()
		ebitenutil.DrawRect(screen, b.Min.X-camX, b.Min.Y-camY, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, colorEnemy)
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX, camY float64) {
	for _, pickup := range p.world.Pickups() {
		if !pickup.Active {
			continue
		}
		b := pickup.Bounds()
		ebitenutil.DrawRect(screen, b.Min.X-camX, b.Min.Y-camY, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, colorKey)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.world.Player()
	room, _, _ := p.world.Room()
	status := fmt.Sprintf("Room %d | Deaths %d | %s", room, player.Deaths, player.State())
	ebitenutil.DebugPrintAt(screen, status, 4, p.screenH-16)

	ebitenutil.DebugPrint(screen, "Arrows/WASD: Move | Space: Jump | Up: Ladder | Tab: Collision | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
