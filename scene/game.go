package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/celest"
)

// RunConfig holds window and tooling settings.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Debug logs sequencer events and per-frame timing to stderr.
	Debug bool
	// ScreenshotDir receives PNGs from Game.Screenshot. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// GameOptions configures the site content.
type GameOptions struct {
	Config celest.Config
	// Seed drives planet surfaces, stars and ship launch jitter. Zero picks
	// one from the clock.
	Seed uint64
	// Store persists visits. Nil keeps them in memory.
	Store *VisitStore
	// ShipLoadDelay delays the ship's arrival on each landing page.
	ShipLoadDelay time.Duration
	// Script, when set, drives the game with injected input.
	Script *TestRunner
	// ExitWhenScriptDone ends the game loop once Script finishes.
	ExitWhenScriptDone bool
}

// Game routes between the landing page and destination pages. It
// implements ebiten.Game and celest.Navigator.
type Game struct {
	injector

	cfg   RunConfig
	opts  GameOptions
	fonts *Fonts
	store *VisitStore

	page    page
	landing *Landing // nil while a destination page is shown
	next    page     // applied at the end of the current frame
	err     error

	runner    *TestRunner
	shots     []shot
	shotRun   string // timestamp shared by one run's screenshots
	shotCount int
	touchIDs  []ebiten.TouchID

	fps   fpsWidget
	stats debugStats
	pages int
}

// NewGame loads fonts and builds the first landing page.
func NewGame(cfg RunConfig, opts GameOptions) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Store == nil {
		opts.Store = NewVisitStore(nil)
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		opts:   opts,
		fonts:  fonts,
		store:  opts.Store,
		runner: opts.Script,
	}
	landing, err := g.newLanding()
	if err != nil {
		return nil, err
	}
	g.landing = landing
	g.page = landing
	return g, nil
}

func (g *Game) newLanding() (*Landing, error) {
	g.pages++
	return NewLanding(LandingOptions{
		Config:        g.opts.Config,
		Width:         g.cfg.Width,
		Height:        g.cfg.Height,
		Seed:          g.opts.Seed + uint64(g.pages),
		Fonts:         g.fonts,
		Navigator:     g,
		LastVisited:   g.store.Last(),
		ShipLoadDelay: g.opts.ShipLoadDelay,
		Debug:         g.cfg.Debug,
	})
}

// Navigate records the visit and switches to the destination page at the
// end of the frame. Store failures are logged and do not block navigation.
func (g *Game) Navigate(dest celest.Destination) error {
	if err := g.store.Record(dest); err != nil {
		log.Printf("[scene] Warning: %v", err)
	}
	log.Printf("[scene] navigate to %s (%s)", dest.Name, dest.Path)
	g.next = NewDestinationPage(dest, g.store.Count(dest.Name), g.cfg.Width, g.cfg.Height, g.fonts, g.back)
	return nil
}

var _ celest.Navigator = (*Game)(nil)

// back returns to a fresh landing page.
func (g *Game) back() {
	landing, err := g.newLanding()
	if err != nil {
		g.err = err
		return
	}
	log.Printf("[scene] back to orbit")
	g.next = landing
}

// Landing returns the current landing page, or nil on a destination page.
func (g *Game) Landing() *Landing { return g.landing }

// Store returns the visit store.
func (g *Game) Store() *VisitStore { return g.store }

// PendingInput returns the number of queued synthetic events.
func (g *Game) PendingInput() int { return g.injector.Pending() }

// PlanetAt locates planet i on the landing page.
func (g *Game) PlanetAt(i int) (x, y float64, ok bool) {
	if g.landing == nil || i < 0 || i >= 3 {
		return 0, 0, false
	}
	return g.landing.PlanetAt(i)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	dt := time.Second / time.Duration(tps)

	if g.runner != nil {
		g.runner.step(g)
		if g.runner.Done() && g.opts.ExitWhenScriptDone {
			return ebiten.Termination
		}
	}

	in, ok := g.injector.pop()
	if !ok {
		in, g.touchIDs = readInput(g.touchIDs)
	}
	return g.step(dt, in)
}

// step advances the current page by one frame.
func (g *Game) step(dt time.Duration, in frameInput) error {
	start := time.Now()
	if err := g.page.Update(dt, in); err != nil {
		return err
	}
	if g.err != nil {
		return g.err
	}
	if g.next != nil {
		g.page = g.next
		g.landing, _ = g.next.(*Landing)
		g.next = nil
	}
	g.fps.update(dt)
	g.stats.updateTime = time.Since(start)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.page.Draw(screen)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)

	g.stats.drawTime = time.Since(start)
	if g.landing != nil {
		g.stats.drawCommands = g.landing.DrawCommands()
		g.stats.tweens = g.landing.ActiveTweens()
	}
	g.debugLog()
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// SetTestRunner attaches a script after construction.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// Run opens a window and runs the game until it exits.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
