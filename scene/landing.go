package scene

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/celest"
)

// introFade is how long the greeting takes to appear after the ship leaves.
const introFade = time.Second

// LandingOptions configures a landing page.
type LandingOptions struct {
	Config celest.Config
	Width  int
	Height int
	Seed   uint64
	Fonts  *Fonts
	// Navigator receives accepted planet selections. May be nil.
	Navigator celest.Navigator
	// LastVisited is highlighted in the navbar.
	LastVisited string
	// ShipLoadDelay is how long after creation the ship appears and becomes
	// controllable. The rotation sequence runs without it until then.
	ShipLoadDelay time.Duration
	// Debug logs every sequencer event.
	Debug bool
}

// Landing is the orbit page: a rotating planet group, a starfield, the
// ship and the caption strip, driven by a celest.Sequencer.
type Landing struct {
	seq      *celest.Sequencer
	timeline *celest.Timeline

	width, height float64
	fonts         *Fonts
	render        renderer
	pointer       pointerState

	group   *Body
	planets [3]*Body
	stars   *Body
	ship    *Body

	captions *CaptionStrip
	navbar   *Navbar

	shipReady  bool
	introAlpha float64
	debug      bool

	// events is the recent sequencer event history, newest last.
	events []celest.Event
}

// maxEventHistory bounds Landing.events.
const maxEventHistory = 64

// NewLanding builds the scene and its sequencer.
func NewLanding(opts LandingOptions) (*Landing, error) {
	if opts.Fonts == nil {
		return nil, fmt.Errorf("scene: landing needs fonts")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid landing size %dx%d", opts.Width, opts.Height)
	}

	l := &Landing{
		width:    float64(opts.Width),
		height:   float64(opts.Height),
		fonts:    opts.Fonts,
		captions: NewCaptionStrip(DefaultCaptions),
		debug:    opts.Debug,
	}
	l.render.cam = NewCamera(l.width, l.height)

	rng := celest.NewRand(opts.Seed)
	geo := rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))
	l.group, l.planets = buildGroup(geo)
	l.stars = buildStarfield(geo)
	l.ship = buildShip()

	l.timeline = celest.NewTimeline()
	seq, err := celest.NewSequencer(celest.SequencerConfig{
		Config:       opts.Config,
		InitialAngle: GroupYaw,
		Rand:         rng,
		Navigator:    opts.Navigator,
		Timeline:     l.timeline,
		OnEvent:      l.onEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	l.seq = seq
	seq.SetHandles(celest.Handles{
		Group:    spinner{l.group},
		Stars:    spinner{l.stars},
		Captions: l.captions,
	})

	l.navbar = &Navbar{
		Title:       "Celest",
		Links:       seq.Config().Routes,
		LastVisited: opts.LastVisited,
	}

	l.timeline.After(opts.ShipLoadDelay, l.installShip)
	return l, nil
}

// installShip makes the ship visible and hands it to the sequencer.
func (l *Landing) installShip() {
	l.ship.Visible = true
	l.shipReady = true
	l.seq.SetShip(vessel{l.ship})
	if l.debug {
		log.Printf("[celest] ship ready")
	}
}

// Sequencer returns the page's sequencer.
func (l *Landing) Sequencer() *celest.Sequencer { return l.seq }

// Captions returns the caption strip.
func (l *Landing) Captions() *CaptionStrip { return l.captions }

// ShipReady reports whether the ship has been installed.
func (l *Landing) ShipReady() bool { return l.shipReady }

// Events returns the recent sequencer events, oldest first.
func (l *Landing) Events() []celest.Event { return l.events }

// ActiveTweens returns the number of running tweens.
func (l *Landing) ActiveTweens() int { return l.timeline.Active() }

// DrawCommands returns the number of commands in the latest projection.
func (l *Landing) DrawCommands() int { return len(l.render.commands) }

func (l *Landing) onEvent(ev celest.Event) {
	l.events = append(l.events, ev)
	if len(l.events) > maxEventHistory {
		l.events = l.events[len(l.events)-maxEventHistory:]
	}
	if !l.debug {
		return
	}
	switch ev.Type {
	case celest.EventStepStarted:
		log.Printf("[celest] %s step=%d slot=%d angle=%.4f ship=%v offset=%.3f tilt=%.3f",
			ev.Type, ev.Steps, ev.Slot, ev.Angle, ev.HasShip, ev.ShipOffset, ev.ShipTilt)
	case celest.EventSelected, celest.EventNavigated:
		log.Printf("[celest] %s %s (%s)", ev.Type, ev.Destination.Name, ev.Destination.Path)
	case celest.EventNavigationCancelled:
		log.Printf("[celest] %s %s: %v", ev.Type, ev.Destination.Name, ev.Err)
	default:
		log.Printf("[celest] %s slot=%d", ev.Type, ev.Slot)
	}
}

// Update advances the page by dt with one frame of input.
func (l *Landing) Update(dt time.Duration, in frameInput) error {
	l.processInput(in)

	spin := PlanetSpin * dt.Seconds() * 60
	for _, p := range l.planets {
		p.Rotation.Y += spin
	}

	l.seq.Update(dt)
	return nil
}

// processInput routes wheel events to the debounce gate and clicks to the
// planet or ship handlers.
func (l *Landing) processInput(in frameInput) {
	if in.wheelX != 0 || in.wheelY != 0 {
		l.seq.OnInput(celest.WheelEvent{DeltaX: in.wheelX, DeltaY: in.wheelY})
	}

	if in.pressed || l.pointer.down {
		l.render.build(l.group, l.ship)
	}
	target, clicked := l.pointer.update(in.x, in.y, in.pressed, l.render.hitTest)
	if !clicked {
		return
	}
	switch target.kind {
	case targetPlanet:
		l.seq.OnPlanetSelected(target.index)
	case targetShip:
		if l.seq.OnShipClicked() {
			l.timeline.Play(celest.To(&l.introAlpha, 1, introFade, ease.OutQuad))
		}
	}
}

// Draw renders the page.
func (l *Landing) Draw(screen *ebiten.Image) {
	screen.Fill(backdropColor)
	l.render.build(l.group, l.ship)
	l.render.drawStars(screen, l.stars)
	l.render.submit(screen)

	l.captions.Draw(screen, l.fonts, l.width, l.height)
	drawDivider(screen, l.width, l.height)
	l.navbar.Draw(screen, l.fonts, l.width, l.height)
	drawIntro(screen, l.fonts, l.width, l.height, l.introAlpha)
}

// PlanetAt returns the screen centre of planet i from the latest projection.
func (l *Landing) PlanetAt(i int) (x, y float64, ok bool) {
	l.render.build(l.group, l.ship)
	h := l.render.planetHits[i]
	return h.circle.CenterX, h.circle.CenterY, h.visible
}
