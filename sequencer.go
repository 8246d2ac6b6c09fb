package celest

import "time"

// WheelEvent is one raw scroll event. Direction is carried but every event
// that passes the gate advances the rotation forward.
type WheelEvent struct {
	DeltaX, DeltaY float64
}

// EventType identifies a sequencer notification.
type EventType uint8

const (
	EventInputDropped        EventType = iota // wheel event ignored while locked
	EventStepStarted                          // rotation step dispatched
	EventStepFinished                         // primary rotation done, lock released
	EventCaptionReset                         // caption strip scrolled back to slot 0
	EventSelected                             // planet selected, ship leaving
	EventNavigated                            // route change accepted
	EventNavigationCancelled                  // route change skipped or failed, lock released
)

var eventNames = [...]string{
	EventInputDropped:        "input-dropped",
	EventStepStarted:         "step-started",
	EventStepFinished:        "step-finished",
	EventCaptionReset:        "caption-reset",
	EventSelected:            "selected",
	EventNavigated:           "navigated",
	EventNavigationCancelled: "navigation-cancelled",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event describes a sequencer transition.
type Event struct {
	Type  EventType
	At    time.Duration // scheduler time
	Steps int
	Slot  int
	Angle float64

	// Ship motion drawn for EventStepStarted; valid when HasShip is true.
	HasShip    bool
	ShipOffset float64
	ShipTilt   float64

	// Destination is set for selection and navigation events.
	Destination Destination
	Err         error
}

// RotationState is a snapshot of the sequencer.
type RotationState struct {
	TargetAngle float64
	SlotIndex   int
	Steps       int
	Locked      bool
}

// SequencerConfig configures NewSequencer. A zero Config selects
// DefaultConfig.
type SequencerConfig struct {
	Config       Config
	InitialAngle float64
	Rand         Rand
	Navigator    Navigator
	// Timeline lets the sequencer share a timeline with other scene
	// animations. A new one is created when nil.
	Timeline *Timeline
	OnEvent  func(Event)
}

// Sequencer turns wheel input into quantised rotation steps and drives the
// landing scene's tweens. All methods must be called from the game loop
// goroutine.
type Sequencer struct {
	cfg      Config
	ease     easings
	timeline *Timeline
	debounce *Debouncer
	rng      Rand
	nav      Navigator
	handles  Handles
	onEvent  func(Event)

	initial float64
	angle   float64
	slot    int
	steps   int

	// locked is set synchronously by every gated operation before any tween
	// is scheduled. lockID identifies the holder so a stale completion can
	// never release a later lock.
	locked bool
	lockID uint64
}

// NewSequencer creates a sequencer at InitialAngle, slot 0, unlocked.
func NewSequencer(sc SequencerConfig) (*Sequencer, error) {
	cfg := sc.Config
	if cfg.Debounce == 0 && len(cfg.Routes) == 0 {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tl := sc.Timeline
	if tl == nil {
		tl = NewTimeline()
	}
	rng := sc.Rand
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	s := &Sequencer{
		cfg:      cfg,
		ease:     cfg.resolveEasings(),
		timeline: tl,
		rng:      rng,
		nav:      sc.Navigator,
		onEvent:  sc.OnEvent,
		initial:  sc.InitialAngle,
		angle:    sc.InitialAngle,
	}
	s.debounce = NewDebouncer(tl.Scheduler(), cfg.Debounce, func() { s.PerformStep() })
	return s, nil
}

// Config returns the active configuration.
func (s *Sequencer) Config() Config { return s.cfg }

// Timeline returns the timeline the sequencer schedules on.
func (s *Sequencer) Timeline() *Timeline { return s.timeline }

// SetHandles installs the scene handles.
func (s *Sequencer) SetHandles(h Handles) { s.handles = h }

// SetShip installs the ship handle once its model has loaded.
func (s *Sequencer) SetShip(v Vessel) { s.handles.Ship = v }

// SetNavigator replaces the navigator.
func (s *Sequencer) SetNavigator(n Navigator) { s.nav = n }

// State returns the current rotation state.
func (s *Sequencer) State() RotationState {
	return RotationState{
		TargetAngle: s.angle,
		SlotIndex:   s.slot,
		Steps:       s.steps,
		Locked:      s.locked,
	}
}

// Locked reports whether a rotation or navigation sequence is in flight.
func (s *Sequencer) Locked() bool { return s.locked }

// Update advances timers and tweens by dt.
func (s *Sequencer) Update(dt time.Duration) {
	s.timeline.Update(dt)
}

// OnInput feeds one raw wheel event through the debounce gate. Input that
// arrives while locked is dropped without touching the pending timer.
func (s *Sequencer) OnInput(ev WheelEvent) {
	if s.locked {
		s.emit(Event{Type: EventInputDropped})
		return
	}
	s.debounce.Trigger()
}

// PerformStep advances the rotation by one slot and dispatches the step's
// tweens. It reports false, with no effect, while locked.
func (s *Sequencer) PerformStep() bool {
	if s.locked {
		return false
	}
	id := s.lock()

	s.steps++
	s.angle = s.initial + float64(s.steps)*RevolutionStep
	s.slot = (s.slot + 1) % SlotCount

	cfg := &s.cfg
	h := s.handles
	ev := Event{Type: EventStepStarted}

	if c := h.Captions; c != nil {
		s.timeline.Play(By(c.Offset(), -1, cfg.RotationDuration, s.ease.rotation))
		s.timeline.Play(FromTo(c.Opacity(), 0, 1, cfg.CaptionFadeDuration, s.ease.captionFade))
	}

	finished := func() {
		if s.release(id) {
			s.emit(Event{Type: EventStepFinished})
		}
	}
	if g := h.Group; g != nil {
		tw := To(g.Yaw(), s.angle, cfg.RotationDuration, s.ease.rotation)
		tw.OnComplete = finished
		s.timeline.Play(tw)
	} else {
		s.timeline.After(cfg.RotationDuration, finished)
	}
	if st := h.Stars; st != nil {
		s.timeline.Play(To(st.Yaw(), s.angle, cfg.RotationDuration, s.ease.rotation))
	}

	resetCaptions := s.slot == 0 && h.Captions != nil
	if resetCaptions {
		s.timeline.Play(To(h.Captions.Offset(), 0, cfg.RotationDuration, s.ease.captionReset))
	}

	if v := h.Ship; v != nil {
		ev.HasShip = true
		ev.ShipOffset, ev.ShipTilt = s.launchShip(v)
	}

	s.emit(ev)
	if resetCaptions {
		s.emit(Event{Type: EventCaptionReset})
	}
	return true
}

// launchShip starts the independent bob and tilt tweens. Each settles back
// to its rest value when it completes.
func (s *Sequencer) launchShip(v Vessel) (offset, tilt float64) {
	cfg := &s.cfg
	offset = (s.rng.Float64()*2 - 1) * cfg.ShipBobRange
	tilt = cfg.ShipTilts[s.rng.IntN(len(cfg.ShipTilts))]

	bob := To(v.Height(), offset, cfg.ShipBobDuration, s.ease.ship)
	bob.OnComplete = func() {
		s.timeline.Play(To(v.Height(), cfg.ShipRestHeight, cfg.ShipRestDuration, s.ease.ship))
	}
	s.timeline.Play(bob)

	pitch := To(v.Pitch(), tilt, cfg.ShipBobDuration, s.ease.ship)
	pitch.OnComplete = func() {
		s.timeline.Play(To(v.Pitch(), cfg.ShipRestPitch, cfg.ShipRestDuration, s.ease.ship))
	}
	s.timeline.Play(pitch)
	return offset, tilt
}

// OnPlanetSelected sends the ship towards destination index and navigates
// after the shrink settles. It is a no-op without a ship, while locked, or
// for an index outside the route table.
func (s *Sequencer) OnPlanetSelected(index int) bool {
	v := s.handles.Ship
	if v == nil || s.locked || index < 0 || index >= len(s.cfg.Routes) {
		return false
	}
	id := s.lock()
	cfg := &s.cfg
	dest := cfg.Routes[index]
	restScale := *v.Scale()

	s.emit(Event{Type: EventSelected, Destination: dest})

	shrink := To(v.Scale(), 0, cfg.ShrinkDuration, s.ease.shrink)
	shrink.OnComplete = func() {
		s.timeline.After(cfg.SettleDelay, func() {
			s.navigate(id, dest, v, restScale)
		})
	}
	s.timeline.Play(shrink)
	s.timeline.Play(To(v.Height(), cfg.DescentHeight, cfg.DescentDuration, s.ease.ship))
	return true
}

// navigate performs the route change. On success the lock is kept: the new
// page replaces this sequencer. Otherwise the ship returns and the lock is
// released so the landing page stays responsive.
func (s *Sequencer) navigate(id uint64, dest Destination, v Vessel, restScale float64) {
	var err error
	switch {
	case !s.cfg.NavigationEnabled:
	case s.nav == nil:
	default:
		err = s.nav.Navigate(dest)
		if err == nil {
			s.emit(Event{Type: EventNavigated, Destination: dest})
			return
		}
	}

	cfg := &s.cfg
	s.timeline.Play(To(v.Scale(), restScale, cfg.ShipRestDuration, s.ease.ship))
	s.timeline.Play(To(v.Height(), cfg.ShipRestHeight, cfg.ShipRestDuration, s.ease.ship))
	s.release(id)
	s.emit(Event{Type: EventNavigationCancelled, Destination: dest, Err: err})
}

// OnShipClicked shrinks the ship away. It ignores the lock and changes no
// sequencer state.
func (s *Sequencer) OnShipClicked() bool {
	v := s.handles.Ship
	if v == nil {
		return false
	}
	s.timeline.Play(To(v.Scale(), 0, s.cfg.ShrinkDuration, s.ease.ship))
	return true
}

func (s *Sequencer) lock() uint64 {
	s.locked = true
	s.lockID++
	return s.lockID
}

// release unlocks only if id still holds the lock.
func (s *Sequencer) release(id uint64) bool {
	if !s.locked || s.lockID != id {
		return false
	}
	s.locked = false
	return true
}

func (s *Sequencer) emit(ev Event) {
	if s.onEvent == nil {
		return
	}
	ev.At = s.timeline.Scheduler().Now()
	ev.Steps = s.steps
	ev.Slot = s.slot
	ev.Angle = s.angle
	s.onEvent(ev)
}
