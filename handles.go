package celest

// Spinner is a scene object rotated about its vertical axis. The planet group
// and the starfield implement it.
type Spinner interface {
	Yaw() *float64
}

// CaptionStrip is the stack of heading captions. Offset is measured in
// caption-window heights; Opacity applies to the subtitles.
type CaptionStrip interface {
	Offset() *float64
	Opacity() *float64
}

// Vessel is the ship model.
type Vessel interface {
	Height() *float64
	Pitch() *float64
	Scale() *float64
}

// Handles are the scene objects the sequencer animates. Any field may be nil
// while its asset is still loading; animations against a nil handle are
// skipped.
type Handles struct {
	Group    Spinner
	Stars    Spinner
	Captions CaptionStrip
	Ship     Vessel
}
