// Package celest is the scroll rotation sequencer behind the Celest orbit
// landing page.
//
// A [Sequencer] turns bursts of wheel input into discrete rotation steps of
// a three-planet group. Each step turns the group and the starfield by
// exactly [RevolutionStep], scrolls the caption strip one slot, and sends the
// ship on a short randomized bob. While a step runs the sequencer is locked
// and further input is dropped.
//
// # Quick start
//
// Give the sequencer handles onto the scene and advance it once per frame:
//
//	seq, err := celest.NewSequencer(celest.SequencerConfig{
//		Config:       celest.DefaultConfig(),
//		InitialAngle: 4.715,
//		Navigator:    nav,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	seq.SetHandles(celest.Handles{Group: group, Stars: stars, Captions: captions})
//
//	// every frame
//	seq.OnInput(celest.WheelEvent{DeltaY: dy}) // when the wheel moved
//	seq.Update(dt)
//
// # Time
//
// Nothing runs on its own goroutine. A [Timeline] owns a [Scheduler] (the
// virtual clock behind debounce and settle delays) and the running [Tween]s,
// and both advance only inside [Timeline.Update]. Tests step it by hand.
//
// # Tweens
//
// Property animation uses [gween]. A [Tween] writes into a *float64, snaps
// to its exact target on the last frame and then calls OnComplete once.
// Easing curves are chosen by name in the YAML config (see [Easing]).
//
// # Configuration
//
// [Config] carries every timing and ship constant. [LoadConfig] reads it
// from YAML over [DefaultConfig].
//
// The Ebitengine scene that renders all of this lives in celest/scene.
//
// [gween]: https://github.com/tanema/gween
package celest
