// Package scene renders the Celest orbit page with [Ebitengine] and routes
// input into a celest.Sequencer.
//
// The 3D content is a small tree of [Body] values projected through a fixed
// perspective [Camera]: a planet group, a starfield and the ship. Planets
// and ship faces are depth-sorted each frame and drawn with the vector
// package and DrawTriangles.
//
// [Game] switches between the [Landing] page and a [DestinationPage] when
// the sequencer navigates, and remembers visits in a [VisitStore] backed by
// [gdata].
//
// Scripted runs use [LoadTestScript] and JSON steps (wheel, click, wait,
// screenshot) replayed through injected input.
//
// [Ebitengine]: https://ebitengine.org
// [gdata]: https://github.com/quasilyte/gdata
package scene
