package scene

// syntheticEvent represents a single injected input event. Screen
// coordinates are used, identical to real mouse input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	wheelY  float64
}

// injector queues synthetic input. One event is consumed per frame and
// real input is skipped on frames that consume one.
type injector struct {
	queue []syntheticEvent
	// last pointer state, so wheel events keep the cursor and button as they were
	lastX, lastY float64
	down         bool
}

// InjectPress queues a pointer press at the given screen coordinates.
func (q *injector) InjectPress(x, y float64) {
	q.queue = append(q.queue, syntheticEvent{x: x, y: y, pressed: true})
	q.lastX, q.lastY, q.down = x, y, true
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (q *injector) InjectRelease(x, y float64) {
	q.queue = append(q.queue, syntheticEvent{x: x, y: y})
	q.lastX, q.lastY, q.down = x, y, false
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (q *injector) InjectClick(x, y float64) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectWheel queues a vertical wheel delta at the last pointer position.
// A held button stays held. Consumes one frame.
func (q *injector) InjectWheel(dy float64) {
	q.queue = append(q.queue, syntheticEvent{x: q.lastX, y: q.lastY, pressed: q.down, wheelY: dy})
}

// Pending returns the number of queued events.
func (q *injector) Pending() int {
	return len(q.queue)
}

// pop removes the next event and converts it to frame input.
func (q *injector) pop() (frameInput, bool) {
	if len(q.queue) == 0 {
		return frameInput{}, false
	}
	evt := q.queue[0]
	copy(q.queue, q.queue[1:])
	q.queue = q.queue[:len(q.queue)-1]
	return frameInput{x: evt.x, y: evt.y, pressed: evt.pressed, wheelY: evt.wheelY}, true
}
