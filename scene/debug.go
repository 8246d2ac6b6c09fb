package scene

import (
	"fmt"
	"os"
	"time"
)

// debugInterval is how many frames pass between stat lines.
const debugInterval = 60

// debugStats holds per-frame timing and draw metrics.
// Only reported when RunConfig.Debug is true.
type debugStats struct {
	frame        uint64
	updateTime   time.Duration
	drawTime     time.Duration
	drawCommands int
	tweens       int
}

// debugLog prints timing and draw stats to stderr once per interval.
func (g *Game) debugLog() {
	g.stats.frame++
	if !g.cfg.Debug || g.stats.frame%debugInterval != 0 {
		return
	}
	s := g.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[celest] frame %d | update: %v | draw: %v | commands: %d | tweens: %d\n",
		s.frame, s.updateTime, s.drawTime, s.drawCommands, s.tweens)
}
