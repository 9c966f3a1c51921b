package bramble

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing metrics. Only populated when Game.debug is true.
type tickStats struct {
	inputTime      time.Duration
	updateTime     time.Duration
	componentCount int
}

// debugLog prints per-tick timings to stderr.
func (g *Game) debugLog(stats tickStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[bramble] input: %v | update: %v | components: %d\n",
		stats.inputTime, stats.updateTime, stats.componentCount)
}
