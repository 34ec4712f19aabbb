package lumen

import (
	"time"

	"github.com/charmbracelet/log"
)

// frameStats holds per-frame timing and spawn counts.
// Only reported when a Glow is built WithStats.
type frameStats struct {
	frames    uint64
	spawns    uint64
	last      time.Duration
	total     time.Duration
	slowest   time.Duration
	lastSpawn uint64 // spawns at the previous report
}

func (s *frameStats) record(d time.Duration) {
	s.frames++
	s.last = d
	s.total += d
	s.slowest = max(s.slowest, d)
}

// mean returns the average frame time so far.
func (s *frameStats) mean() time.Duration {
	if s.frames == 0 {
		return 0
	}
	return s.total / time.Duration(s.frames)
}

// log writes one stats line at debug level.
func (s *frameStats) log(l *log.Logger, f *Field) {
	l.Debug("glow frame",
		"frame", s.frames,
		"state", f.State(),
		"alive", f.Alive(),
		"cap", f.Cap(),
		"spawns", s.spawns-s.lastSpawn,
		"last", s.last,
		"mean", s.mean(),
		"slowest", s.slowest,
	)
	s.lastSpawn = s.spawns
}
