// Package stats measures how long a load took and how much it allocated.
package stats

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats is a snapshot of elapsed time and memory allocation taken at creation.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// Delta is the difference between now and a PerfStats snapshot.
type Delta struct {
	Elapsed   time.Duration
	Allocated uint64
	GCs       uint32
}

// NewPerfStats creates a new snapshot of the current time and amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Since returns the difference between the state now and as it was when p was created.
func (p *PerfStats) Since() Delta {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	return Delta{
		Elapsed:   time.Since(p.startTime),
		Allocated: m.TotalAlloc - p.startMem,
		GCs:       m.NumGC - p.startGc,
	}
}

// Log logs the difference between now and when p was created at debug level.
func (p *PerfStats) Log(prefix string) {
	d := p.Since()
	log.Debugf("%s took %0.3fs allocating %0.2f Mb (%v GC events)", prefix, d.Elapsed.Seconds(),
		float64(d.Allocated)/1024/1024, d.GCs)
}
