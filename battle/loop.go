package battle

import (
	"log"
	"time"
)

// Loop drives a Simulation in real time from a ticker. Each tick steps the
// simulation by exactly 1/tickRate seconds.
type Loop struct {
	sim             *Simulation
	tickRate        int
	maxTicks        int
	stopWhenCleared bool
	onTick          func(*Simulation)
	stopChan        chan struct{}
}

type LoopOption func(*Loop)

// WithMaxTicks stops the loop after n ticks; zero runs until Stop.
func WithMaxTicks(n int) LoopOption {
	return func(l *Loop) { l.maxTicks = n }
}

// WithStopWhenCleared stops the loop once no targets remain.
func WithStopWhenCleared() LoopOption {
	return func(l *Loop) { l.stopWhenCleared = true }
}

// WithTickHook calls fn after every tick.
func WithTickHook(fn func(*Simulation)) LoopOption {
	return func(l *Loop) { l.onTick = fn }
}

func NewLoop(sim *Simulation, tickRate int, opts ...LoopOption) *Loop {
	l := &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run blocks until Stop is called or a stop condition is met, and returns
// the number of ticks run.
func (l *Loop) Run() int {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Battle loop started at %d ticks/second", l.tickRate)

	ticks := 0
	for {
		select {
		case <-l.stopChan:
			log.Println("Battle loop stopped")
			return ticks
		case <-ticker.C:
			l.tick()
			ticks++
			if l.done(ticks) {
				log.Printf("Battle loop finished after %d ticks", ticks)
				return ticks
			}
		}
	}
}

// Stop ends Run. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}

func (l *Loop) tick() {
	l.sim.Step(1 / float64(l.tickRate))
	if l.onTick != nil {
		l.onTick(l.sim)
	}
}

func (l *Loop) done(ticks int) bool {
	if l.maxTicks > 0 && ticks >= l.maxTicks {
		return true
	}
	return l.stopWhenCleared && l.sim.Cleared()
}

// RunFixed steps sim n times as fast as possible, stopping early once no
// targets remain when untilCleared is set. It returns the ticks run.
func RunFixed(sim *Simulation, n int, dt float64, untilCleared bool) int {
	for i := 0; i < n; i++ {
		sim.Step(dt)
		if untilCleared && sim.Cleared() {
			return i + 1
		}
	}
	return n
}
