package simulation

import (
	"log"
	"time"
)

// Loop drives an Engine from a ticker when no render loop is present.
type Loop struct {
	engine      *Engine
	tickRate    int
	reportEvery int
	stopChan    chan struct{}
	ticks       int
}

// NewLoop returns a loop ticking engine tickRate times per second. A
// positive reportEvery logs a status line every that many ticks.
func NewLoop(engine *Engine, tickRate, reportEvery int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		engine:      engine,
		tickRate:    tickRate,
		reportEvery: reportEvery,
		stopChan:    make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.engine.Start(l.engine.Now())
	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			l.engine.Stop()
			log.Println("Simulation loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}

// Ticks returns how many ticks have run. Only safe to call after Run returns.
func (l *Loop) Ticks() int {
	return l.ticks
}

func (l *Loop) tick() {
	l.engine.Tick(l.engine.Now())
	l.ticks++

	if l.reportEvery > 0 && l.ticks%l.reportEvery == 0 {
		snap := l.engine.Snapshot()
		log.Printf("tick %d: %s, %d particles, %d clouds, %d bolts, %d strikes",
			l.ticks, snap.Status, snap.ParticleCount, len(snap.Clouds), len(snap.Bolts), snap.Strikes)
	}
}
