package core

import (
	"math"
	"testing"
	"time"
)

func TestPacerDue(t *testing.T) {
	p := NewPacer(2)
	start := time.Unix(100, 0)
	if p.Due(start) {
		t.Fatal("first call only starts the clock")
	}
	if p.Due(start.Add(499 * time.Millisecond)) {
		t.Fatal("not due before the interval elapses")
	}
	if !p.Due(start.Add(500 * time.Millisecond)) {
		t.Fatal("expected due after 500ms at 2 gps")
	}
	if p.Due(start.Add(600 * time.Millisecond)) {
		t.Fatal("Due must restart the interval")
	}
}

func TestPacerRestart(t *testing.T) {
	p := NewPacer(1)
	start := time.Unix(0, 0)
	p.Restart(start)
	p.Restart(start.Add(900 * time.Millisecond))
	if p.Due(start.Add(1500 * time.Millisecond)) {
		t.Fatal("restart should push the next generation back")
	}
	if !p.Due(start.Add(1900 * time.Millisecond)) {
		t.Fatal("expected due one interval after restart")
	}
}

func TestPacerSpeedBounds(t *testing.T) {
	p := NewPacer(1)
	for i := 0; i < 50; i++ {
		p.Faster()
	}
	if p.Interval() > minInterval || p.Interval() < minInterval*7/10 {
		t.Fatalf("interval %v escaped the lower bound", p.Interval())
	}
	for i := 0; i < 50; i++ {
		p.Slower()
	}
	if p.Interval() < maxInterval || p.Interval() > maxInterval*14/10 {
		t.Fatalf("interval %v escaped the upper bound", p.Interval())
	}
}

func TestPacerSetSpeed(t *testing.T) {
	p := NewPacer(4)
	if math.Abs(p.Speed()-4) > 1e-9 {
		t.Fatalf("speed %f, expected 4", p.Speed())
	}
	p.SetSpeed(0)
	p.SetSpeed(-2)
	if math.Abs(p.Speed()-4) > 1e-9 {
		t.Fatalf("non-positive speeds must be ignored, got %f", p.Speed())
	}
	if NewPacer(0).Interval() != time.Second {
		t.Fatal("invalid initial speed should fall back to one generation per second")
	}
}

func TestPacerStepFactors(t *testing.T) {
	near := func(got, want time.Duration) bool {
		d := got - want
		return d > -time.Microsecond && d < time.Microsecond
	}
	p := NewPacer(1)
	p.Faster()
	if !near(p.Interval(), 700*time.Millisecond) {
		t.Fatalf("Faster from 1s gave %v, expected 700ms", p.Interval())
	}
	p.Slower()
	if !near(p.Interval(), 980*time.Millisecond) {
		t.Fatalf("Slower from 700ms gave %v, expected 980ms", p.Interval())
	}
}
