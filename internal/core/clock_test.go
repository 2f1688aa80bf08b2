package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(time.Minute)
	if got := c.Now().Sub(start); got != time.Minute {
		t.Errorf("after Advance elapsed = %v, expected 1m", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{50, 20 * time.Millisecond},
		{60, time.Second / 60},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := TickInterval(tt.rate); got != tt.want {
			t.Errorf("TickInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

func TestSequenceRand(t *testing.T) {
	r := &SequenceRand{Values: []float64{0.1, 0.5}}
	got := []float64{r.Float64(), r.Float64(), r.Float64()}
	expected := []float64{0.1, 0.5, 0.1}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("value %d = %f, expected %f", i, got[i], expected[i])
		}
	}

	empty := &SequenceRand{}
	if empty.Float64() != 0 {
		t.Error("empty sequence should yield 0")
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed should replay the same sequence")
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "running" || PhaseEnded.String() != "ended" || PhaseIdle.String() != "idle" {
		t.Error("unexpected phase names")
	}
	if !(GameState{Phase: PhaseRunning}).Running() {
		t.Error("Running() should be true in PhaseRunning")
	}
}
