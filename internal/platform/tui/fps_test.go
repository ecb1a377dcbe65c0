package tui

import (
	"testing"
	"time"
)

func TestFPSMeterAverage(t *testing.T) {
	m := NewFPSMeter(60, nil)

	if _, ok := m.Average(); ok {
		t.Error("Average should not be available before any samples")
	}

	// First sample only anchors the clock
	now := time.Unix(0, 0)
	m.Sample(now)
	if _, ok := m.Average(); ok {
		t.Error("Average should not be available after the anchor sample")
	}

	// Perfect 60 Hz cadence
	for i := 0; i < 120; i++ {
		now = now.Add(time.Second / 60)
		m.Sample(now)
	}

	avg, ok := m.Average()
	if !ok {
		t.Fatal("Average should be available")
	}
	if avg < 59.0 || avg > 61.0 {
		t.Errorf("Average = %v, want about 60", avg)
	}
}

func TestFPSMeterSlowTicks(t *testing.T) {
	m := NewFPSMeter(60, nil)

	now := time.Unix(0, 0)
	m.Sample(now)
	// 30 Hz cadence: the meter reports what it sees
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second / 30)
		m.Sample(now)
	}

	avg, ok := m.Average()
	if !ok {
		t.Fatal("Average should be available")
	}
	if avg < 29.0 || avg > 31.0 {
		t.Errorf("Average = %v, want about 30", avg)
	}
}

func TestFPSMeterReset(t *testing.T) {
	m := NewFPSMeter(60, nil)

	now := time.Unix(0, 0)
	m.Sample(now)
	m.Sample(now.Add(time.Second / 60))
	if _, ok := m.Average(); !ok {
		t.Fatal("Average should be available")
	}

	m.Reset()
	if _, ok := m.Average(); ok {
		t.Error("Average should not survive a reset")
	}
}
