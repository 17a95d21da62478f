package game

import "testing"

func TestFixedStepWholeTicks(t *testing.T) {
	step := FixedStep{Rate: 1024}
	if n := step.Advance(0.0625); n != 64 {
		t.Errorf("Expected 64 ticks, got %d", n)
	}
}

func TestFixedStepCarriesFraction(t *testing.T) {
	step := FixedStep{Rate: 4}
	if n := step.Advance(0.125); n != 0 {
		t.Errorf("Expected 0 ticks, got %d", n)
	}
	if n := step.Advance(0.125); n != 1 {
		t.Errorf("Expected carried fraction to produce 1 tick, got %d", n)
	}
}

func TestFixedStepCapsStalls(t *testing.T) {
	step := FixedStep{Rate: 500}
	want := int(maxFrameDT * 500)
	if n := step.Advance(5); n != want {
		t.Errorf("Expected stall capped at %d ticks, got %d", want, n)
	}
}

func TestFixedStepIgnoresBadInput(t *testing.T) {
	if n := (&FixedStep{Rate: 0}).Advance(1); n != 0 {
		t.Errorf("Expected 0 ticks with zero rate, got %d", n)
	}
	if n := (&FixedStep{Rate: 60}).Advance(-1); n != 0 {
		t.Errorf("Expected 0 ticks for negative dt, got %d", n)
	}
}
