package model

import "testing"

func TestInOwnBox(t *testing.T) {
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{-0.9, 0}, true},
		{Vec2{-0.75, 0.2}, true},
		{Vec2{-0.75, 0.3}, false},
		{Vec2{-0.6, 0}, false},
		{Vec2{0.9, 0}, false},
	}
	for _, tc := range tests {
		if got := InOwnBox(tc.p); got != tc.want {
			t.Errorf("InOwnBox(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestInOwnGoalArea(t *testing.T) {
	if !InOwnGoalArea(Vec2{-0.95, 0.1}) {
		t.Error("expected (-0.95, 0.1) inside the goal area")
	}
	if InOwnGoalArea(Vec2{-0.8, 0}) {
		t.Error("expected (-0.8, 0) outside the goal area")
	}
	if InOwnGoalArea(Vec2{-0.95, 0.35}) {
		t.Error("expected (-0.95, 0.35) outside the goal area")
	}
}

func TestSameFlank(t *testing.T) {
	if !SameFlank(-0.2, -1) {
		t.Error("y=-0.2 should be on the top flank")
	}
	if SameFlank(0.2, -1) {
		t.Error("y=0.2 should not be on the top flank")
	}
	if SameFlank(0, 1) {
		t.Error("y=0 belongs to neither flank")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, -0.2, 0.2, 0.2},
		{-0.5, -0.2, 0.2, -0.2},
		{0.1, -0.2, 0.2, 0.1},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestClampToPitch(t *testing.T) {
	got := ClampToPitch(Vec2{1.5, -0.9})
	if got != (Vec2{1, -0.42}) {
		t.Errorf("ClampToPitch = %v, want {1 -0.42}", got)
	}
}

func TestVecLerpAndDist(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{3, 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %f, want 5", d)
	}
	if m := a.Lerp(b, 0.5); m != (Vec2{1.5, 2}) {
		t.Errorf("Lerp(0.5) = %v, want {1.5 2}", m)
	}
}
