package tactics

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0.0},
		{1.5, 0, 1, 1.0},
		{0.0, 0, 1, 0.0},
		{1.0, 0, 1, 1.0},
	}
	for _, tc := range tests {
		got := clamp(tc.v, tc.min, tc.max)
		if got != tc.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.Name != "Balanced" {
		t.Errorf("DefaultProfile().Name = %q, want %q", p.Name, "Balanced")
	}
	if p.MatchSteps != 3000 {
		t.Errorf("DefaultProfile().MatchSteps = %d, want 3000", p.MatchSteps)
	}
	if p.ProtectLeadPercent != 15 || p.AllOutAttackPercent != 20 {
		t.Errorf("DefaultProfile() phase thresholds = %d/%d, want 15/20", p.ProtectLeadPercent, p.AllOutAttackPercent)
	}
	if p.MinOpenness != DefaultMinOpenness {
		t.Errorf("DefaultProfile().MinOpenness = %f, want %f", p.MinOpenness, DefaultMinOpenness)
	}

	before := p
	p.Validate()
	if p.Name != before.Name || p.ShotLineX != before.ShotLineX || p.CongestionThreshold != before.CongestionThreshold {
		t.Error("Validate changed an already valid profile")
	}
}

func TestValidate(t *testing.T) {
	p := Profile{
		MatchSteps:          0,
		ProtectLeadPercent:  150,
		AllOutAttackPercent: -5,
		MinOpenness:         2,
		PressureRadius:      -1,
		ShotLineX:           1.4,
		DefensiveLineFloor:  0.5,
		CongestionThreshold: 40,
		ChannelSpread:       1,
	}
	p.Validate()

	if p.Name != "Custom" {
		t.Errorf("Name = %q, want Custom", p.Name)
	}
	if p.MatchSteps != 1 {
		t.Errorf("MatchSteps = %d, want 1", p.MatchSteps)
	}
	if p.ProtectLeadPercent != 100 {
		t.Errorf("ProtectLeadPercent = %d, want 100", p.ProtectLeadPercent)
	}
	if p.AllOutAttackPercent != 0 {
		t.Errorf("AllOutAttackPercent = %d, want 0", p.AllOutAttackPercent)
	}
	if p.MinOpenness != 1 {
		t.Errorf("MinOpenness = %f, want 1", p.MinOpenness)
	}
	if p.PressureRadius != 0 {
		t.Errorf("PressureRadius = %f, want 0", p.PressureRadius)
	}
	if p.ShotLineX != 1 {
		t.Errorf("ShotLineX = %f, want 1", p.ShotLineX)
	}
	if p.DefensiveLineFloor != 0 {
		t.Errorf("DefensiveLineFloor = %f, want 0", p.DefensiveLineFloor)
	}
	if p.CongestionThreshold != 22 {
		t.Errorf("CongestionThreshold = %d, want 22", p.CongestionThreshold)
	}
	if p.ChannelSpread != 0.42 {
		t.Errorf("ChannelSpread = %f, want 0.42", p.ChannelSpread)
	}
}
