package tactics

import (
	"testing"

	"github.com/nstehr/pitchside/model"
)

func TestDispatcherCoversEveryRole(t *testing.T) {
	d := NewDispatcher()
	for r := model.Role(0); r < model.RoleCount; r++ {
		if _, ok := d.Lookup(r); !ok {
			t.Errorf("no policy for %v", r)
		}
	}
}

func TestDispatcherUnknownRoleIdles(t *testing.T) {
	d := NewDispatcher()
	obs := kickoffObs()
	s := situation(obs, cf, PhaseNormal)
	for _, r := range []model.Role{-1, model.RoleCount, 42} {
		if _, ok := d.Lookup(r); ok {
			t.Errorf("Lookup(%v) found a policy", r)
		}
		if got := d.Decide(r, s); got != model.ActionIdle {
			t.Errorf("Decide(%v) = %v, want idle", r, got)
		}
	}
}
