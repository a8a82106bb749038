package agent

import (
	"strings"
	"testing"

	"github.com/nstehr/pitchside/model"
	"github.com/nstehr/pitchside/tactics"
)

// baseObservation returns a minimal observation for testing.
func baseObservation() *model.Observation {
	return &model.Observation{
		BallOwnedTeam:   model.TeamLeft,
		BallOwnedPlayer: 1,
		GameMode:        model.ModeNormal,
		Score:           [2]int{0, 0},
		StepsLeft:       2000,
	}
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestDetectEvents_NoEvents(t *testing.T) {
	obs := baseObservation()
	prev := takeSnapshot(obs, tactics.PhaseNormal, nil)

	// Same state next tick — no events
	cur := takeSnapshot(obs, tactics.PhaseNormal, &prev)
	events := detectEvents(&cur, &prev, 101)
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d: %+v", len(events), events)
	}
}

func TestDetectEvents_NilPrev(t *testing.T) {
	cur := takeSnapshot(baseObservation(), tactics.PhaseNormal, nil)
	events := detectEvents(&cur, nil, 100)
	if events != nil {
		t.Errorf("expected nil events for nil prev, got %+v", events)
	}
}

func TestDetectEvents_Goals(t *testing.T) {
	obs := baseObservation()
	prev := takeSnapshot(obs, tactics.PhaseNormal, nil)

	obs.Score = [2]int{1, 1}
	obs.GameMode = model.ModeKickOff
	cur := takeSnapshot(obs, tactics.PhaseNormal, &prev)
	events := detectEvents(&cur, &prev, 200)

	if countKind(events, EventGoalFor) != 1 || countKind(events, EventGoalAgainst) != 1 {
		t.Errorf("expected one goal each way, got %+v", events)
	}
	if countKind(events, EventModeChange) != 1 {
		t.Errorf("expected mode change to kick-off, got %+v", events)
	}
}

func TestDetectEvents_TurnoverThroughLooseBall(t *testing.T) {
	obs := baseObservation()
	s1 := takeSnapshot(obs, tactics.PhaseNormal, nil)

	// Pass in flight.
	obs.BallOwnedTeam, obs.BallOwnedPlayer = model.TeamNone, -1
	s2 := takeSnapshot(obs, tactics.PhaseNormal, &s1)
	if events := detectEvents(&s2, &s1, 2); countKind(events, EventTurnover) != 0 {
		t.Errorf("loose ball should not be a turnover, got %+v", events)
	}

	// Intercepted.
	obs.BallOwnedTeam, obs.BallOwnedPlayer = model.TeamRight, 4
	s3 := takeSnapshot(obs, tactics.PhaseNormal, &s2)
	events := detectEvents(&s3, &s2, 3)
	if countKind(events, EventTurnover) != 1 {
		t.Fatalf("expected turnover, got %+v", events)
	}
	if events[0].Detail != "lost the ball" {
		t.Errorf("Detail = %q, want %q", events[0].Detail, "lost the ball")
	}
}

func TestDetectEvents_PhaseTransition(t *testing.T) {
	obs := baseObservation()
	prev := takeSnapshot(obs, tactics.PhaseNormal, nil)
	cur := takeSnapshot(obs, tactics.PhaseProtectLead, &prev)

	events := detectEvents(&cur, &prev, 2600)
	if countKind(events, EventPhaseTransition) != 1 {
		t.Fatalf("expected phase transition, got %+v", events)
	}
	if !strings.Contains(events[0].Detail, "protect_lead") {
		t.Errorf("Detail = %q, want it to name the new phase", events[0].Detail)
	}
}

func TestFormatEvents(t *testing.T) {
	if got := formatEvents(nil); got != "" {
		t.Errorf("formatEvents(nil) = %q, want empty", got)
	}
	got := formatEvents([]Event{{Kind: EventGoalFor, Tick: 10, Detail: "scored, 1-0"}})
	if got != "[tick 10] goal_for: scored, 1-0\n" {
		t.Errorf("formatEvents = %q", got)
	}
}
