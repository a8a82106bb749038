package agent

import (
	"fmt"
	"strings"

	"github.com/nstehr/pitchside/model"
	"github.com/nstehr/pitchside/tactics"
)

// EventKind identifies a notable change between two consecutive ticks.
type EventKind string

const (
	EventGoalFor         EventKind = "goal_for"
	EventGoalAgainst     EventKind = "goal_against"
	EventTurnover        EventKind = "turnover"
	EventModeChange      EventKind = "mode_change"
	EventPhaseTransition EventKind = "phase_transition"
)

// Event is detected by diffing consecutive observations. Events are logged
// and counted into the match result; they never feed back into decisions.
type Event struct {
	Kind   EventKind
	Tick   int
	Detail string
}

// stateSnapshot captures the diffable fields of one tick.
type stateSnapshot struct {
	score [2]int
	mode  model.GameMode
	phase tactics.Phase

	// possession is the last team seen on the ball. A loose ball does not
	// reset it, so a pass that is intercepted counts as one turnover.
	possession model.Team
}

// takeSnapshot captures the current tick for the next tick's comparison.
func takeSnapshot(obs *model.Observation, phase tactics.Phase, prev *stateSnapshot) stateSnapshot {
	s := stateSnapshot{
		score:      obs.Score,
		mode:       obs.GameMode,
		phase:      phase,
		possession: obs.BallOwnedTeam,
	}
	if s.possession == model.TeamNone && prev != nil {
		s.possession = prev.possession
	}
	return s
}

// detectEvents compares the current tick against the previous snapshot and
// returns any triggered events. Returns nil if prev is nil (first tick).
func detectEvents(cur, prev *stateSnapshot, tick int) []Event {
	if prev == nil {
		return nil
	}
	var events []Event

	if d := cur.score[0] - prev.score[0]; d > 0 {
		events = append(events, Event{
			Kind:   EventGoalFor,
			Tick:   tick,
			Detail: fmt.Sprintf("scored, %d-%d", cur.score[0], cur.score[1]),
		})
	}
	if d := cur.score[1] - prev.score[1]; d > 0 {
		events = append(events, Event{
			Kind:   EventGoalAgainst,
			Tick:   tick,
			Detail: fmt.Sprintf("conceded, %d-%d", cur.score[0], cur.score[1]),
		})
	}

	if prev.possession != model.TeamNone && cur.possession != model.TeamNone && cur.possession != prev.possession {
		detail := "won the ball"
		if cur.possession == model.TeamRight {
			detail = "lost the ball"
		}
		events = append(events, Event{Kind: EventTurnover, Tick: tick, Detail: detail})
	}

	if cur.mode != prev.mode {
		events = append(events, Event{
			Kind:   EventModeChange,
			Tick:   tick,
			Detail: fmt.Sprintf("%s -> %s", prev.mode, cur.mode),
		})
	}

	if cur.phase != prev.phase {
		events = append(events, Event{
			Kind:   EventPhaseTransition,
			Tick:   tick,
			Detail: fmt.Sprintf("%s -> %s", prev.phase, cur.phase),
		})
	}
	return events
}

// formatEvents renders events as one line each, for the end-of-match log.
func formatEvents(events []Event) string {
	if len(events) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "[tick %d] %s: %s\n", e.Tick, e.Kind, e.Detail)
	}
	return b.String()
}
