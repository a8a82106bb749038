package model

import (
	"errors"
	"fmt"
)

// RawObservation mirrors the simulator's raw per-agent observation as the
// bridge serializes it. Arrays of pairs arrive as [][]float64. Optional
// arrays may be absent or null.
type RawObservation struct {
	Ball            []float64 `json:"ball"`
	BallDirection   []float64 `json:"ball_direction,omitempty"`
	BallOwnedTeam   int       `json:"ball_owned_team"`
	BallOwnedPlayer int       `json:"ball_owned_player"`

	LeftTeam            [][]float64 `json:"left_team"`
	LeftTeamDirection   [][]float64 `json:"left_team_direction,omitempty"`
	LeftTeamActive      []bool      `json:"left_team_active,omitempty"`
	LeftTeamRoles       []int       `json:"left_team_roles,omitempty"`
	LeftTeamTiredFactor []float64   `json:"left_team_tired_factor,omitempty"`
	LeftTeamYellowCard  []bool      `json:"left_team_yellow_card,omitempty"`

	RightTeam            [][]float64 `json:"right_team"`
	RightTeamDirection   [][]float64 `json:"right_team_direction,omitempty"`
	RightTeamActive      []bool      `json:"right_team_active,omitempty"`
	RightTeamRoles       []int       `json:"right_team_roles,omitempty"`
	RightTeamTiredFactor []float64   `json:"right_team_tired_factor,omitempty"`
	RightTeamYellowCard  []bool      `json:"right_team_yellow_card,omitempty"`

	Active        int   `json:"active"`
	StickyActions []int `json:"sticky_actions,omitempty"`
	GameMode      int   `json:"game_mode"`
	Score         []int `json:"score"`
	StepsLeft     int   `json:"steps_left"`
}

// Adapter turns the simulator's raw per-agent observations into one
// team-wide Observation plus one AgentView per controlled agent.
type Adapter interface {
	Adapt(raws []RawObservation) (Observation, []AgentView, error)
}

var ErrNoObservations = errors.New("no observations")

// RawAdapter takes the team-wide fields from the first raw observation; the
// simulator sends identical copies of them to every controlled agent.
type RawAdapter struct{}

func (RawAdapter) Adapt(raws []RawObservation) (Observation, []AgentView, error) {
	if len(raws) == 0 {
		return Observation{}, nil, ErrNoObservations
	}
	first := raws[0]

	ball, err := vec(first.Ball)
	if err != nil {
		return Observation{}, nil, fmt.Errorf("ball: %w", err)
	}
	var ballDir Vec2
	if len(first.BallDirection) > 0 {
		if ballDir, err = vec(first.BallDirection); err != nil {
			return Observation{}, nil, fmt.Errorf("ball_direction: %w", err)
		}
	}
	var ballZ float64
	if len(first.Ball) > 2 {
		ballZ = first.Ball[2]
	}

	owner := Team(first.BallOwnedTeam)
	if owner != TeamLeft && owner != TeamRight {
		owner = TeamNone
	}

	mode := GameMode(first.GameMode)
	if !mode.Valid() {
		return Observation{}, nil, fmt.Errorf("unknown game mode %d", first.GameMode)
	}

	left, err := teamState(first.LeftTeam, first.LeftTeamDirection, first.LeftTeamActive,
		first.LeftTeamRoles, first.LeftTeamTiredFactor, first.LeftTeamYellowCard)
	if err != nil {
		return Observation{}, nil, fmt.Errorf("left team: %w", err)
	}
	right, err := teamState(first.RightTeam, first.RightTeamDirection, first.RightTeamActive,
		first.RightTeamRoles, first.RightTeamTiredFactor, first.RightTeamYellowCard)
	if err != nil {
		return Observation{}, nil, fmt.Errorf("right team: %w", err)
	}

	obs := Observation{
		Ball:            ball,
		BallZ:           ballZ,
		BallDirection:   ballDir,
		BallOwnedTeam:   owner,
		BallOwnedPlayer: first.BallOwnedPlayer,
		Left:            left,
		Right:           right,
		GameMode:        mode,
		StepsLeft:       first.StepsLeft,
	}
	if owner == TeamNone {
		obs.BallOwnedPlayer = -1
	}
	if len(first.Score) == 2 {
		obs.Score = [2]int{first.Score[0], first.Score[1]}
	}

	views := make([]AgentView, len(raws))
	for i, r := range raws {
		if r.Active < 0 || r.Active >= left.Len() {
			return Observation{}, nil, fmt.Errorf("agent %d: active index %d out of range [0,%d)", i, r.Active, left.Len())
		}
		views[i].Active = r.Active
		for j := 0; j < len(r.StickyActions) && j < StickyCount; j++ {
			views[i].Sticky[j] = r.StickyActions[j] != 0
		}
	}
	return obs, views, nil
}

func vec(v []float64) (Vec2, error) {
	if len(v) < 2 {
		return Vec2{}, fmt.Errorf("want at least 2 coordinates, got %d", len(v))
	}
	return Vec2{X: v[0], Y: v[1]}, nil
}

func teamState(pos, dir [][]float64, active []bool, roles []int, tired []float64, yellow []bool) (TeamState, error) {
	n := len(pos)
	ts := TeamState{
		Positions:   make([]Vec2, n),
		Active:      active,
		TiredFactor: tired,
		YellowCards: yellow,
	}
	for i, p := range pos {
		v, err := vec(p)
		if err != nil {
			return TeamState{}, fmt.Errorf("player %d position: %w", i, err)
		}
		ts.Positions[i] = v
	}
	if len(dir) > 0 {
		if len(dir) != n {
			return TeamState{}, fmt.Errorf("%d directions for %d players", len(dir), n)
		}
		ts.Directions = make([]Vec2, n)
		for i, d := range dir {
			v, err := vec(d)
			if err != nil {
				return TeamState{}, fmt.Errorf("player %d direction: %w", i, err)
			}
			ts.Directions[i] = v
		}
	}
	if len(active) > n {
		return TeamState{}, fmt.Errorf("%d active flags for %d players", len(active), n)
	}
	if len(roles) > 0 {
		if len(roles) != n {
			return TeamState{}, fmt.Errorf("%d roles for %d players", len(roles), n)
		}
		ts.Roles = make([]Role, n)
		for i, r := range roles {
			ts.Roles[i] = Role(r)
		}
	}
	return ts, nil
}
