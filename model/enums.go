package model

import "fmt"

// Team identifies who owns the ball. Values match the simulator's
// ball_owned_team field.
type Team int

const (
	TeamNone  Team = -1
	TeamLeft  Team = 0 // the controlled team
	TeamRight Team = 1 // the opponent
)

func (t Team) String() string {
	switch t {
	case TeamLeft:
		return "left"
	case TeamRight:
		return "right"
	default:
		return "none"
	}
}

// Role is the tactical assignment of a player. Numbering follows the
// simulator's left_team_roles encoding.
type Role int

const (
	RoleGoalkeeper Role = iota
	RoleCentreBack
	RoleLeftBack
	RoleRightBack
	RoleDefensiveMidfield
	RoleCentralMidfield
	RoleLeftMidfield
	RoleRightMidfield
	RoleAttackingMidfield
	RoleCentreForward

	RoleCount = 10
)

var roleNames = [RoleCount]string{"GK", "CB", "LB", "RB", "DM", "CM", "LM", "RM", "AM", "CF"}

func (r Role) Valid() bool { return r >= 0 && r < RoleCount }

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Action is one discrete command for one player for one tick. Numbering
// follows the simulator's full action set.
type Action int

const (
	ActionIdle Action = iota
	ActionLeft
	ActionTopLeft
	ActionTop
	ActionTopRight
	ActionRight
	ActionBottomRight
	ActionBottom
	ActionBottomLeft
	ActionLongPass
	ActionHighPass
	ActionShortPass
	ActionShot
	ActionSprint
	ActionReleaseDirection
	ActionReleaseSprint
	ActionSliding
	ActionDribble
	ActionReleaseDribble

	ActionCount = 19
)

var actionNames = [ActionCount]string{
	"idle", "left", "top_left", "top", "top_right", "right", "bottom_right",
	"bottom", "bottom_left", "long_pass", "high_pass", "short_pass", "shot",
	"sprint", "release_direction", "release_sprint", "sliding", "dribble",
	"release_dribble",
}

func (a Action) Valid() bool { return a >= 0 && a < ActionCount }

// IsMove reports whether a is one of the eight directional moves.
func (a Action) IsMove() bool { return a >= ActionLeft && a <= ActionBottomLeft }

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// GameMode is the current restart state of the match.
type GameMode int

const (
	ModeNormal GameMode = iota
	ModeKickOff
	ModeGoalKick
	ModeFreeKick
	ModeCorner
	ModeThrowIn
	ModePenalty

	modeCount = 7
)

var modeNames = [modeCount]string{"normal", "kickoff", "goal_kick", "free_kick", "corner", "throw_in", "penalty"}

func (m GameMode) Valid() bool { return m >= 0 && m < modeCount }

func (m GameMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Sticky action indices into StickyActions.
const (
	StickyLeft = iota
	StickyTopLeft
	StickyTop
	StickyTopRight
	StickyRight
	StickyBottomRight
	StickyBottom
	StickyBottomLeft
	StickySprint
	StickyDribble

	StickyCount = 10
)

// StickyActions are the toggles the simulator keeps across ticks for one
// player. They are observed, never owned, by the policies.
type StickyActions [StickyCount]bool

func (s StickyActions) Sprinting() bool { return s[StickySprint] }
func (s StickyActions) Dribbling() bool { return s[StickyDribble] }
