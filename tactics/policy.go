package tactics

import "github.com/nstehr/pitchside/model"

// Rand is the randomness a policy may draw on. Only the forward's off-ball
// run uses it; *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Situation is the complete, explicit input of one policy call.
type Situation struct {
	Facts   *Facts
	Obs     *model.Observation
	Phase   Phase
	Profile *Profile
	Rand    Rand
}

// Policy picks one action for one agent.
type Policy interface {
	Decide(s *Situation) model.Action
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(s *Situation) model.Action

func (fn PolicyFunc) Decide(s *Situation) model.Action { return fn(s) }

func (s *Situation) move(target model.Vec2) model.Action {
	return MoveTowards(s.Facts.Position, model.ClampToPitch(target))
}

// pass steers toward the best open teammate from roles. The simulator
// releases the pass in the held direction, so steering is the pass.
func (s *Situation) pass(roles RoleSet) (model.Action, bool) {
	idx := SelectTeammate(s.Obs, s.Facts.Index, s.Facts.Position, roles, s.Profile.MinOpenness)
	if idx == NoTeammate {
		return model.ActionIdle, false
	}
	return s.move(s.Obs.Left.Positions[idx]), true
}

func (s *Situation) sprintTo(target model.Vec2) model.Action {
	if !s.Facts.Sticky.Sprinting() {
		return model.ActionSprint
	}
	return s.move(target)
}

func (s *Situation) dribbleTo(target model.Vec2) model.Action {
	if !s.Facts.Sticky.Dribbling() {
		return model.ActionDribble
	}
	return s.move(target)
}

func (s *Situation) pressured(radius float64) bool {
	return s.Facts.NearestOpponent(s.Obs) < radius
}

// defensiveLine holds the agent's lane at a depth that follows the ball.
func (s *Situation) defensiveLine() model.Vec2 {
	x := max(s.Obs.Ball.X-s.Profile.DefensiveLineDepth, s.Profile.DefensiveLineFloor)
	return model.Vec2{X: x, Y: s.Facts.Position.Y}
}

// switchPlay forces a cross-field ball when the agent's half of the pitch
// (by y sign) is crowded.
func (s *Situation) switchPlay() (model.Action, bool) {
	top, bottom := congestion(s.Obs)
	y := s.Facts.Position.Y
	limit := s.Profile.CongestionThreshold

	var target model.Role
	switch {
	case y < 0 && top > limit:
		target = model.RoleRightMidfield
	case y > 0 && bottom > limit:
		target = model.RoleLeftMidfield
	default:
		return model.ActionIdle, false
	}
	if a, ok := s.pass(RoleSet{target}); ok {
		return a, true
	}
	return model.ActionLongPass, true
}

func underPressure(obs *model.Observation, pos model.Vec2, radius float64) bool {
	for j, o := range obs.Right.Positions {
		if obs.Right.IsActive(j) && pos.Dist(o) < radius {
			return true
		}
	}
	return false
}

// anyUnderPressure reports whether an active teammate with one of roles is
// closed down within radius.
func anyUnderPressure(obs *model.Observation, roles RoleSet, radius float64) bool {
	for i, p := range obs.Left.Positions {
		if obs.Left.IsActive(i) && roles.allows(obs.Left.Role(i)) && underPressure(obs, p, radius) {
			return true
		}
	}
	return false
}

// congestion counts players of both teams on each side of the halfway
// line running down the pitch. Players exactly on y=0 count for neither.
func congestion(obs *model.Observation) (top, bottom int) {
	for _, team := range []model.TeamState{obs.Left, obs.Right} {
		for _, p := range team.Positions {
			switch {
			case p.Y < 0:
				top++
			case p.Y > 0:
				bottom++
			}
		}
	}
	return top, bottom
}

// pressingTrigger fires when the carrier has turned toward its own goal.
func pressingTrigger(obs *model.Observation, threshold float64) bool {
	if obs.BallOwnedTeam != model.TeamRight {
		return false
	}
	return obs.Right.Direction(obs.BallOwnedPlayer).X > threshold
}

// mostDangerousOpponent is the active opponent nearest our goal line,
// ignoring the player at index skip.
func mostDangerousOpponent(obs *model.Observation, skip int) (model.Vec2, bool) {
	best, found := model.Vec2{}, false
	for j, p := range obs.Right.Positions {
		if j == skip || !obs.Right.IsActive(j) {
			continue
		}
		if !found || p.X < best.X {
			best, found = p, true
		}
	}
	return best, found
}

func opponentStriker(obs *model.Observation) (model.Vec2, bool) {
	for j, p := range obs.Right.Positions {
		if obs.Right.IsActive(j) && obs.Right.Role(j) == model.RoleCentreForward {
			return p, true
		}
	}
	return model.Vec2{}, false
}

// teammateWithRole returns the first active teammate with role other than
// self, or NoTeammate.
func teammateWithRole(obs *model.Observation, role model.Role, self int) int {
	for i := range obs.Left.Positions {
		if i != self && obs.Left.IsActive(i) && obs.Left.Role(i) == role {
			return i
		}
	}
	return NoTeammate
}

// carrierRole is the role of the friendly player on the ball, -1 if none.
func carrierRole(obs *model.Observation) model.Role {
	if obs.BallOwnedTeam != model.TeamLeft {
		return -1
	}
	return obs.Left.Role(obs.BallOwnedPlayer)
}

// goalSideBlock sits between the ball and our goal, never deeper than x=-0.5.
func goalSideBlock(ball model.Vec2) model.Vec2 {
	p := ball.Lerp(model.OwnGoal, 0.5)
	p.X = max(p.X, -0.5)
	return p
}

func inShootingZone(p model.Vec2, lineX float64) bool {
	return p.X > lineX && abs(p.Y) < 0.3
}
