package tactics

import (
	"math"

	"github.com/nstehr/pitchside/model"
)

// NoTeammate is returned by SelectTeammate when nobody qualifies.
const NoTeammate = -1

// DefaultMinOpenness is the least space a teammate needs to be considered.
const DefaultMinOpenness = 0.1

var pitchDiagonal = math.Hypot(model.PitchMaxX-model.PitchMinX, model.PitchMaxY-model.PitchMinY)

// RoleSet filters pass targets. A nil set allows every role.
type RoleSet []model.Role

func (rs RoleSet) allows(r model.Role) bool {
	if rs == nil {
		return true
	}
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

var (
	defenders        = RoleSet{model.RoleCentreBack, model.RoleLeftBack, model.RoleRightBack}
	backLine         = RoleSet{model.RoleCentreBack, model.RoleLeftBack, model.RoleRightBack, model.RoleGoalkeeper}
	midfieldCore     = RoleSet{model.RoleDefensiveMidfield, model.RoleCentralMidfield, model.RoleAttackingMidfield}
	attackers        = RoleSet{model.RoleCentreForward, model.RoleLeftMidfield, model.RoleRightMidfield, model.RoleAttackingMidfield}
	creators         = RoleSet{model.RoleCentralMidfield, model.RoleAttackingMidfield}
	strikers         = RoleSet{model.RoleCentreForward, model.RoleAttackingMidfield}
	wideOutlets      = RoleSet{model.RoleCentreForward, model.RoleAttackingMidfield, model.RoleCentralMidfield}
	forwardsAndWings = RoleSet{model.RoleCentreForward, model.RoleLeftMidfield, model.RoleRightMidfield}
)

// Openness is the distance from left-team player i to the nearest active
// opponent.
func Openness(obs *model.Observation, i int) float64 {
	p := obs.Left.Position(i)
	best := pitchDiagonal
	for j, o := range obs.Right.Positions {
		if !obs.Right.IsActive(j) {
			continue
		}
		if d := p.Dist(o); d < best {
			best = d
		}
	}
	return best
}

// SelectTeammate ranks every active teammate other than self by
// openness*5 + x*2 - distance from the passer and returns the best index.
// Candidates with less than minOpenness of space are skipped. Ties go to
// the earlier index.
func SelectTeammate(obs *model.Observation, self int, from model.Vec2, roles RoleSet, minOpenness float64) int {
	best := NoTeammate
	bestScore := math.Inf(-1)
	for i, p := range obs.Left.Positions {
		if i == self || !obs.Left.IsActive(i) || !roles.allows(obs.Left.Role(i)) {
			continue
		}
		open := Openness(obs, i)
		if open < minOpenness {
			continue
		}
		score := open*5 + p.X*2 - from.Dist(p)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
