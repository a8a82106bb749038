package tactics

import "github.com/nstehr/pitchside/model"

// Facts is everything one agent needs to know about the tick, derived once
// from the observation. Each agent gets its own Facts; they are never
// mutated after BuildFacts returns.
type Facts struct {
	Index       int
	Position    model.Vec2
	Direction   model.Vec2
	Role        model.Role
	TiredFactor float64
	YellowCard  bool
	Sticky      model.StickyActions

	Ball           model.Vec2
	DistanceToBall float64

	OwnedBySelf     bool
	OwnedByTeam     bool // any friendly player, self included
	OwnedByOpponent bool
	BallFree        bool

	// Index-aligned with Observation.Left and Observation.Right. The entry
	// for the agent itself is 0.
	Teammates []float64
	Opponents []float64
}

// BuildFacts never fails: an out-of-range index or a missing ball owner
// degrade to zero values and "no owner".
func BuildFacts(obs *model.Observation, view model.AgentView) Facts {
	i := view.Active
	f := Facts{
		Index:     i,
		Position:  obs.Left.Position(i),
		Direction: obs.Left.Direction(i),
		Role:      obs.Left.Role(i),
		Sticky:    view.Sticky,
		Ball:      obs.Ball,
	}
	if i >= 0 && i < len(obs.Left.TiredFactor) {
		f.TiredFactor = obs.Left.TiredFactor[i]
	}
	if i >= 0 && i < len(obs.Left.YellowCards) {
		f.YellowCard = obs.Left.YellowCards[i]
	}

	f.DistanceToBall = f.Position.Dist(obs.Ball)

	switch obs.BallOwnedTeam {
	case model.TeamLeft:
		f.OwnedByTeam = true
		f.OwnedBySelf = obs.BallOwnedPlayer == i
	case model.TeamRight:
		f.OwnedByOpponent = true
	default:
		f.BallFree = true
	}

	f.Teammates = make([]float64, obs.Left.Len())
	for j, p := range obs.Left.Positions {
		if j != i {
			f.Teammates[j] = f.Position.Dist(p)
		}
	}
	f.Opponents = make([]float64, obs.Right.Len())
	for j, p := range obs.Right.Positions {
		f.Opponents[j] = f.Position.Dist(p)
	}
	return f
}

// NearestOpponent returns the distance to the closest active opponent, or
// the pitch diagonal when there is none.
func (f *Facts) NearestOpponent(obs *model.Observation) float64 {
	best := pitchDiagonal
	for j, d := range f.Opponents {
		if obs.Right.IsActive(j) && d < best {
			best = d
		}
	}
	return best
}
