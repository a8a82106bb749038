package tactics

import "github.com/nstehr/pitchside/model"

func goalkeeper(s *Situation) model.Action {
	f, obs := s.Facts, s.Obs
	ball := obs.Ball
	lineY := model.Clamp(ball.Y, -0.2, 0.2)
	base := model.Vec2{X: -0.95, Y: lineY}

	if !f.OwnedBySelf {
		switch obs.GameMode {
		case model.ModeKickOff:
			return s.move(model.Vec2{X: -0.95})
		case model.ModeCorner, model.ModeFreeKick, model.ModePenalty:
			return s.move(model.Vec2{X: -1, Y: lineY})
		}
	}

	switch {
	case f.OwnedBySelf:
		return distribute(s)
	case f.OwnedByTeam:
		return s.move(model.Vec2{X: -0.85, Y: model.Clamp(ball.Y, -0.3, 0.3)})
	case f.OwnedByOpponent:
		if f.DistanceToBall < 0.4 {
			return s.move(model.Vec2{X: -0.95, Y: ball.Lerp(model.OwnGoal, 0.5).Y})
		}
		return s.move(base)
	case f.BallFree:
		if model.InOwnGoalArea(ball) && f.DistanceToBall < 0.2 {
			return s.move(ball)
		}
	}
	return s.move(base)
}

// distribute releases the ball from the keeper's hands. A pressed back line
// or a chasing scoreline sends it long to the attackers first.
func distribute(s *Situation) model.Action {
	pressed := anyUnderPressure(s.Obs, defenders, s.Profile.DefenderPressureRadius)
	if pressed || s.Phase == PhaseAllOutAttack {
		if a, ok := s.pass(attackers); ok {
			return a
		}
		if s.Phase == PhaseAllOutAttack {
			return model.ActionLongPass
		}
	}
	if a, ok := s.pass(defenders); ok {
		return a
	}
	if pressed {
		return model.ActionLongPass
	}
	return model.ActionShortPass
}
