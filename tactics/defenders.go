package tactics

import "github.com/nstehr/pitchside/model"

func centreBack(s *Situation) model.Action {
	f, obs, p := s.Facts, s.Obs, s.Profile
	ball := obs.Ball
	laneY := model.Clamp(f.Position.Y, -0.2, 0.2)

	if !f.OwnedBySelf {
		switch obs.GameMode {
		case model.ModeKickOff:
			return s.move(model.Vec2{X: -0.5, Y: laneY})
		case model.ModeCorner:
			if ball.X < 0 {
				return s.move(markInBox(s))
			}
			return s.move(model.Vec2{Y: laneY})
		}
	}

	line := s.defensiveLine()
	switch {
	case f.OwnedBySelf:
		if s.Phase == PhaseProtectLead {
			if a, ok := s.pass(backLine); ok {
				return a
			}
		} else if a, ok := s.pass(midfieldCore); ok {
			return a
		}
		if s.pressured(p.PressureRadius) {
			return model.ActionLongPass
		}
		return model.ActionShortPass
	case f.OwnedByTeam:
		return s.move(line)
	case f.OwnedByOpponent:
		if ball.X < -0.3 && f.DistanceToBall < 0.1 {
			if f.DistanceToBall < 0.05 && !model.InOwnBox(ball) && !f.YellowCard {
				return model.ActionSliding
			}
			return s.move(ball)
		}
		threat, ok := opponentStriker(obs)
		if !ok {
			threat, ok = mostDangerousOpponent(obs, obs.BallOwnedPlayer)
		}
		if ok {
			return s.move(ball.Lerp(threat, 0.5))
		}
	case f.BallFree:
		if ball.X < 0.3 && f.DistanceToBall < 0.3 {
			return s.move(ball)
		}
	}
	return s.move(line)
}

// markInBox picks up the nearest opponent standing in our penalty area.
func markInBox(s *Situation) model.Vec2 {
	obs := s.Obs
	best, bestDist := model.Vec2{X: -0.8}, -1.0
	for j, o := range obs.Right.Positions {
		if !obs.Right.IsActive(j) || o.X >= -0.7 || abs(o.Y) >= 0.4 {
			continue
		}
		d := s.Facts.Opponents[j]
		if bestDist < 0 || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// fullBack returns the flank defender policy for side -1 (left) or +1 (right).
func fullBack(side float64) PolicyFunc {
	winger := model.RoleRightMidfield
	if side < 0 {
		winger = model.RoleLeftMidfield
	}
	outlets := RoleSet{winger, model.RoleCentralMidfield, model.RoleDefensiveMidfield}

	return func(s *Situation) model.Action {
		f, obs, p := s.Facts, s.Obs, s.Profile
		ball := obs.Ball

		switch {
		case f.OwnedBySelf:
			if a, ok := s.pass(outlets); ok {
				return a
			}
			if s.pressured(p.PressureRadius) {
				return model.ActionLongPass
			}
			return s.dribbleTo(model.Vec2{X: f.Position.X + 0.2, Y: side * 0.3})
		case f.OwnedByTeam:
			if carrierRole(obs) == winger && obs.Left.Direction(obs.BallOwnedPlayer).Y*side < -0.01 {
				return s.sprintTo(model.Vec2{X: f.Position.X + 0.5, Y: f.Position.Y})
			}
			return s.move(model.Vec2{X: ball.X - 0.2, Y: side * 0.3})
		case f.OwnedByOpponent:
			if ball.Y*side < -0.1 {
				return s.move(model.Vec2{X: -0.6, Y: side * 0.1})
			}
			return s.move(model.Vec2{X: ball.X - 0.05, Y: ball.Y})
		case f.BallFree:
			if model.SameFlank(ball.Y, side) && f.DistanceToBall < 0.3 {
				return s.move(ball)
			}
		}
		return s.move(model.Vec2{X: -0.6, Y: side * 0.3})
	}
}
