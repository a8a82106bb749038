package tactics

import "github.com/nstehr/pitchside/model"

func defensiveMidfielder(s *Situation) model.Action {
	f, obs, p := s.Facts, s.Obs, s.Profile
	ball := obs.Ball

	switch {
	case f.OwnedBySelf:
		if a, ok := s.switchPlay(); ok {
			return a
		}
		if a, ok := s.pass(creators); ok {
			return a
		}
		return model.ActionShortPass
	case f.OwnedByTeam:
		return s.move(model.Vec2{X: ball.X - 0.2, Y: ball.Y})
	case f.OwnedByOpponent:
		carrier, ok := obs.Carrier()
		if !ok {
			return s.move(goalSideBlock(ball))
		}
		if pressingTrigger(obs, p.PressingTrigger) {
			return s.sprintTo(carrier)
		}
		if threat, ok := mostDangerousOpponent(obs, obs.BallOwnedPlayer); ok {
			return s.move(carrier.Lerp(threat, 0.5))
		}
		return s.move(goalSideBlock(ball))
	case f.BallFree:
		if f.DistanceToBall < 0.3 {
			return s.move(ball)
		}
	}
	return s.move(model.Vec2{X: -0.3})
}

func centralMidfielder(s *Situation) model.Action {
	f, obs, p := s.Facts, s.Obs, s.Profile
	ball := obs.Ball
	laneY := model.Clamp(f.Position.Y, -0.2, 0.2)

	switch {
	case f.OwnedBySelf:
		if inShootingZone(f.Position, p.ShotLineX) {
			return model.ActionShot
		}
		if a, ok := s.switchPlay(); ok {
			return a
		}
		if a, ok := s.pass(strikers); ok {
			return a
		}
		return model.ActionHighPass
	case f.OwnedByTeam:
		if ball.X > 0.4 {
			return s.sprintTo(model.Vec2{X: 0.8})
		}
		return s.move(model.Vec2{X: ball.X - 0.1, Y: laneY})
	case f.OwnedByOpponent:
		if f.DistanceToBall < 0.3 {
			return s.move(ball)
		}
		return s.move(goalSideBlock(ball))
	case f.BallFree:
		if f.DistanceToBall < 0.4 {
			return s.move(ball)
		}
	}
	return s.move(model.Vec2{Y: laneY})
}

// wideMidfielder returns the winger policy for side -1 (left) or +1 (right).
func wideMidfielder(side float64) PolicyFunc {
	return func(s *Situation) model.Action {
		f, obs, p := s.Facts, s.Obs, s.Profile
		ball := obs.Ball

		switch {
		case f.OwnedBySelf:
			if f.Position.X > 0.7 {
				return model.ActionHighPass
			}
			if s.pressured(p.PressureRadius) {
				if a, ok := s.pass(wideOutlets); ok {
					return a
				}
				return model.ActionHighPass
			}
			return s.sprintTo(model.Vec2{X: 0.8, Y: side * 0.3})
		case f.OwnedByTeam:
			return s.move(model.Vec2{X: min(ball.X+0.1, 0.8), Y: side * 0.3})
		case f.OwnedByOpponent:
			return s.move(model.Vec2{X: -0.5, Y: side * 0.2})
		case f.BallFree:
			if model.SameFlank(ball.Y, side) && f.DistanceToBall < 0.3 {
				return s.move(ball)
			}
		}
		return s.move(model.Vec2{X: 0.2, Y: side * 0.25})
	}
}

func attackingMidfielder(s *Situation) model.Action {
	f, obs, p := s.Facts, s.Obs, s.Profile
	ball := obs.Ball

	switch {
	case f.OwnedBySelf:
		if inShootingZone(f.Position, p.ShotLineX) {
			return model.ActionShot
		}
		if s.pressured(p.PressureRadius) {
			if a, ok := s.pass(forwardsAndWings); ok {
				return a
			}
			return model.ActionShortPass
		}
		if cf := teammateWithRole(obs, model.RoleCentreForward, f.Index); cf != NoTeammate {
			lead := obs.Left.Position(cf).Add(obs.Left.Direction(cf).Scale(5))
			return s.move(lead)
		}
		return s.dribbleTo(model.Vec2{X: 0.8})
	case f.OwnedByTeam:
		if carrierRole(obs) == model.RoleCentreForward {
			return s.sprintTo(model.OpponentGoal)
		}
		return s.move(pocketBetweenLines(obs))
	case f.OwnedByOpponent:
		if ball.X > 0 {
			carrier, ok := obs.Carrier()
			if !ok {
				carrier = ball
			}
			return s.sprintTo(carrier)
		}
		return s.move(goalSideBlock(ball))
	case f.BallFree:
		if ball.X > 0 && f.DistanceToBall < 0.4 {
			return s.move(ball)
		}
	}
	return s.move(model.Vec2{X: 0.4})
}

// pocketBetweenLines finds space just in front of the opponents' back line.
func pocketBetweenLines(obs *model.Observation) model.Vec2 {
	lineX, found := 0.0, false
	for j, o := range obs.Right.Positions {
		if !obs.Right.IsActive(j) || !defenders.allows(obs.Right.Role(j)) {
			continue
		}
		if !found || o.X < lineX {
			lineX, found = o.X, true
		}
	}
	if !found {
		return model.Vec2{X: 0.5, Y: obs.Ball.Y}
	}
	return model.Vec2{X: lineX - 0.1, Y: model.Clamp(obs.Ball.Y, -0.2, 0.2)}
}
