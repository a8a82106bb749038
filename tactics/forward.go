package tactics

import "github.com/nstehr/pitchside/model"

func centreForward(s *Situation) model.Action {
	f, obs, p := s.Facts, s.Obs, s.Profile
	ball := obs.Ball

	if !f.OwnedByOpponent {
		switch obs.GameMode {
		case model.ModeKickOff:
			if a, ok := s.pass(creators); ok {
				return a
			}
			return model.ActionShortPass
		case model.ModePenalty:
			return model.ActionShot
		}
	}

	switch {
	case f.OwnedBySelf:
		if f.Direction.X < 0 && s.pressured(p.HoldUpPressureRadius) {
			if a, ok := s.pass(creators); ok {
				return a
			}
			return model.ActionShortPass
		}
		if f.Position.X > p.ShotLineX {
			return model.ActionShot
		}
		return s.sprintTo(model.OpponentGoal)
	case f.OwnedByTeam:
		return s.move(channelRun(s))
	case f.OwnedByOpponent:
		carrier, ok := obs.Carrier()
		if !ok {
			break
		}
		role := obs.Right.Role(obs.BallOwnedPlayer)
		if role == model.RoleGoalkeeper || defenders.allows(role) || ball.X > 0.5 {
			return s.sprintTo(carrier)
		}
		return s.move(carrier.Lerp(model.OpponentGoal, 0.5))
	case f.BallFree:
		if ball.X > 0 && f.DistanceToBall < 0.5 {
			return s.move(ball)
		}
	}
	return s.move(model.Vec2{X: 0.5})
}

// channelRun targets a random point across the face of the opponents' box.
// Without a source of randomness the run goes through the middle.
func channelRun(s *Situation) model.Vec2 {
	r := 0.5
	if s.Rand != nil {
		r = s.Rand.Float64()
	}
	spread := s.Profile.ChannelSpread
	return model.Vec2{X: 0.8, Y: spread * (2*r - 1)}
}
