package tactics

import "github.com/nstehr/pitchside/model"

// ArrivalRadius is how close counts as "there". Below it the planner idles
// so players do not jitter around their target.
const ArrivalRadius = 0.03

// MoveTowards quantizes the direction to target into one of eight moves.
// A straight move wins when one axis is more than twice the other, which
// makes the straight sectors wider than the diagonal ones and keeps the
// choice stable near 45 degrees.
func MoveTowards(current, target model.Vec2) model.Action {
	d := target.Sub(current)
	if d.Len() < ArrivalRadius {
		return model.ActionIdle
	}

	ax, ay := abs(d.X), abs(d.Y)
	switch {
	case ax > 2*ay:
		if d.X > 0 {
			return model.ActionRight
		}
		return model.ActionLeft
	case ay > 2*ax:
		if d.Y > 0 {
			return model.ActionBottom
		}
		return model.ActionTop
	}

	switch {
	case d.X > 0 && d.Y > 0:
		return model.ActionBottomRight
	case d.X > 0:
		return model.ActionTopRight
	case d.Y > 0:
		return model.ActionBottomLeft
	default:
		return model.ActionTopLeft
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
