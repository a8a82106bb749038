package model

// Pitch coordinates: x runs from our goal (-1) to the opponent goal (1),
// y from the top touchline (-0.42) to the bottom one (0.42).
const (
	PitchMinX = -1.0
	PitchMaxX = 1.0
	PitchMinY = -0.42
	PitchMaxY = 0.42
)

var (
	OwnGoal      = Vec2{X: -1, Y: 0}
	OpponentGoal = Vec2{X: 1, Y: 0}
)

// InOwnBox reports whether p lies in our penalty area.
func InOwnBox(p Vec2) bool {
	return p.X < -0.7 && abs(p.Y) < 0.24
}

// InOwnGoalArea is the keeper's claiming zone, a little wider than the
// six-yard box.
func InOwnGoalArea(p Vec2) bool {
	return p.X < -0.85 && abs(p.Y) < 0.3
}

// SameFlank reports whether y lies on the flank given by side (-1 top, +1 bottom).
func SameFlank(y, side float64) bool {
	return y*side > 0
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToPitch keeps p inside the touchlines and goal lines.
func ClampToPitch(p Vec2) Vec2 {
	return Vec2{X: Clamp(p.X, PitchMinX, PitchMaxX), Y: Clamp(p.Y, PitchMinY, PitchMaxY)}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
