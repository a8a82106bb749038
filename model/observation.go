package model

// TeamState holds one side's per-player arrays. All slices are index-aligned;
// Active may be shorter than Positions, missing entries count as active.
type TeamState struct {
	Positions   []Vec2    `json:"positions"`
	Directions  []Vec2    `json:"directions"`
	Active      []bool    `json:"active"`
	Roles       []Role    `json:"roles"`
	TiredFactor []float64 `json:"tiredFactor"`
	YellowCards []bool    `json:"yellowCards"`
}

// Len is the number of players on this side.
func (t TeamState) Len() int { return len(t.Positions) }

func (t TeamState) IsActive(i int) bool {
	if i < 0 || i >= len(t.Positions) {
		return false
	}
	if i >= len(t.Active) {
		return true
	}
	return t.Active[i]
}

func (t TeamState) Position(i int) Vec2 {
	if i < 0 || i >= len(t.Positions) {
		return Vec2{}
	}
	return t.Positions[i]
}

func (t TeamState) Direction(i int) Vec2 {
	if i < 0 || i >= len(t.Directions) {
		return Vec2{}
	}
	return t.Directions[i]
}

// Role returns the role of player i, or -1 when unknown.
func (t TeamState) Role(i int) Role {
	if i < 0 || i >= len(t.Roles) {
		return -1
	}
	return t.Roles[i]
}

// Observation is the team-wide snapshot of one tick. It is read-only for the
// whole tick and discarded afterwards.
type Observation struct {
	Ball            Vec2      `json:"ball"`
	BallZ           float64   `json:"ballZ"`
	BallDirection   Vec2      `json:"ballDirection"`
	BallOwnedTeam   Team      `json:"ballOwnedTeam"`
	BallOwnedPlayer int       `json:"ballOwnedPlayer"`
	Left            TeamState `json:"left"`
	Right           TeamState `json:"right"`
	GameMode        GameMode  `json:"gameMode"`
	Score           [2]int    `json:"score"`
	StepsLeft       int       `json:"stepsLeft"`
}

// Carrier returns the position of the opponent holding the ball.
func (o *Observation) Carrier() (Vec2, bool) {
	if o.BallOwnedTeam != TeamRight || o.BallOwnedPlayer < 0 || o.BallOwnedPlayer >= o.Right.Len() {
		return Vec2{}, false
	}
	return o.Right.Positions[o.BallOwnedPlayer], true
}

// AgentView is the per-agent part of an observation: which player the agent
// controls and the simulator's sticky toggles for that player.
type AgentView struct {
	Active int           `json:"active"`
	Sticky StickyActions `json:"sticky"`
}
