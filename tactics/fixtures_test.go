package tactics

import (
	"math/rand"

	"github.com/nstehr/pitchside/model"
)

var formationRoles = []model.Role{
	model.RoleGoalkeeper,
	model.RoleCentreBack,
	model.RoleLeftBack,
	model.RoleRightBack,
	model.RoleDefensiveMidfield,
	model.RoleCentralMidfield,
	model.RoleLeftMidfield,
	model.RoleRightMidfield,
	model.RoleAttackingMidfield,
	model.RoleCentreForward,
	model.RoleCentreBack,
}

var formationPositions = []model.Vec2{
	{X: -1, Y: 0},
	{X: -0.6, Y: -0.1},
	{X: -0.6, Y: -0.3},
	{X: -0.6, Y: 0.3},
	{X: -0.3, Y: 0},
	{X: 0, Y: -0.1},
	{X: 0.2, Y: -0.25},
	{X: 0.2, Y: 0.25},
	{X: 0.4, Y: 0},
	{X: 0.5, Y: 0.05},
	{X: -0.6, Y: 0.1},
}

// Player indices in the test formation.
const (
	gk = iota
	cb
	lb
	rb
	dm
	cm
	lm
	rm
	am
	cf
	cb2
)

func team(positions []model.Vec2) model.TeamState {
	n := len(positions)
	t := model.TeamState{
		Positions:   append([]model.Vec2(nil), positions...),
		Directions:  make([]model.Vec2, n),
		Active:      make([]bool, n),
		Roles:       append([]model.Role(nil), formationRoles[:n]...),
		TiredFactor: make([]float64, n),
		YellowCards: make([]bool, n),
	}
	for i := range t.Active {
		t.Active[i] = true
	}
	return t
}

// kickoffObs is both teams in their own halves with a free ball on the spot.
// The opponents mirror the controlled team.
func kickoffObs() *model.Observation {
	mirrored := make([]model.Vec2, len(formationPositions))
	for i, p := range formationPositions {
		mirrored[i] = model.Vec2{X: -p.X, Y: -p.Y}
	}
	return &model.Observation{
		BallOwnedTeam:   model.TeamNone,
		BallOwnedPlayer: -1,
		Left:            team(formationPositions),
		Right:           team(mirrored),
		GameMode:        model.ModeNormal,
		StepsLeft:       3000,
	}
}

// giveBall puts the ball at the feet of player i on team side.
func giveBall(obs *model.Observation, side model.Team, i int) {
	obs.BallOwnedTeam = side
	obs.BallOwnedPlayer = i
	if side == model.TeamLeft {
		obs.Ball = obs.Left.Positions[i]
	} else {
		obs.Ball = obs.Right.Positions[i]
	}
}

func situation(obs *model.Observation, i int, phase Phase) *Situation {
	facts := BuildFacts(obs, model.AgentView{Active: i})
	profile := DefaultProfile()
	return &Situation{
		Facts:   &facts,
		Obs:     obs,
		Phase:   phase,
		Profile: &profile,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

// randomObs builds a valid observation with everything drawn at random.
func randomObs(r *rand.Rand) *model.Observation {
	pos := func() model.Vec2 {
		return model.Vec2{X: r.Float64()*2 - 1, Y: r.Float64()*0.84 - 0.42}
	}
	dir := func() model.Vec2 {
		return model.Vec2{X: r.Float64()*0.02 - 0.01, Y: r.Float64()*0.02 - 0.01}
	}
	left := make([]model.Vec2, len(formationRoles))
	right := make([]model.Vec2, len(formationRoles))
	for i := range left {
		left[i], right[i] = pos(), pos()
	}
	obs := &model.Observation{
		Ball:            pos(),
		BallOwnedTeam:   model.Team(r.Intn(3) - 1),
		BallOwnedPlayer: -1,
		Left:            team(left),
		Right:           team(right),
		GameMode:        model.GameMode(r.Intn(7)),
		Score:           [2]int{r.Intn(4), r.Intn(4)},
		StepsLeft:       r.Intn(3001),
	}
	for i := range left {
		obs.Left.Directions[i], obs.Right.Directions[i] = dir(), dir()
		obs.Left.Active[i] = r.Intn(10) > 0
		obs.Right.Active[i] = r.Intn(10) > 0
		obs.Left.YellowCards[i] = r.Intn(5) == 0
	}
	if obs.BallOwnedTeam != model.TeamNone {
		giveBall(obs, obs.BallOwnedTeam, r.Intn(len(left)))
	}
	return obs
}
