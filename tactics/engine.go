package tactics

import (
	"log/slog"
	"sync"

	"github.com/nstehr/pitchside/model"
)

// Engine turns one team-wide observation into one action per controlled
// agent. The profile and its phase rules can be swapped while matches run.
type Engine struct {
	mu       sync.RWMutex
	profile  Profile
	revision uint64
	phases   *PhaseClassifier
	dispatch *Dispatcher
}

// NewEngine validates the profile and compiles its phase rules.
func NewEngine(p Profile) (*Engine, error) {
	phases, err := buildClassifier(&p)
	if err != nil {
		return nil, err
	}
	return &Engine{
		profile:  p,
		phases:   phases,
		dispatch: NewDispatcher(),
	}, nil
}

func buildClassifier(p *Profile) (*PhaseClassifier, error) {
	p.Validate()
	rules, err := CompilePhaseRules(*p)
	if err != nil {
		return nil, err
	}
	return NewPhaseClassifier(rules)
}

// Swap replaces the profile. Rules are compiled first; if compilation fails
// the old profile stays active.
func (e *Engine) Swap(p Profile) error {
	phases, err := buildClassifier(&p)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.profile = p
	e.phases = phases
	e.revision++
	e.mu.Unlock()
	slog.Info("profile swapped", "profile", p.Name, "phaseRules", phases.Rules())
	return nil
}

// Snapshot returns the active profile with its revision. The revision
// starts at zero and grows by one on every successful Swap.
func (e *Engine) Snapshot() (Profile, uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profile, e.revision
}

// Decision is the outcome of one tick. Profile and Revision identify the
// profile the tick was decided under.
type Decision struct {
	Phase    Phase
	Actions  []model.Action
	Profile  Profile
	Revision uint64
}

// Decide returns one action per view, in view order. rng may be nil.
func (e *Engine) Decide(obs *model.Observation, views []model.AgentView, rng Rand) []model.Action {
	return e.Evaluate(obs, views, rng).Actions
}

// Evaluate classifies the phase once and runs every agent's policy under it.
func (e *Engine) Evaluate(obs *model.Observation, views []model.AgentView, rng Rand) Decision {
	e.mu.RLock()
	profile, phases, revision := e.profile, e.phases, e.revision
	e.mu.RUnlock()

	phase := phases.Classify(NewPhaseEnv(obs, profile.MatchSteps))
	actions := make([]model.Action, len(views))
	for i, view := range views {
		facts := BuildFacts(obs, view)
		if _, ok := e.dispatch.Lookup(facts.Role); !ok {
			slog.Warn("unknown role, idling", "agent", i, "player", view.Active, "role", int(facts.Role))
			actions[i] = model.ActionIdle
			continue
		}
		actions[i] = e.dispatch.Decide(facts.Role, &Situation{
			Facts:   &facts,
			Obs:     obs,
			Phase:   phase,
			Profile: &profile,
			Rand:    rng,
		})
		slog.Debug("decision", "player", view.Active, "role", facts.Role, "phase", phase, "action", actions[i])
	}
	return Decision{Phase: phase, Actions: actions, Profile: profile, Revision: revision}
}
