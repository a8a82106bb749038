package tactics

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/pitchside/model"
)

// Phase is the coarse match situation that shades role behaviour.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseProtectLead
	PhaseAllOutAttack
)

var phaseNames = [...]string{"normal", "protect_lead", "all_out_attack"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ParsePhase accepts the names produced by Phase.String, case-insensitively.
func ParsePhase(s string) (Phase, error) {
	for i, n := range phaseNames {
		if strings.EqualFold(s, n) {
			return Phase(i), nil
		}
	}
	return PhaseNormal, fmt.Errorf("unknown phase %q", s)
}

// PhaseEnv is the environment phase rule conditions are evaluated against.
type PhaseEnv struct {
	Own        int
	Opp        int
	StepsLeft  int
	TotalSteps int
	Mode       string
}

// NewPhaseEnv reads the score and clock out of an observation. Score[0] is
// always the controlled team.
func NewPhaseEnv(obs *model.Observation, totalSteps int) PhaseEnv {
	return PhaseEnv{
		Own:        obs.Score[0],
		Opp:        obs.Score[1],
		StepsLeft:  obs.StepsLeft,
		TotalSteps: totalSteps,
		Mode:       obs.GameMode.String(),
	}
}

func (e PhaseEnv) Lead() int      { return e.Own - e.Opp }
func (e PhaseEnv) Leading() bool  { return e.Own > e.Opp }
func (e PhaseEnv) Trailing() bool { return e.Own < e.Opp }
func (e PhaseEnv) Level() bool    { return e.Own == e.Opp }
func (e PhaseEnv) Elapsed() int   { return e.TotalSteps - e.StepsLeft }

// PhaseRule maps a condition to a phase. Higher priority is tried first.
type PhaseRule struct {
	Name         string
	Priority     int
	Phase        Phase
	ConditionSrc string
	program      *vm.Program
}

// CompilePhaseRules generates the rule set for a profile. Built-in
// conditions are produced with fmt.Sprintf from clamped integers, so they
// always compile; user rules may not.
func CompilePhaseRules(p Profile) ([]*PhaseRule, error) {
	p.Validate()
	rules := []*PhaseRule{
		{
			Name:         "protect-lead",
			Priority:     200,
			Phase:        PhaseProtectLead,
			ConditionSrc: fmt.Sprintf(`Leading() && StepsLeft * 100 <= TotalSteps * %d`, p.ProtectLeadPercent),
		},
		{
			Name:         "all-out-attack",
			Priority:     100,
			Phase:        PhaseAllOutAttack,
			ConditionSrc: fmt.Sprintf(`Trailing() && StepsLeft * 100 <= TotalSteps * %d`, p.AllOutAttackPercent),
		},
	}
	for _, rc := range p.PhaseRules {
		ph, err := ParsePhase(rc.Phase)
		if err != nil {
			return nil, fmt.Errorf("phase rule %q: %w", rc.Name, err)
		}
		rules = append(rules, &PhaseRule{
			Name:         rc.Name,
			Priority:     rc.Priority,
			Phase:        ph,
			ConditionSrc: rc.When,
		})
	}
	return rules, nil
}

// PhaseClassifier evaluates compiled phase rules in priority order.
type PhaseClassifier struct {
	rules []*PhaseRule
}

// NewPhaseClassifier compiles every condition into expr bytecode and sorts
// by priority. Equal priorities keep their declaration order.
func NewPhaseClassifier(rules []*PhaseRule) (*PhaseClassifier, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(PhaseEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile phase rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sorted := make([]*PhaseRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &PhaseClassifier{rules: sorted}, nil
}

// Classify returns the phase of the first matching rule, or PhaseNormal.
func (c *PhaseClassifier) Classify(env PhaseEnv) Phase {
	for _, r := range c.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("phase rule condition error", "rule", r.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); ok && match {
			return r.Phase
		}
	}
	return PhaseNormal
}

// Rules returns the rule names in evaluation order.
func (c *PhaseClassifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}
