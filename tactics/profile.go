package tactics

// Profile is the tunable tactical posture of the team. Every field has a
// safe default; Validate clamps loaded values into range.
type Profile struct {
	Name string `yaml:"name" json:"name"`

	MatchSteps          int `yaml:"match_steps" json:"match_steps"`
	ProtectLeadPercent  int `yaml:"protect_lead_percent" json:"protect_lead_percent"`
	AllOutAttackPercent int `yaml:"all_out_attack_percent" json:"all_out_attack_percent"`

	MinOpenness            float64 `yaml:"min_openness" json:"min_openness"`
	PressureRadius         float64 `yaml:"pressure_radius" json:"pressure_radius"`
	HoldUpPressureRadius   float64 `yaml:"hold_up_pressure_radius" json:"hold_up_pressure_radius"`
	DefenderPressureRadius float64 `yaml:"defender_pressure_radius" json:"defender_pressure_radius"`
	CongestionThreshold    int     `yaml:"congestion_threshold" json:"congestion_threshold"`
	ShotLineX              float64 `yaml:"shot_line_x" json:"shot_line_x"`
	DefensiveLineDepth     float64 `yaml:"defensive_line_depth" json:"defensive_line_depth"`
	DefensiveLineFloor     float64 `yaml:"defensive_line_floor" json:"defensive_line_floor"`
	PressingTrigger        float64 `yaml:"pressing_trigger" json:"pressing_trigger"`
	ChannelSpread          float64 `yaml:"channel_spread" json:"channel_spread"`

	// PhaseRules are extra expr conditions evaluated alongside the
	// built-in protect-lead and all-out-attack rules.
	PhaseRules []PhaseRuleConfig `yaml:"phase_rules" json:"phase_rules"`
}

// PhaseRuleConfig is a user-supplied phase rule, e.g.
// {name: chase, priority: 300, phase: all_out_attack, when: "Lead() <= -2 && StepsLeft < 900"}.
type PhaseRuleConfig struct {
	Name     string `yaml:"name" json:"name"`
	Priority int    `yaml:"priority" json:"priority"`
	Phase    string `yaml:"phase" json:"phase"`
	When     string `yaml:"when" json:"when"`
}

// DefaultProfile returns the baseline phase-aware posture.
func DefaultProfile() Profile {
	return Profile{
		Name:                   "Balanced",
		MatchSteps:             3000,
		ProtectLeadPercent:     15,
		AllOutAttackPercent:    20,
		MinOpenness:            DefaultMinOpenness,
		PressureRadius:         0.1,
		HoldUpPressureRadius:   0.08,
		DefenderPressureRadius: 0.15,
		CongestionThreshold:    10,
		ShotLineX:              0.6,
		DefensiveLineDepth:     0.4,
		DefensiveLineFloor:     -0.8,
		PressingTrigger:        0.1,
		ChannelSpread:          0.2,
	}
}

// Validate clamps every parameter to its valid range.
func (p *Profile) Validate() {
	if p.Name == "" {
		p.Name = "Custom"
	}
	p.MatchSteps = clampInt(p.MatchSteps, 1, 1_000_000)
	p.ProtectLeadPercent = clampInt(p.ProtectLeadPercent, 0, 100)
	p.AllOutAttackPercent = clampInt(p.AllOutAttackPercent, 0, 100)
	p.MinOpenness = clamp(p.MinOpenness, 0, 1)
	p.PressureRadius = clamp(p.PressureRadius, 0, 0.5)
	p.HoldUpPressureRadius = clamp(p.HoldUpPressureRadius, 0, 0.5)
	p.DefenderPressureRadius = clamp(p.DefenderPressureRadius, 0, 0.5)
	p.CongestionThreshold = clampInt(p.CongestionThreshold, 0, 22)
	p.ShotLineX = clamp(p.ShotLineX, 0, 1)
	p.DefensiveLineDepth = clamp(p.DefensiveLineDepth, 0, 1)
	p.DefensiveLineFloor = clamp(p.DefensiveLineFloor, -1, 0)
	p.PressingTrigger = clamp(p.PressingTrigger, -1, 1)
	p.ChannelSpread = clamp(p.ChannelSpread, 0, 0.42)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
