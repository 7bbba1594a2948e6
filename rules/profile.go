package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the numbers the rule compiler bakes into conditions and
// actions. The defaults are the tuned values the bot ships with.
type Profile struct {
	Name               string  `yaml:"name"`
	SkillRageThreshold int     `yaml:"skill_rage_threshold"`
	SkillRadius        int     `yaml:"skill_radius"`
	LeadFactor         float64 `yaml:"lead_factor"`
	LaunchTurns        int     `yaml:"launch_turns"`
	HarvesterThrottle  int     `yaml:"harvester_throttle"`
	CombatThrottle     int     `yaml:"combat_throttle"`
	SupportThrottle    int     `yaml:"support_throttle"`
}

// Referee limits.
const (
	maxThrottle = 300
	maxRage     = 300
)

// DefaultProfile returns the stock tuning.
func DefaultProfile() Profile {
	return Profile{
		Name:               "default",
		SkillRageThreshold: 45,
		SkillRadius:        1000,
		LeadFactor:         1.5,
		LaunchTurns:        2,
		HarvesterThrottle:  200,
		CombatThrottle:     200,
		SupportThrottle:    300,
	}
}

// Validate clamps every value into the range the referee accepts.
func (p *Profile) Validate() {
	p.SkillRageThreshold = clampInt(p.SkillRageThreshold, 0, maxRage)
	p.SkillRadius = clampInt(p.SkillRadius, 0, 6000)
	p.LeadFactor = clamp(p.LeadFactor, 0, 10)
	p.LaunchTurns = clampInt(p.LaunchTurns, 0, 200)
	p.HarvesterThrottle = clampInt(p.HarvesterThrottle, 0, maxThrottle)
	p.CombatThrottle = clampInt(p.CombatThrottle, 0, maxThrottle)
	p.SupportThrottle = clampInt(p.SupportThrottle, 0, maxThrottle)
}

// LoadProfile reads a YAML profile. Keys absent from the file keep their
// default values; the result is validated.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	p.Validate()
	return p, nil
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
