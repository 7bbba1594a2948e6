package rules

import "fmt"

// CompileProfile generates the complete rule set for a tuning profile.
// All conditions are built via fmt.Sprintf with interpolated values, so the
// compiler never generates invalid expr. Every category ends in a rule whose
// condition is `true`.
func CompileProfile(p Profile) []*Rule {
	p.Validate()
	var rules []*Rule

	// --- Harvester ---

	rules = append(rules, &Rule{
		Name:         "harvester-missing",
		Priority:     1000,
		Category:     RoleHarvester,
		ConditionSrc: `!HasMyHarvester()`,
		Action:       ActionHarvesterMissing,
	})

	rules = append(rules, &Rule{
		Name:         "harvester-launch",
		Priority:     500,
		Category:     RoleHarvester,
		ConditionSrc: fmt.Sprintf(`Turn <= %d`, p.LaunchTurns),
		Action:       ActionHarvesterLaunch,
	})

	rules = append(rules, &Rule{
		Name:         "harvester-hold",
		Priority:     0,
		Category:     RoleHarvester,
		ConditionSrc: `true`,
		Action:       ActionHarvesterHold,
	})

	// --- Combat ---
	// The grenade needs rage; until then the unit keeps breaking carriers.
	// Enemy harvesters are checked before enemy combat units.

	rules = append(rules, &Rule{
		Name:         "combat-missing-units",
		Priority:     1000,
		Category:     RoleCombat,
		Degraded:     true,
		ConditionSrc: `!HasMySupport() || !HasMyCombat()`,
		Action:       ActionCombatMissingUnits,
	})

	rules = append(rules, &Rule{
		Name:         "combat-rage-short",
		Priority:     800,
		Category:     RoleCombat,
		ConditionSrc: fmt.Sprintf(`Rage < %d`, p.SkillRageThreshold),
		Action:       ActionCombatAdvance,
	})

	rules = append(rules, &Rule{
		Name:         "combat-skill-harvester",
		Priority:     600,
		Category:     RoleCombat,
		ConditionSrc: fmt.Sprintf(`Rage >= %d && EnemyHarvesterWithin(%d)`, p.SkillRageThreshold, p.SkillRadius),
		Action:       ActionSkillEnemyHarvester,
	})

	rules = append(rules, &Rule{
		Name:         "combat-skill-combat",
		Priority:     500,
		Category:     RoleCombat,
		ConditionSrc: fmt.Sprintf(`Rage >= %d && EnemyCombatWithin(%d)`, p.SkillRageThreshold, p.SkillRadius),
		Action:       ActionSkillEnemyCombat,
	})

	rules = append(rules, &Rule{
		Name:         "combat-advance",
		Priority:     0,
		Category:     RoleCombat,
		ConditionSrc: `true`,
		Action:       ActionCombatOutOfRange,
	})

	// --- Support ---

	rules = append(rules, &Rule{
		Name:         "support-missing",
		Priority:     1000,
		Category:     RoleSupport,
		Degraded:     true,
		ConditionSrc: `!HasMySupport()`,
		Action:       ActionSupportChase,
	})

	rules = append(rules, &Rule{
		Name:         "support-chase-farthest",
		Priority:     0,
		Category:     RoleSupport,
		ConditionSrc: `true`,
		Action:       ActionSupportChase,
	})

	return rules
}

// DefaultRules compiles the stock profile.
func DefaultRules() []*Rule {
	return CompileProfile(DefaultProfile())
}
