package rules

import (
	"log/slog"

	"github.com/nstehr/meanmax/meanmax-core/ipc"
)

// ActionHarvesterMissing fails the turn; the harvester is never absent.
func ActionHarvesterMissing(env RuleEnv) (ipc.Command, error) {
	return nil, ErrNoHarvester
}

// ActionHarvesterLaunch gets the harvester moving at full throttle during
// the opening turns, aiming ahead of its own drift.
func ActionHarvesterLaunch(env RuleEnv) (ipc.Command, error) {
	h := env.World.MyHarvester
	if h == nil {
		return nil, ErrNoHarvester
	}
	aim := LeadAim(env.Targets.Wreck, h.Velocity, env.Profile.LeadFactor)
	slog.Debug("harvester launch",
		"turn", env.Turn,
		"speed", h.Velocity.Magnitude(),
		"position", h.Position.String(),
		"aim", aim.String(),
	)
	return ipc.MoveCommand{X: aim.X, Y: aim.Y, Throttle: env.Profile.HarvesterThrottle, Label: LabelHarvester}, nil
}

// ActionHarvesterHold coasts on the current velocity.
func ActionHarvesterHold(env RuleEnv) (ipc.Command, error) {
	h := env.World.MyHarvester
	if h == nil {
		return nil, ErrNoHarvester
	}
	aim := LeadAim(env.Targets.Wreck, h.Velocity, env.Profile.LeadFactor)
	slog.Debug("harvester holding course",
		"turn", env.Turn,
		"speed", h.Velocity.Magnitude(),
		"position", h.Position.String(),
		"aim", aim.String(),
	)
	return ipc.WaitCommand{Label: LabelHarvester, VX: h.Velocity.VX, VY: h.Velocity.VY}, nil
}

// ActionCombatAdvance drives the combat unit at the chosen carrier.
func ActionCombatAdvance(env RuleEnv) (ipc.Command, error) {
	t := env.Targets.Carrier
	return ipc.MoveCommand{X: t.X, Y: t.Y, Throttle: env.Profile.CombatThrottle, Label: LabelCombat}, nil
}

// ActionCombatMissingUnits advances on the carrier when a teammate is gone.
func ActionCombatMissingUnits(env RuleEnv) (ipc.Command, error) {
	slog.Warn("combat decision without full roster, advancing on carrier",
		"hasCombat", env.HasMyCombat(),
		"hasSupport", env.HasMySupport(),
	)
	return ActionCombatAdvance(env)
}

// ActionCombatOutOfRange advances while rage waits for a target in range.
func ActionCombatOutOfRange(env RuleEnv) (ipc.Command, error) {
	slog.Debug("rage available but no enemy in skill range", "rage", env.Rage)
	return ActionCombatAdvance(env)
}

// ActionSkillEnemyHarvester throws the grenade at the first enemy
// harvester in range.
func ActionSkillEnemyHarvester(env RuleEnv) (ipc.Command, error) {
	target, ok := env.firstEnemyWithin(env.EnemyHarvesters(), env.Profile.SkillRadius)
	if !ok {
		return ActionCombatAdvance(env)
	}
	slog.Debug("skill on enemy harvester", "rage", env.Rage, "target", target.ID)
	return ipc.SkillCommand{X: target.Position.X, Y: target.Position.Y, Label: LabelCombat}, nil
}

// ActionSkillEnemyCombat throws the grenade at the first enemy combat unit
// in range.
func ActionSkillEnemyCombat(env RuleEnv) (ipc.Command, error) {
	target, ok := env.firstEnemyWithin(env.EnemyCombats(), env.Profile.SkillRadius)
	if !ok {
		return ActionCombatAdvance(env)
	}
	slog.Debug("skill on enemy combat unit", "rage", env.Rage, "target", target.ID)
	return ipc.SkillCommand{X: target.Position.X, Y: target.Position.Y, Label: LabelCombat}, nil
}

// ActionSupportChase drives the support unit at the position SupportTarget
// picks.
func ActionSupportChase(env RuleEnv) (ipc.Command, error) {
	pos, err := SupportTarget(env.World.MySupport, env.EnemyCombats(), env.Origin)
	if err != nil {
		return nil, err
	}
	return ipc.MoveCommand{X: pos.X, Y: pos.Y, Throttle: env.Profile.SupportThrottle, Label: LabelSupport}, nil
}
