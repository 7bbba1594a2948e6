package rules

import "github.com/nstehr/meanmax/meanmax-core/model"

// Targets are the resource positions chosen for this turn before the rules
// run: the wreck the harvester heads for and the carrier the combat unit
// rams.
type Targets struct {
	Wreck   model.Position
	Carrier model.Position
}

// RuleEnv is the immutable turn context handed to every condition and
// action. Exported fields and methods are callable from expr expressions.
type RuleEnv struct {
	World   model.World
	Turn    int
	Rage    int
	Targets Targets
	Origin  model.Position // fallback reference point
	Profile Profile
}

func (e RuleEnv) HasMyHarvester() bool { return e.World.MyHarvester != nil }
func (e RuleEnv) HasMyCombat() bool    { return e.World.MyCombat != nil }
func (e RuleEnv) HasMySupport() bool   { return e.World.MySupport != nil }

// EnemyHarvesters returns every harvester not owned by the controlling side.
func (e RuleEnv) EnemyHarvesters() []model.Entity { return e.World.Enemies(e.World.Harvesters) }

// EnemyCombats returns every combat unit not owned by the controlling side.
func (e RuleEnv) EnemyCombats() []model.Entity { return e.World.Enemies(e.World.Combats) }

// EnemyHarvesterWithin reports whether an enemy harvester is strictly
// closer than radius to our combat unit.
func (e RuleEnv) EnemyHarvesterWithin(radius int) bool {
	_, ok := e.firstEnemyWithin(e.EnemyHarvesters(), radius)
	return ok
}

// EnemyCombatWithin is EnemyHarvesterWithin for enemy combat units.
func (e RuleEnv) EnemyCombatWithin(radius int) bool {
	_, ok := e.firstEnemyWithin(e.EnemyCombats(), radius)
	return ok
}

func (e RuleEnv) firstEnemyWithin(units []model.Entity, radius int) (model.Entity, bool) {
	if e.World.MyCombat == nil {
		return model.Entity{}, false
	}
	return FirstWithin(units, e.World.MyCombat.Position, float64(radius))
}

// mine returns the controlling side's unit of kind k, or nil.
func (e RuleEnv) mine(k model.Kind) *model.Entity {
	switch k {
	case model.KindHarvester:
		return e.World.MyHarvester
	case model.KindCombat:
		return e.World.MyCombat
	case model.KindSupport:
		return e.World.MySupport
	}
	return nil
}
