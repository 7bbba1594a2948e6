package rules

import "github.com/nstehr/meanmax/meanmax-core/model"

// Looter role constants, used as rule categories.
const (
	RoleHarvester = "harvester"
	RoleCombat    = "combat"
	RoleSupport   = "support"
)

// Unit labels echoed at the end of each order line.
const (
	LabelHarvester = "Reaper"
	LabelCombat    = "Destroyer"
	LabelSupport   = "Doof"
)

// role maps a looter role to the entity kind it drives.
type role struct {
	name string
	kind model.Kind
}

// roles is the static registry, in referee output order.
var roles = []role{
	{name: RoleHarvester, kind: model.KindHarvester},
	{name: RoleCombat, kind: model.KindCombat},
	{name: RoleSupport, kind: model.KindSupport},
}
