package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/meanmax/meanmax-core/ipc"
)

// ActionFunc builds the order for a rule's looter once its condition holds.
type ActionFunc func(env RuleEnv) (ipc.Command, error)

// Rule is the atomic unit of looter behavior: a condition → action pair.
// Category names the looter the rule drives; the engine stops at the first
// rule that fires in each category.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // looter role, see roles.go
	Degraded     bool        // rule is a fallback for a missing unit
	ConditionSrc string      // expr source (preserved for logging)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
