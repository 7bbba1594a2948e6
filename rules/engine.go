package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/meanmax/meanmax-core/ipc"
)

// Engine runs compiled rules against one turn's context. Rules fire in
// priority order and the first rule to fire in a category decides that
// looter's order.
type Engine struct {
	rules   []*Rule
	profile Profile
}

// Decision records which rule produced a looter's order.
type Decision struct {
	Role     string
	Rule     string
	Degraded bool
	Command  ipc.Command
}

// Result is the engine's answer for one turn.
type Result struct {
	Orders    ipc.Orders
	Decisions []Decision // referee order
}

// NewEngine compiles the rule set for p into expr bytecode and sorts it by
// priority.
func NewEngine(p Profile) (*Engine, error) {
	p.Validate()
	return newEngine(CompileProfile(p), p)
}

func newEngine(rules []*Rule, p Profile) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, profile: p}, nil
}

// Profile returns the tuning the engine was compiled with.
func (e *Engine) Profile() Profile { return e.profile }

// Evaluate decides one order per looter. The returned error is non-nil only
// for turns that cannot be answered; see IsFatal.
func (e *Engine) Evaluate(env RuleEnv) (Result, error) {
	env.Profile = e.profile
	decided := make(map[string]Decision, len(roles))

	for _, r := range e.rules {
		if _, ok := decided[r.Category]; ok {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		cmd, err := r.Action(env)
		if err != nil {
			return Result{}, fmt.Errorf("rule %q: %w", r.Name, err)
		}

		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category, "order", cmd.String())
		if r.Degraded {
			slog.Warn("fallback order", "rule", r.Name, "category", r.Category, "turn", env.Turn)
		}
		decided[r.Category] = Decision{Role: r.Category, Rule: r.Name, Degraded: r.Degraded, Command: cmd}
	}

	var res Result
	for _, ro := range roles {
		d, ok := decided[ro.name]
		if !ok {
			return Result{}, fmt.Errorf("%w: no rule fired for %s", ErrInvariant, ro.name)
		}
		if u := env.mine(ro.kind); u != nil {
			slog.Debug("order", "role", ro.name, "unit", u.ID, "position", u.Position.String(), "order", d.Command.String())
		}
		res.Decisions = append(res.Decisions, d)
	}
	res.Orders = ipc.Orders{
		Harvester: res.Decisions[0].Command,
		Combat:    res.Decisions[1].Command,
		Support:   res.Decisions[2].Command,
	}
	return res, nil
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
