package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nstehr/meanmax/meanmax-core/ipc"
	"github.com/nstehr/meanmax/meanmax-core/model"
	"github.com/nstehr/meanmax/meanmax-core/rules"
)

// Agent owns the decision-making for a single match. The turn counter is
// the only value carried from one frame to the next.
type Agent struct {
	Side   model.Owner
	Engine *rules.Engine
	Picker TargetPicker
	turn   int
}

func New(side model.Owner, engine *rules.Engine) *Agent {
	return &Agent{Side: side, Engine: engine, Picker: RichestPicker{}}
}

// Turn returns the number of frames handled so far.
func (a *Agent) Turn() int { return a.turn }

// HandleFrame classifies one frame and asks the engine for the turn's
// orders. Errors are fatal for the match.
func (a *Agent) HandleFrame(f model.Frame) (ipc.Orders, error) {
	a.turn++

	world := model.Classify(f.Rows, a.Side)
	slog.Debug("frame received",
		"turn", a.turn,
		"score", f.ScoreOf(a.Side),
		"rage", f.RageOf(a.Side),
		"entities", world.Len(),
		"harvesters", len(world.Harvesters),
		"combats", len(world.Combats),
		"supports", len(world.Supports),
		"carriers", len(world.Carriers),
		"wrecks", len(world.Wrecks),
	)

	env := rules.RuleEnv{
		World:   world,
		Turn:    a.turn,
		Rage:    f.RageOf(a.Side),
		Targets: a.Picker.Pick(world),
		Origin:  model.Position{}, // arena centre
	}

	res, err := a.Engine.Evaluate(env)
	if err != nil {
		return ipc.Orders{}, fmt.Errorf("evaluate turn %d: %w", a.turn, err)
	}
	return res.Orders, nil
}

// Run plays the match over conn until the referee closes the input.
func (a *Agent) Run(ctx context.Context, conn *ipc.Connection) error {
	slog.Info("match started", "side", a.Side, "profile", a.Engine.Profile().Name)
	err := conn.ReadLoop(ctx, a.HandleFrame)
	if err != nil {
		slog.Error("match aborted", "turn", a.turn, "fatal", rules.IsFatal(err), "error", err)
		return err
	}
	slog.Info("match finished", "turns", a.turn)
	return nil
}
