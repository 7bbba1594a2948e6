package agent

import (
	"log/slog"

	"github.com/nstehr/meanmax/meanmax-core/model"
	"github.com/nstehr/meanmax/meanmax-core/rules"
)

// TargetPicker chooses the turn's resource objectives before the rule
// engine runs.
type TargetPicker interface {
	Pick(w model.World) rules.Targets
}

// TargetPickerFunc adapts a plain function to TargetPicker.
type TargetPickerFunc func(w model.World) rules.Targets

func (f TargetPickerFunc) Pick(w model.World) rules.Targets { return f(w) }

// RichestPicker sends the harvester to the wreck holding the most water
// and the combat unit to the fullest carrier. Ties go to the first row;
// an empty collection leaves that target at the origin.
type RichestPicker struct{}

func (RichestPicker) Pick(w model.World) rules.Targets {
	var t rules.Targets
	if wreck, ok := richest(w.Wrecks); ok {
		t.Wreck = wreck.Position
	}
	if carrier, ok := richest(w.Carriers); ok {
		t.Carrier = carrier.Position
	}
	slog.Debug("targets picked",
		"wrecks", len(w.Wrecks),
		"carriers", len(w.Carriers),
		"wreck", t.Wreck.String(),
		"carrier", t.Carrier.String(),
	)
	return t
}

func richest(units []model.Entity) (model.Entity, bool) {
	if len(units) == 0 {
		return model.Entity{}, false
	}
	best := units[0]
	for _, u := range units[1:] {
		if u.Cargo() > best.Cargo() {
			best = u
		}
	}
	return best, true
}
