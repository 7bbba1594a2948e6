package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/nstehr/meanmax/meanmax-core/ipc"
	"github.com/nstehr/meanmax/meanmax-core/model"
)

// ErrInvariant marks a turn the engine cannot answer. The referee's rules
// guarantee these never happen, so the match loop stops on them.
var ErrInvariant = errors.New("turn invariant violated")

var (
	ErrNoHarvester   = fmt.Errorf("%w: controlling side has no harvester", ErrInvariant)
	ErrNoEnemyCombat = fmt.Errorf("%w: no enemy combat unit", ErrInvariant)
)

// IsFatal reports whether err must end the match: a broken turn invariant
// or a desynchronised input stream.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInvariant) ||
		errors.Is(err, ipc.ErrMalformedRow) ||
		errors.Is(err, ipc.ErrShortFrame)
}

// FirstWithin returns the first unit, in slice order, strictly closer than
// radius to origin. It is not the nearest one.
func FirstWithin(units []model.Entity, origin model.Position, radius float64) (model.Entity, bool) {
	for _, u := range units {
		if u.Position.Distance(origin) < radius {
			return u, true
		}
	}
	return model.Entity{}, false
}

// FarthestFrom returns the unit with the greatest whole-unit distance from
// origin. Distances are truncated before comparing and the earliest unit
// wins a tie.
func FarthestFrom(units []model.Entity, origin model.Position) (model.Entity, bool) {
	if len(units) == 0 {
		return model.Entity{}, false
	}
	best := 0
	bestDist := math.MinInt
	for i, u := range units {
		d := int(u.Position.Distance(origin))
		if d > bestDist {
			best, bestDist = i, d
		}
	}
	return units[best], true
}

// SupportTarget picks where the support unit drives this turn: the enemy
// combat unit farthest from it, or the first enemy combat unit when our
// support is missing. enemies must already exclude the controlling side.
// With no enemies it returns fallback and ErrNoEnemyCombat.
func SupportTarget(own *model.Entity, enemies []model.Entity, fallback model.Position) (model.Position, error) {
	if len(enemies) == 0 {
		return fallback, ErrNoEnemyCombat
	}
	if own == nil {
		slog.Warn("support unit missing, following first enemy combat unit", "target", enemies[0].ID)
		return enemies[0].Position, nil
	}
	target, _ := FarthestFrom(enemies, own.Position)
	return target.Position, nil
}

// LeadAim offsets target against our own drift: target - velocity*factor on
// each axis, truncated toward zero.
func LeadAim(target model.Position, v model.Velocity, factor float64) model.Position {
	return model.Position{
		X: int(float64(target.X) - float64(v.VX)*factor),
		Y: int(float64(target.Y) - float64(v.VY)*factor),
	}
}
