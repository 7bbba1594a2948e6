package rules

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/nstehr/meanmax/meanmax-core/ipc"
	"github.com/nstehr/meanmax/meanmax-core/model"
)

func unitAt(id int, owner model.Owner, x, y int) model.Entity {
	e, _ := model.NewEntity(model.Row{ID: id, Kind: model.KindCombat, Owner: owner, X: x, Y: y})
	return e
}

func TestSupportTargetFarthest(t *testing.T) {
	own := unitAt(1, 0, 0, 0)
	enemies := []model.Entity{
		unitAt(2, 1, 300, 0),
		unitAt(3, 2, 0, 900),
		unitAt(4, 1, -450, 0),
	}
	got, err := SupportTarget(&own, enemies, model.Position{})
	if err != nil {
		t.Fatalf("SupportTarget() error: %v", err)
	}
	if got != (model.Position{X: 0, Y: 900}) {
		t.Errorf("SupportTarget() = %v, want (0, 900)", got)
	}
}

func TestSupportTargetTieKeepsFirst(t *testing.T) {
	own := unitAt(1, 0, 0, 0)
	// 900.2 and 900.8 both truncate to 900.
	enemies := []model.Entity{
		unitAt(2, 1, 900, 19),
		unitAt(3, 2, 900, 38),
		unitAt(4, 1, 10, 10),
	}
	got, err := SupportTarget(&own, enemies, model.Position{})
	if err != nil {
		t.Fatalf("SupportTarget() error: %v", err)
	}
	if got != (model.Position{X: 900, Y: 19}) {
		t.Errorf("SupportTarget() = %v, want (900, 19)", got)
	}
}

func TestSupportTargetWithoutSupport(t *testing.T) {
	enemies := []model.Entity{
		unitAt(2, 1, 300, 0),
		unitAt(3, 2, 0, 900),
	}
	got, err := SupportTarget(nil, enemies, model.Position{})
	if err != nil {
		t.Fatalf("SupportTarget() error: %v", err)
	}
	if got != (model.Position{X: 300, Y: 0}) {
		t.Errorf("SupportTarget() = %v, want first enemy at (300, 0)", got)
	}
}

func TestSupportTargetNoEnemies(t *testing.T) {
	own := unitAt(1, 0, 0, 0)
	fallback := model.Position{X: 7, Y: -7}
	for _, support := range []*model.Entity{&own, nil} {
		got, err := SupportTarget(support, nil, fallback)
		if !errors.Is(err, ErrNoEnemyCombat) {
			t.Errorf("SupportTarget() error = %v, want ErrNoEnemyCombat", err)
		}
		if !IsFatal(err) {
			t.Errorf("IsFatal(%v) = false, want true", err)
		}
		if got != fallback {
			t.Errorf("SupportTarget() = %v, want fallback %v", got, fallback)
		}
	}
}

func TestFirstWithin(t *testing.T) {
	units := []model.Entity{
		unitAt(1, 1, 5000, 0),
		unitAt(2, 1, 800, 0),
		unitAt(3, 1, 100, 0),
	}
	got, ok := FirstWithin(units, model.Position{}, 1000)
	if !ok || got.ID != 2 {
		t.Errorf("FirstWithin() = %d, %v; want unit 2", got.ID, ok)
	}

	// Strictly inside the radius.
	edge := []model.Entity{unitAt(1, 1, 1000, 0)}
	if _, ok := FirstWithin(edge, model.Position{}, 1000); ok {
		t.Error("FirstWithin() matched a unit exactly on the radius")
	}
	if _, ok := FirstWithin(nil, model.Position{}, 1000); ok {
		t.Error("FirstWithin(nil) matched")
	}
}

func TestFarthestFromEmpty(t *testing.T) {
	if _, ok := FarthestFrom(nil, model.Position{}); ok {
		t.Error("FarthestFrom(nil) reported a unit")
	}
}

func TestLeadAim(t *testing.T) {
	tests := []struct {
		target model.Position
		v      model.Velocity
		factor float64
		want   model.Position
	}{
		{model.Position{X: 500, Y: 500}, model.Velocity{VX: 10, VY: -4}, 1.5, model.Position{X: 485, Y: 506}},
		{model.Position{X: 500, Y: 500}, model.Velocity{VX: 3, VY: 3}, 1.5, model.Position{X: 495, Y: 495}},
		{model.Position{X: -500, Y: -500}, model.Velocity{VX: 3, VY: 3}, 1.5, model.Position{X: -504, Y: -504}},
		{model.Position{X: 0, Y: 0}, model.Velocity{}, 1.5, model.Position{}},
		{model.Position{X: 10, Y: 20}, model.Velocity{VX: 100, VY: 100}, 0, model.Position{X: 10, Y: 20}},
	}
	for _, tc := range tests {
		got := LeadAim(tc.target, tc.v, tc.factor)
		if got != tc.want {
			t.Errorf("LeadAim(%v, %v, %.1f) = %v, want %v", tc.target, tc.v, tc.factor, got, tc.want)
		}
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrNoHarvester, true},
		{fmt.Errorf("evaluate turn 3: %w", ErrNoEnemyCombat), true},
		{fmt.Errorf("turn 1: line 8: %w", errors.Join(ipc.ErrMalformedRow, errors.New("bad int"))), true},
		{fmt.Errorf("turn 2: read row 1 of 4: %w", ipc.ErrShortFrame), true},
		{io.EOF, false},
		{errors.New("write order: broken pipe"), false},
		{nil, false},
	}
	for _, tc := range tests {
		if got := IsFatal(tc.err); got != tc.want {
			t.Errorf("IsFatal(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
