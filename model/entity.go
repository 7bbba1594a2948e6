package model

import "fmt"

// Kind is the discriminant carried in column two of every snapshot row.
type Kind int

const (
	KindHarvester     Kind = 0 // Reaper: harvests water from wrecks
	KindCombat        Kind = 1 // Destroyer: breaks carriers, throws grenades
	KindSupport       Kind = 2 // Doof: builds rage, spills oil
	KindCarrier       Kind = 3 // Tanker: leaves a wreck when destroyed
	KindWreck         Kind = 4
	KindHazardField   Kind = 5 // tar pool
	KindFrictionField Kind = 6 // oil pool
)

var kindNames = [...]string{
	KindHarvester:     "harvester",
	KindCombat:        "combat",
	KindSupport:       "support",
	KindCarrier:       "carrier",
	KindWreck:         "wreck",
	KindHazardField:   "hazard_field",
	KindFrictionField: "friction_field",
}

// Valid reports whether k is one of the seven kinds the arena emits.
func (k Kind) Valid() bool {
	return k >= KindHarvester && k <= KindFrictionField
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Owner identifies a side. Tankers, wrecks and pools belong to nobody.
type Owner int

const NeutralOwner Owner = -1

// Friction constants per looter class.
const (
	HarvesterFriction = 0.2
	CombatFriction    = 0.3
	SupportFriction   = 0.25
	CarrierFriction   = 0.4
)

// Body is the physical record shared by every entity.
type Body struct {
	ID       int
	Kind     Kind
	Owner    Owner
	Mass     float64
	Radius   int
	Position Position
	Velocity Velocity
}

// Details is the kind-specific part of an entity. The set of
// implementations is closed; switch on the concrete type.
type Details interface {
	kind() Kind
}

type HarvesterDetails struct{ Friction float64 }

type CombatDetails struct{ Friction float64 }

type SupportDetails struct{ Friction float64 }

type CarrierDetails struct {
	Friction float64
	Throttle float64
	Cargo    int
	Capacity int
}

type WreckDetails struct{ Cargo int }

type HazardFieldDetails struct{}

type FrictionFieldDetails struct{}

func (HarvesterDetails) kind() Kind     { return KindHarvester }
func (CombatDetails) kind() Kind        { return KindCombat }
func (SupportDetails) kind() Kind       { return KindSupport }
func (CarrierDetails) kind() Kind       { return KindCarrier }
func (WreckDetails) kind() Kind         { return KindWreck }
func (HazardFieldDetails) kind() Kind   { return KindHazardField }
func (FrictionFieldDetails) kind() Kind { return KindFrictionField }

// Entity is one object from a snapshot: the common body plus a payload
// whose concrete type always agrees with Body.Kind.
type Entity struct {
	Body
	Details Details
}

// NewEntity builds the entity for a parsed row. ok is false for kinds the
// arena does not define.
func NewEntity(r Row) (Entity, bool) {
	var d Details
	switch r.Kind {
	case KindHarvester:
		d = HarvesterDetails{Friction: HarvesterFriction}
	case KindCombat:
		d = CombatDetails{Friction: CombatFriction}
	case KindSupport:
		d = SupportDetails{Friction: SupportFriction}
	case KindCarrier:
		d = CarrierDetails{
			Friction: CarrierFriction,
			Throttle: 2.5 + 0.5*float64(r.Extra),
			Cargo:    r.Extra,
			Capacity: r.Extra2,
		}
	case KindWreck:
		d = WreckDetails{Cargo: r.Extra}
	case KindHazardField:
		d = HazardFieldDetails{}
	case KindFrictionField:
		d = FrictionFieldDetails{}
	default:
		return Entity{}, false
	}
	return Entity{
		Body: Body{
			ID:       r.ID,
			Kind:     d.kind(),
			Owner:    r.Owner,
			Mass:     r.Mass,
			Radius:   r.Radius,
			Position: Position{X: r.X, Y: r.Y},
			Velocity: Velocity{VX: r.VX, VY: r.VY},
		},
		Details: d,
	}, true
}

// Cargo returns the water carried by a carrier or left in a wreck.
func (e Entity) Cargo() int {
	switch d := e.Details.(type) {
	case CarrierDetails:
		return d.Cargo
	case WreckDetails:
		return d.Cargo
	}
	return 0
}

// Friction returns the drag coefficient for mobile kinds, zero otherwise.
func (e Entity) Friction() float64 {
	switch d := e.Details.(type) {
	case HarvesterDetails:
		return d.Friction
	case CombatDetails:
		return d.Friction
	case SupportDetails:
		return d.Friction
	case CarrierDetails:
		return d.Friction
	}
	return 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%s(id=%d, owner=%d, mass=%g, radius=%d, pos=%s, speed=%s)",
		e.Kind, e.ID, e.Owner, e.Mass, e.Radius, e.Position, e.Velocity)
}
