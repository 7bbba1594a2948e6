package model

// Frame is everything the arena sends for one turn: the header scalars and
// the raw entity rows in the order they arrived.
type Frame struct {
	Scores [3]int // indexed by owner
	Rages  [3]int
	Rows   []Row
}

// ScoreOf and RageOf read side's header slot. The header is indexed the same
// way as the owner column, so side must be 0, 1 or 2.
func (f Frame) ScoreOf(side Owner) int { return f.Scores[side] }
func (f Frame) RageOf(side Owner) int  { return f.Rages[side] }

// Row is one entity line: id, kind, owner, mass, radius, x, y, vx, vy,
// extra, extra2.
type Row struct {
	ID     int
	Kind   Kind
	Owner  Owner
	Mass   float64
	Radius int
	X      int
	Y      int
	VX     int
	VY     int
	Extra  int
	Extra2 int
}

// World is a classified snapshot. Collections hold every side's entities in
// row order; the My* slots hold the controlling side's looters and are nil
// when that unit is absent this turn.
type World struct {
	Side Owner

	Harvesters     []Entity
	Combats        []Entity
	Supports       []Entity
	Carriers       []Entity
	Wrecks         []Entity
	HazardFields   []Entity
	FrictionFields []Entity

	MyHarvester *Entity
	MyCombat    *Entity
	MySupport   *Entity
}

// Enemies filters out the controlling side's entities. Neutral entities are
// kept; looter collections never contain them.
func (w World) Enemies(units []Entity) []Entity {
	var out []Entity
	for _, u := range units {
		if u.Owner != w.Side {
			out = append(out, u)
		}
	}
	return out
}

// Len returns the number of classified entities.
func (w World) Len() int {
	return len(w.Harvesters) + len(w.Combats) + len(w.Supports) +
		len(w.Carriers) + len(w.Wrecks) + len(w.HazardFields) + len(w.FrictionFields)
}
