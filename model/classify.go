package model

// Classify partitions rows into per-kind collections and picks out the
// controlling side's three looters.
//
// Rows with an unknown kind are dropped. If side owns more than one unit of
// a looter kind, the last such row wins. Every call builds fresh slices and
// entities; nothing is shared with rows or with earlier worlds.
func Classify(rows []Row, side Owner) World {
	w := World{Side: side}
	for _, r := range rows {
		e, ok := NewEntity(r)
		if !ok {
			continue
		}

		switch e.Details.(type) {
		case HarvesterDetails:
			w.Harvesters = append(w.Harvesters, e)
			if e.Owner == side {
				w.MyHarvester = own(e)
			}
		case CombatDetails:
			w.Combats = append(w.Combats, e)
			if e.Owner == side {
				w.MyCombat = own(e)
			}
		case SupportDetails:
			w.Supports = append(w.Supports, e)
			if e.Owner == side {
				w.MySupport = own(e)
			}
		case CarrierDetails:
			w.Carriers = append(w.Carriers, e)
		case WreckDetails:
			w.Wrecks = append(w.Wrecks, e)
		case HazardFieldDetails:
			w.HazardFields = append(w.HazardFields, e)
		case FrictionFieldDetails:
			w.FrictionFields = append(w.FrictionFields, e)
		}
	}
	return w
}

// own copies e so the slot never aliases a collection's backing array.
func own(e Entity) *Entity {
	return &e
}
