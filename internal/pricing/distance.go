package pricing

// DefaultDistanceKm is used for city pairs missing from the table.
const DefaultDistanceKm = 1000

type route struct {
	from CityCode
	to   CityCode
}

// DistanceTable maps unordered city pairs to road distance in kilometres.
// A table is read-only after construction and safe for concurrent use.
type DistanceTable struct {
	km       map[route]int64
	fallback int64
}

// Leg is a single table entry used to build a DistanceTable.
type Leg struct {
	From CityCode
	To   CityCode
	Km   int64
}

// NewDistanceTable builds a table from legs. Non-positive distances and
// self-loops are ignored. A non-positive fallback uses DefaultDistanceKm.
func NewDistanceTable(legs []Leg, fallback int64) *DistanceTable {
	if fallback <= 0 {
		fallback = DefaultDistanceKm
	}
	t := &DistanceTable{km: make(map[route]int64, len(legs)), fallback: fallback}
	for _, leg := range legs {
		if leg.Km <= 0 || leg.From == leg.To {
			continue
		}
		t.km[route{from: leg.From, to: leg.To}] = leg.Km
	}
	return t
}

// Lookup returns the distance between two cities. The same city yields zero;
// pairs are matched in either order; anything else falls back to the default.
func (t *DistanceTable) Lookup(from, to CityCode) int64 {
	if from == to {
		return 0
	}
	if t == nil {
		return DefaultDistanceKm
	}
	if km, ok := t.km[route{from: from, to: to}]; ok {
		return km
	}
	if km, ok := t.km[route{from: to, to: from}]; ok {
		return km
	}
	return t.fallback
}

// Len reports the number of stored pairs.
func (t *DistanceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.km)
}

var defaultLegs = []Leg{
	{Moscow, SaintPetersburg, 700},
	{Moscow, Kazan, 800},
	{Moscow, Yekaterinburg, 1800},
	{Moscow, Novosibirsk, 3200},
	{Moscow, NizhnyNovgorod, 400},
	{Moscow, Samara, 1050},
	{Moscow, Rostov, 1100},
	{Moscow, Krasnodar, 1350},
	{Moscow, Voronezh, 500},
	{SaintPetersburg, Kazan, 1500},
	{SaintPetersburg, Yekaterinburg, 2500},
	{SaintPetersburg, Novosibirsk, 3900},
	{SaintPetersburg, NizhnyNovgorod, 1100},
	{SaintPetersburg, Samara, 1750},
	{SaintPetersburg, Rostov, 1800},
	{SaintPetersburg, Krasnodar, 2050},
	{SaintPetersburg, Voronezh, 1200},
	{Kazan, Yekaterinburg, 1000},
	{Kazan, Novosibirsk, 2400},
	{Kazan, NizhnyNovgorod, 400},
	{Kazan, Samara, 350},
	{Kazan, Rostov, 1300},
	{Kazan, Krasnodar, 1550},
	{Kazan, Voronezh, 800},
	{Yekaterinburg, Novosibirsk, 1500},
	{Yekaterinburg, NizhnyNovgorod, 1400},
	{Yekaterinburg, Samara, 850},
	{Yekaterinburg, Rostov, 2300},
	{Yekaterinburg, Krasnodar, 2550},
	{Yekaterinburg, Voronezh, 1700},
	{Novosibirsk, NizhnyNovgorod, 2800},
	{Novosibirsk, Samara, 2150},
	{Novosibirsk, Rostov, 3700},
	{Novosibirsk, Krasnodar, 3950},
	{Novosibirsk, Voronezh, 3100},
	{NizhnyNovgorod, Samara, 650},
	{NizhnyNovgorod, Rostov, 1100},
	{NizhnyNovgorod, Krasnodar, 1350},
	{NizhnyNovgorod, Voronezh, 500},
	{Samara, Rostov, 1150},
	{Samara, Krasnodar, 1400},
	{Samara, Voronezh, 800},
	{Rostov, Krasnodar, 270},
	{Rostov, Voronezh, 600},
	{Krasnodar, Voronezh, 850},
}

var defaultTable = NewDistanceTable(defaultLegs, DefaultDistanceKm)

// DefaultLegs returns a copy of the built-in city pairs.
func DefaultLegs() []Leg {
	return append([]Leg(nil), defaultLegs...)
}

// DefaultDistances returns the built-in distance table.
func DefaultDistances() *DistanceTable { return defaultTable }
