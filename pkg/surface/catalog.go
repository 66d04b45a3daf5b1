package surface

import "sort"

// Entry is a named surface with the closure that suits its domain.
type Entry struct {
	Name        string
	Description string
	Function    Function
	Closure     Closure
}

var catalog = map[string]Entry{
	"plane": {
		Name:        "plane",
		Description: "unit square in the XY plane",
		Function:    UnitPlane(),
		Closure:     Closure{OpenU: true, OpenV: true},
	},
	"torus": {
		Name:        "torus",
		Description: "ring torus, both axes periodic",
		Function:    Torus{Radius: 1, TubeRadius: 0.4},
		Closure:     Closure{},
	},
	"boy": {
		Name:        "boy",
		Description: "Boy's surface, Bryant-Kusner parametrization of the projective plane",
		Function:    Boy{Scale: 1},
		Closure:     Closure{OpenU: true},
	},
	"crosscap": {
		Name:        "crosscap",
		Description: "cross-cap model of the projective plane, with pinch points",
		Function:    CrossCap{Scale: 1},
		Closure:     Closure{OpenV: true},
	},
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Entry, bool) {
	e, ok := catalog[name]
	return e, ok
}

// Names returns the catalog surface names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog returns every entry sorted by name.
func Catalog() []Entry {
	names := Names()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = catalog[name]
	}
	return entries
}

// Next returns the name following name in catalog order, wrapping around.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
