package forest

import "slices"

// Eat applies m to f. The second result is false when the meal is not
// applicable, i.e. when any resulting count would be negative.
func (f Forest) Eat(m Meal) (Forest, bool) {
	next := Forest{
		Goats:  f.Goats + m.Goats,
		Wolves: f.Wolves + m.Wolves,
		Lions:  f.Lions + m.Lions,
	}
	if next.Goats < 0 || next.Wolves < 0 || next.Lions < 0 {
		return Forest{}, false
	}

	return next, true
}

// Meal applies every meal in ms to f and returns the forests produced by the
// legal ones, in the order of ms.
func (f Forest) Meal(ms []Meal) []Forest {
	out := make([]Forest, 0, len(ms))
	for _, m := range ms {
		if next, ok := f.Eat(m); ok {
			out = append(out, next)
		}
	}

	return out
}

// Successors returns the forests reachable from f by exactly one of the fixed
// meals. The result holds between zero and three distinct forests.
func (f Forest) Successors() []Forest {
	return f.Meal(meals[:])
}

// IsStable reports whether no meal is legal for f.
func (f Forest) IsStable() bool {
	for _, m := range meals {
		if _, ok := f.Eat(m); ok {
			return false
		}
	}

	return true
}

// Sum returns the total number of animals.
func (f Forest) Sum() int {
	return f.Goats + f.Wolves + f.Lions
}

// Compare orders forests by lions, then wolves, then goats.
// It returns -1, 0 or +1.
func Compare(a, b Forest) int {
	switch {
	case a.Lions != b.Lions:
		return sign(a.Lions - b.Lions)
	case a.Wolves != b.Wolves:
		return sign(a.Wolves - b.Wolves)
	default:
		return sign(a.Goats - b.Goats)
	}
}

// Sort orders fs in place by Compare.
func Sort(fs []Forest) {
	slices.SortFunc(fs, Compare)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
