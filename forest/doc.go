// Package forest models a magic forest: a population of goats, wolves and lions
// that changes only through three fixed meals.
//
// What
//
//   - Forest is an immutable, comparable triple of non-negative counts.
//   - Meal is an integer delta applied component-wise; a meal is legal for a
//     Forest only if no count would drop below zero.
//   - Meals() returns the three fixed meals:
//   - wolf-eats-goat  (goats -1, wolves -1, lions +1)
//   - lion-eats-goat  (goats -1, wolves +1, lions -1)
//   - lion-eats-wolf  (goats +1, wolves -1, lions -1)
//   - A Forest is stable when no meal is legal, i.e. at most one kind survives.
//
// Invariants
//
//   - Every meal lowers Sum() by exactly one, so all forests reached after k meals
//     from the same start share the sum S-k.
//   - The parity of every pairwise difference (goats-wolves, wolves-lions) is
//     preserved by every meal.
//   - Eat never returns a Forest with a negative count.
//
// Ordering
//
//	Compare imposes a total order over forests: lions first, then wolves, then
//	goats. It has no domain meaning; it exists for reproducible output.
//
// Usage
//
//	f, err := forest.New(3, 1, 1)
//	if err != nil {
//	    // ErrNegativeCount
//	}
//	for _, next := range f.Successors() {
//	    fmt.Println(next, next.IsStable())
//	}
package forest
