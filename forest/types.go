package forest

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned by New when any count is below zero.
var ErrNegativeCount = errors.New("forest: animal count cannot be negative")

// Forest is a population of goats, wolves and lions.
// The zero value is the empty forest, which is stable.
type Forest struct {
	Goats  int
	Wolves int
	Lions  int
}

// Meal is a component-wise delta over a Forest.
type Meal struct {
	Name   string
	Goats  int
	Wolves int
	Lions  int
}

// Names of the three fixed meals.
const (
	WolfEatsGoat = "wolf-eats-goat"
	LionEatsGoat = "lion-eats-goat"
	LionEatsWolf = "lion-eats-wolf"
)

var meals = [...]Meal{
	{Name: WolfEatsGoat, Goats: -1, Wolves: -1, Lions: +1},
	{Name: LionEatsGoat, Goats: -1, Wolves: +1, Lions: -1},
	{Name: LionEatsWolf, Goats: +1, Wolves: -1, Lions: -1},
}

// Meals returns the three fixed meals in their canonical order.
// The returned slice is a fresh copy and may be modified by the caller.
func Meals() []Meal {
	out := make([]Meal, len(meals))
	copy(out, meals[:])

	return out
}

// New builds a Forest, rejecting negative counts with ErrNegativeCount.
func New(goats, wolves, lions int) (Forest, error) {
	if goats < 0 || wolves < 0 || lions < 0 {
		return Forest{}, fmt.Errorf("%w: goats=%d, wolves=%d, lions=%d",
			ErrNegativeCount, goats, wolves, lions)
	}

	return Forest{Goats: goats, Wolves: wolves, Lions: lions}, nil
}

// String renders the forest as "Forest [goats=G, wolves=W, lions=L]".
func (f Forest) String() string {
	return fmt.Sprintf("Forest [goats=%d, wolves=%d, lions=%d]", f.Goats, f.Wolves, f.Lions)
}

func (m Meal) String() string {
	return m.Name
}
