// Package magicforest computes the stable populations of a magic forest.
//
// A forest holds goats, wolves and lions. Three meals change it:
//
//	wolf eats goat  → the wolf becomes a lion
//	lion eats goat  → the lion becomes a wolf
//	lion eats wolf  → the lion becomes a goat
//
// A forest is stable once no meal is possible. Starting from one forest, the
// search advances every reachable population one meal at a time, collapsing
// duplicates, until a whole level is stable.
//
// Under the hood the module is organized as:
//
//	forest/    — Forest values, the three meals, stability and ordering
//	frontier/  — the level-by-level search: strategies, stop rules, tracing
//	internal/  — CLI wiring: config (viper), logging (zap), metrics (prometheus)
//	cmd/       — the magicforest binary
//
// Quick example:
//
//	stable, err := frontier.FindStable(forest.Forest{Goats: 117, Wolves: 155, Lions: 106})
//
//	go install github.com/katalvlaran/magicforest/cmd/magicforest@latest
//	magicforest 117 155 106
package magicforest
