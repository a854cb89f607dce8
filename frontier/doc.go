// Package frontier finds every stable forest reachable from an initial forest by
// advancing the whole set of reachable populations one meal at a time.
//
// What
//
//   - Level 0 is the frontier {initial}. Level k+1 is the deduplicated union of
//     the successors of every forest on level k.
//   - After each level is built, a stop rule is tested on it:
//   - AllStable (default): stop when every forest on the level is stable.
//   - AnyStable: stop at the first level holding at least one stable forest.
//   - Both rules also stop on an empty level.
//   - When the rule fires, the stable members of that level are returned,
//     sorted by forest.Compare.
//
// Note that stable forests on a level that does not satisfy the rule produce no
// successors and therefore drop out of the next level. The search reports the
// stable forests of the stopping level only; it is not a shortest-path search.
//
// Strategies
//
//   - Sequential: one accumulating set over the whole level.
//   - Parallel:   the level is split into chunks; each chunk is expanded by its own
//     goroutine into a private set, and the sets are merged sequentially.
//   - Pipelined:  one goroutine per meal walks the whole level; the per-meal sets
//     are merged sequentially.
//
// All strategies produce the same levels, results and trace links. Forests are
// immutable values and are shared across goroutines without locking.
//
// Termination
//
//	Every meal lowers the animal count by one, so level k only holds forests whose
//	sum is S-k for a start sum S. The search therefore ends after at most S levels.
//	Each level holds at most (S-k+1)(S-k+2)/2 forests.
//
// Usage
//
//	stable, err := frontier.FindStable(forest.Forest{Goats: 3, Wolves: 1, Lions: 1})
//
//	res, err := frontier.Search(
//	    initial,
//	    frontier.WithContext(ctx),
//	    frontier.WithStrategy(frontier.Parallel),
//	    frontier.WithWorkers(8),
//	    frontier.WithTrace(),
//	    frontier.WithOnLevel(func(depth, size int) error { /* ... */ return nil }),
//	)
//	meals, err := res.PathTo(res.Stable[0])
//
// Options
//
//   - DefaultOptions(): background context, Sequential, AllStable, GOMAXPROCS
//     workers, no depth limit, no trace, no-op hook, no-op logger.
//   - WithContext(ctx):       cancellation, checked once per level.
//   - WithStrategy(s):        Sequential, Parallel or Pipelined.
//   - WithStopRule(r):        AllStable or AnyStable.
//   - WithWorkers(n):         goroutine limit for Parallel (n==0 means GOMAXPROCS).
//   - WithMaxDepth(d):        fail with ErrDepthExceeded past depth d (d==0: no limit).
//   - WithTrace():            keep one parent link per forest for Result.PathTo.
//   - WithOnLevel(fn):        called once per level; a returned error aborts.
//   - WithLogger(l):          zap logger for per-level debug output.
//
// Errors
//
//   - ErrOptionViolation  for invalid options.
//   - ErrDepthExceeded    when MaxDepth is reached before the stop rule fires.
//   - ErrNoTrace, ErrUnreachable from Result.PathTo.
//   - context errors and wrapped OnLevel errors.
package frontier
