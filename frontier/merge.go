package frontier

import (
	"github.com/katalvlaran/magicforest/forest"
	"golang.org/x/sync/errgroup"
)

// link names the parent a forest was first reached from and the meal index used.
type link struct {
	parent forest.Forest
	meal   int
}

// before reports whether l should win over other as the recorded parent:
// the smaller parent by forest.Compare, ties broken by meal order.
func (l link) before(other link) bool {
	if c := forest.Compare(l.parent, other.parent); c != 0 {
		return c < 0
	}

	return l.meal < other.meal
}

// successorSet maps every forest of a level to its preferred parent link.
// Keys deduplicate; the link choice is independent of insertion order.
type successorSet map[forest.Forest]link

func (set successorSet) offer(f forest.Forest, l link) {
	if cur, ok := set[f]; ok && !l.before(cur) {
		return
	}
	set[f] = l
}

// feed applies meals[lo:hi] to f and offers every legal result to set.
func (set successorSet) feed(f forest.Forest, meals []forest.Meal, lo, hi int) {
	for i := lo; i < hi; i++ {
		if next, ok := f.Eat(meals[i]); ok {
			set.offer(next, link{parent: f, meal: i})
		}
	}
}

// merge folds partial sets into the first one.
func merge(parts []successorSet) successorSet {
	if len(parts) == 0 {
		return successorSet{}
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		for f, l := range p {
			acc.offer(f, l)
		}
	}

	return acc
}

// expandSequential folds the whole level into one shared set.
func (s *searcher) expandSequential(level []forest.Forest) successorSet {
	acc := make(successorSet, len(level)*2)
	for _, f := range level {
		acc.feed(f, s.meals, 0, len(s.meals))
	}

	return acc
}

// expandParallel partitions the level into chunks, expands each chunk into a
// private set on its own goroutine, then merges the sets sequentially.
func (s *searcher) expandParallel(level []forest.Forest) (successorSet, error) {
	workers := s.opts.Workers
	if workers > len(level) {
		workers = len(level)
	}
	if workers <= 1 {
		return s.expandSequential(level), nil
	}

	size := (len(level) + workers - 1) / workers
	parts := make([]successorSet, 0, workers)
	for lo := 0; lo < len(level); lo += size {
		parts = append(parts, nil)
	}

	g, gctx := errgroup.WithContext(s.ctx)
	g.SetLimit(workers)
	for i := range parts {
		lo := i * size
		hi := min(lo+size, len(level))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			part := make(successorSet, (hi-lo)*2)
			for _, f := range level[lo:hi] {
				part.feed(f, s.meals, 0, len(s.meals))
			}
			parts[i] = part

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(parts), nil
}

// expandPipelined runs one goroutine per meal across the whole level, then
// merges the per-meal sets sequentially.
func (s *searcher) expandPipelined(level []forest.Forest) (successorSet, error) {
	parts := make([]successorSet, len(s.meals))

	g, gctx := errgroup.WithContext(s.ctx)
	for i := range s.meals {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			part := make(successorSet, len(level))
			for _, f := range level {
				part.feed(f, s.meals, i, i+1)
			}
			parts[i] = part

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(parts), nil
}
