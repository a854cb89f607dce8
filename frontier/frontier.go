package frontier

import (
	"context"
	"fmt"

	"github.com/katalvlaran/magicforest/forest"
	"go.uber.org/zap"
)

// searcher encapsulates mutable search state.
type searcher struct {
	opts    Options
	ctx     context.Context
	meals   []forest.Meal
	parents map[forest.Forest]link
	res     *Result
}

// FindStable returns the stable forests reached from initial, sorted by
// forest.Compare. It is Search without the bookkeeping.
func FindStable(initial forest.Forest, opts ...Option) ([]forest.Forest, error) {
	res, err := Search(initial, opts...)
	if err != nil {
		return nil, err
	}

	return res.Stable, nil
}

// Search advances the frontier from initial level by level until the stop rule
// fires. Returns ErrOptionViolation for bad options, ErrDepthExceeded when
// MaxDepth is hit, the context error on cancellation, or a wrapped OnLevel error.
func Search(initial forest.Forest, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &searcher{
		opts:  o,
		ctx:   o.Ctx,
		meals: forest.Meals(),
		res: &Result{
			Initial:  initial,
			Stable:   []forest.Forest{},
			Strategy: o.Strategy,
			StopRule: o.StopRule,
		},
	}
	if o.Trace {
		s.parents = make(map[forest.Forest]link)
		s.res.parents = s.parents
	}

	if err := s.loop(initial); err != nil {
		return nil, err
	}

	return s.res, nil
}

// loop builds levels until one satisfies the stop rule.
func (s *searcher) loop(initial forest.Forest) error {
	level := []forest.Forest{initial}
	for depth := 0; ; depth++ {
		// cancellation check (once per level)
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}

		s.res.Explored += len(level)
		s.opts.Logger.Debug("frontier level",
			zap.Int("depth", depth),
			zap.Int("size", len(level)),
			zap.Stringer("strategy", s.opts.Strategy))
		if err := s.opts.OnLevel(depth, len(level)); err != nil {
			return fmt.Errorf("frontier: OnLevel error at depth %d: %w", depth, err)
		}

		if s.stop(level) {
			s.finish(level, depth)
			return nil
		}
		if s.opts.MaxDepth > 0 && depth+1 > s.opts.MaxDepth {
			return fmt.Errorf("%w: no stopping level within %d meals", ErrDepthExceeded, s.opts.MaxDepth)
		}

		next, err := s.expand(level)
		if err != nil {
			return err
		}
		level = next
	}
}

// stop applies the stop rule to a level.
func (s *searcher) stop(level []forest.Forest) bool {
	if len(level) == 0 {
		return true
	}
	switch s.opts.StopRule {
	case AnyStable:
		for _, f := range level {
			if f.IsStable() {
				return true
			}
		}
		return false
	default:
		for _, f := range level {
			if !f.IsStable() {
				return false
			}
		}
		return true
	}
}

// finish records the stable members of the stopping level.
func (s *searcher) finish(level []forest.Forest, depth int) {
	for _, f := range level {
		if f.IsStable() {
			s.res.Stable = append(s.res.Stable, f)
		}
	}
	s.res.Depth = depth
	s.res.FrontierSize = len(level)
	s.opts.Logger.Debug("frontier stopped",
		zap.Int("depth", depth),
		zap.Int("stable", len(s.res.Stable)),
		zap.Int("explored", s.res.Explored),
		zap.Stringer("stop_rule", s.opts.StopRule))
}

// expand builds the next level with the configured strategy, sorted by
// forest.Compare, and records parent links when tracing.
func (s *searcher) expand(level []forest.Forest) ([]forest.Forest, error) {
	var (
		acc successorSet
		err error
	)
	switch s.opts.Strategy {
	case Parallel:
		acc, err = s.expandParallel(level)
	case Pipelined:
		acc, err = s.expandPipelined(level)
	default:
		acc = s.expandSequential(level)
	}
	if err != nil {
		return nil, err
	}

	next := make([]forest.Forest, 0, len(acc))
	for f, l := range acc {
		next = append(next, f)
		if s.parents != nil {
			s.parents[f] = l
		}
	}
	forest.Sort(next)

	return next, nil
}
