package frontier

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/magicforest/forest"
	"go.uber.org/zap"
)

// Sentinel errors for frontier search.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")

	// ErrDepthExceeded is returned when MaxDepth is reached before the stop rule fires.
	ErrDepthExceeded = errors.New("frontier: maximum depth exceeded")

	// ErrNoTrace is returned by PathTo when the search ran without WithTrace.
	ErrNoTrace = errors.New("frontier: search ran without trace")

	// ErrUnreachable is returned by PathTo for a forest the search never reached.
	ErrUnreachable = errors.New("frontier: forest not reached")
)

// Strategy selects how a level is expanded into the next one.
type Strategy int

const (
	Sequential Strategy = iota
	Parallel
	Pipelined
)

var strategyNames = [...]string{"sequential", "parallel", "pipelined"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps "sequential", "parallel" or "pipelined" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// StopRule decides whether a level ends the search.
type StopRule int

const (
	// AllStable stops when every forest of the level is stable.
	AllStable StopRule = iota
	// AnyStable stops at the first level containing a stable forest.
	AnyStable
)

var stopRuleNames = [...]string{"all", "any"}

func (r StopRule) String() string {
	if r < 0 || int(r) >= len(stopRuleNames) {
		return fmt.Sprintf("StopRule(%d)", int(r))
	}

	return stopRuleNames[r]
}

// ParseStopRule maps "all" or "any" to a StopRule.
func ParseStopRule(name string) (StopRule, error) {
	for i, n := range stopRuleNames {
		if strings.EqualFold(name, n) {
			return StopRule(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown stop rule %q", ErrOptionViolation, name)
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per level.
	Ctx context.Context

	// Strategy selects the expansion strategy.
	Strategy Strategy

	// StopRule selects the termination predicate.
	StopRule StopRule

	// Workers bounds the goroutines used by Parallel.
	Workers int

	// MaxDepth, if > 0, fails the search with ErrDepthExceeded once a level
	// deeper than MaxDepth would be built. 0 disables the limit.
	MaxDepth int

	// Trace records one parent link per forest for Result.PathTo.
	Trace bool

	// OnLevel is called once per level with its depth and size, before the
	// stop rule is tested. A returned error aborts the search.
	OnLevel func(depth, size int) error

	// Logger receives one debug entry per level.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Sequential strategy, AllStable stop rule
//   - GOMAXPROCS workers
//   - no depth limit, no trace
//   - no-op OnLevel hook and logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Sequential,
		StopRule: AllStable,
		Workers:  runtime.GOMAXPROCS(0),
		MaxDepth: 0,
		Trace:    false,
		OnLevel:  func(int, int) error { return nil },
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the expansion strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Sequential || s > Pipelined {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithStopRule selects the termination predicate.
func WithStopRule(r StopRule) Option {
	return func(o *Options) {
		if r < AllStable || r > AnyStable {
			o.err = fmt.Errorf("%w: unknown stop rule %d", ErrOptionViolation, int(r))
			return
		}
		o.StopRule = r
	}
}

// WithWorkers bounds the goroutines used by the Parallel strategy.
//
//	n > 0:  at most n goroutines
//	n == 0: GOMAXPROCS
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithMaxDepth limits how many levels may be built.
//
//	d > 0:  fail with ErrDepthExceeded past depth d
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTrace records parent links so that Result.PathTo can rebuild meal sequences.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithOnLevel registers a callback invoked once per level.
func WithOnLevel(fn func(depth, size int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithLogger sets the logger used for per-level debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search.
//   - Stable: the stable forests of the stopping level, sorted by forest.Compare.
//   - Depth: the number of meals between the initial forest and the stopping level.
//   - FrontierSize: the size of the stopping level.
//   - Explored: the sum of the sizes of every level built.
type Result struct {
	Initial      forest.Forest
	Stable       []forest.Forest
	Depth        int
	FrontierSize int
	Explored     int
	Strategy     Strategy
	StopRule     StopRule

	parents map[forest.Forest]link
}

// PathTo returns the meals that lead from the initial forest to dest.
// The search must have run with WithTrace.
func (r *Result) PathTo(dest forest.Forest) ([]forest.Meal, error) {
	if r.parents == nil {
		return nil, ErrNoTrace
	}
	meals := forest.Meals()
	path := []forest.Meal{}
	for cur := dest; cur != r.Initial; {
		l, ok := r.parents[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
		}
		path = append(path, meals[l.meal])
		cur = l.parent
	}
	// reverse to get initial → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
