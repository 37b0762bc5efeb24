package maze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/labyrinth/grid"
)

var (
	// ErrGridNil is returned when a nil grid or view is passed.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrNilSource is returned when WithSource is given a nil Source.
	ErrNilSource = errors.New("maze: random source is nil")

	// ErrSourceRange is returned when a Source yields an index outside [0,n).
	ErrSourceRange = errors.New("maze: random source returned index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrWallMismatch reports a wall-pair whose two flags disagree.
	ErrWallMismatch = errors.New("maze: inconsistent wall-pair")

	// ErrUnvisited reports a cell the generator never reached.
	ErrUnvisited = errors.New("maze: unvisited cell")

	// ErrDisconnected reports cells unreachable from the start cell.
	ErrDisconnected = errors.New("maze: passages do not connect every cell")

	// ErrCycle reports more cleared wall-pairs than a spanning tree allows.
	ErrCycle = errors.New("maze: passages contain a cycle")
)

// State is the phase of the generation state machine.
type State int

const (
	// Exploring: the last step carved into an unvisited neighbour.
	Exploring State = iota
	// Backtracking: the last step popped an ancestor off the path stack.
	Backtracking
	// Done: no unvisited neighbour and an empty path stack.
	Done
)

func (s State) String() string {
	switch s {
	case Exploring:
		return "exploring"
	case Backtracking:
		return "backtracking"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	for _, st := range [...]State{Exploring, Backtracking, Done} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("maze: unknown state %q", text)
}

// StepEvent describes one completed transition. From is the current cell
// before the step and To the current cell after it; for the final step into
// Done both are equal.
type StepEvent struct {
	Index      int        `json:"index"`
	State      State      `json:"state"`
	From       grid.Coord `json:"from"`
	To         grid.Coord `json:"to"`
	Carved     bool       `json:"carved"`
	StackDepth int        `json:"stack_depth"`
}

// Result summarises a generation run.
type Result struct {
	// Seed is the seed the run actually used (WithSeed(0) reports the
	// default seed); zero when a custom Source was supplied.
	Seed int64 `json:"seed"`
	// Steps counts state transitions, including the final one into Done.
	Steps int `json:"steps"`
	// Carved counts wall-pairs removed by this generator.
	Carved int `json:"carved"`
	// Backtracks counts stack pops.
	Backtracks int `json:"backtracks"`
	// MaxStackDepth is the longest path stack observed.
	MaxStackDepth int `json:"max_stack_depth"`
	// Elapsed is wall-clock time spent in Run.
	Elapsed time.Duration `json:"elapsed"`
	// Done reports whether the state machine reached Done.
	Done bool `json:"done"`
}

// Option configures a Generator.
type Option func(*Options)

// Options holds the generator configuration.
type Options struct {
	// Ctx allows cancellation of Run; defaults to context.Background().
	Ctx context.Context

	// Source picks among unvisited neighbours. Nil selects a clock-seeded
	// source whose seed is reported in Result.Seed.
	Source Source

	// Seed is used when Source is nil and seeded is true.
	Seed int64

	// Delay paces Run between steps so observers can animate; zero disables.
	Delay time.Duration

	// OnStep, if non-nil, is called after every transition. Returning an
	// error aborts Step and Run with that error.
	OnStep func(StepEvent) error

	// OnDone, if non-nil, is called exactly once when the generator reaches Done.
	OnDone func(Result)

	// Logger receives debug events; defaults to zerolog.Nop().
	Logger zerolog.Logger

	seeded bool
	err    error
}

// DefaultOptions returns Options with a background context, a clock-seeded
// source, no pacing, no hooks and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}

// WithContext sets the context observed by Run between steps.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSource installs a custom random source.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = ErrNilSource
			return
		}
		o.Source = src
	}
}

// WithSeed selects a deterministic source seeded with seed (0 maps to a
// fixed default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithDelay paces Run by d between steps. Negative values are rejected.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithOnStep registers an observer called after every transition.
func WithOnStep(fn func(StepEvent) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnDone registers the completion callback.
func WithOnDone(fn func(Result)) Option {
	return func(o *Options) {
		o.OnDone = fn
	}
}

// WithLogger routes generator debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
