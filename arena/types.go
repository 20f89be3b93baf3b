package arena

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrDoubleFree indicates Free of a slot that is already free.
	ErrDoubleFree = errors.New("arena: slot freed twice")

	// ErrBadIndex indicates an Index that is out of range or not live.
	ErrBadIndex = errors.New("arena: invalid slot index")
)

// Index addresses a slot. Nil is the end-of-chain link.
type Index int

// Nil is the null link.
const Nil Index = -1

// Stats is a snapshot of allocation accounting.
type Stats struct {
	Allocs int // slots handed out, including reuses
	Frees  int // slots returned
	Reuses int // allocations served from the free list
}

// Live is the number of slots currently allocated.
func (s Stats) Live() int {
	return s.Allocs - s.Frees
}

// Option configures an Arena.
type Option func(*Options)

// Options holds Arena configuration.
type Options struct {
	// Capacity preallocates room for this many slots. Default 0.
	Capacity int

	// Logger receives Trace records for every alloc, free and reuse.
	// Default is a discarding logger.
	Logger *logrus.Entry
}

// DefaultOptions returns Options with no preallocation and a logger that
// discards output.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Capacity: 0,
		Logger:   logrus.NewEntry(l),
	}
}

// WithCapacity preallocates room for n slots. Negative n is ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithLogger routes allocation tracing to e. A nil entry is ignored.
func WithLogger(e *logrus.Entry) Option {
	return func(o *Options) {
		if e != nil {
			o.Logger = e
		}
	}
}
