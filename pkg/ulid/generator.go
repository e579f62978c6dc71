package ulid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	mrand "math/rand"
	"sync"
	"time"
)

// Generator produces ULIDs. The zero Generator is not usable; construct one
// with NewGenerator.
//
// New and NewWithTimestamp are stateless and safe for concurrent use as long
// as the entropy source is. MonotonicNew additionally maintains the
// (last timestamp, counter) pair under an internal mutex, so concurrent
// callers observe a single globally consistent counter sequence.
type Generator struct {
	entropy io.Reader
	now     func() uint64

	mu      sync.Mutex
	lastMs  uint64
	counter uint32
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy replaces the default crypto/rand entropy source. The reader
// must be safe for concurrent use if the generator is shared.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// WithInsecureEntropy switches to a fast, non-cryptographic math/rand
// source. This is an explicit opt-in: without it, entropy failures surface
// as errors and are never papered over with a weaker source.
func WithInsecureEntropy() Option {
	return func(g *Generator) {
		g.entropy = &lockedReader{r: mrand.New(mrand.NewSource(time.Now().UnixNano()))}
	}
}

// WithClock replaces the wall clock with now, which must return Unix
// milliseconds. Intended for tests.
func WithClock(now func() uint64) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator returns a Generator reading the system clock and
// crypto/rand, unless overridden by options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: crand.Reader,
		now:     func() uint64 { return uint64(time.Now().UnixMilli()) },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New returns a ULID carrying the current wall-clock time and 10 bytes of
// fresh entropy. Two IDs from the same millisecond have no defined relative
// order; use MonotonicNew when order matters.
func (g *Generator) New() (ULID, error) {
	return g.NewWithTimestamp(g.now())
}

// NewWithTimestamp is New with a caller-supplied timestamp. It returns
// ErrBigTimestamp if ms does not fit in 48 bits.
func (g *Generator) NewWithTimestamp(ms uint64) (ULID, error) {
	var id ULID
	if err := id.SetTimestamp(ms); err != nil {
		return Zero, err
	}
	if err := g.readEntropy(id[6:]); err != nil {
		return Zero, err
	}
	return id, nil
}

// MonotonicNew returns a ULID that is byte-wise strictly greater than every
// ULID previously returned by this method on the same generator, including
// calls made concurrently and calls landing in the same millisecond.
//
// Within a millisecond tick the ordering comes from a 32-bit counter stored
// in bytes [6,10); the remaining 6 bytes are fresh entropy. If the clock
// moves backwards, generation pins to the last observed millisecond and
// keeps counting. Exhausting the counter within a single millisecond fails
// with ErrMonotonicOverflow.
func (g *Generator) MonotonicNew() (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now > g.lastMs {
		g.lastMs = now
		g.counter = 0
	} else {
		if g.counter == math.MaxUint32 {
			return Zero, ErrMonotonicOverflow
		}
		g.counter++
	}

	var id ULID
	if err := id.SetTimestamp(g.lastMs); err != nil {
		return Zero, err
	}
	binary.BigEndian.PutUint32(id[6:10], g.counter)
	if err := g.readEntropy(id[10:]); err != nil {
		return Zero, err
	}
	return id, nil
}

func (g *Generator) readEntropy(p []byte) error {
	if _, err := io.ReadFull(g.entropy, p); err != nil {
		return fmt.Errorf("%w: %v", ErrNoEntropy, err)
	}
	return nil
}

// lockedReader serializes reads from an entropy source that is not safe for
// concurrent use.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// defaultGenerator backs the package-level convenience functions. It is
// process-wide, so MonotonicNew at package level is monotonic across the
// whole process.
var defaultGenerator = NewGenerator()

// New returns a random-mode ULID from the process-wide generator.
func New() (ULID, error) {
	return defaultGenerator.New()
}

// MonotonicNew returns a monotonic ULID from the process-wide generator.
func MonotonicNew() (ULID, error) {
	return defaultGenerator.MonotonicNew()
}

// NewWithTimestamp returns a ULID with the given timestamp from the
// process-wide generator.
func NewWithTimestamp(ms uint64) (ULID, error) {
	return defaultGenerator.NewWithTimestamp(ms)
}

// MustNew is like New but panics on error.
func MustNew() ULID {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}

// MustMonotonicNew is like MonotonicNew but panics on error.
func MustMonotonicNew() ULID {
	id, err := MonotonicNew()
	if err != nil {
		panic(err)
	}
	return id
}
