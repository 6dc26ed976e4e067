// Package id provides the sortable unique identifiers used as keys for
// profiles and sites.
package id

import (
	"crypto/rand"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a 128-bit ULID: a 48-bit millisecond timestamp followed by 80 random
// bits. IDs compare byte-wise, which orders them by creation time.
type ID ulid.ULID

// Nil is the all-zero ID. It keys the seeded default profile.
var Nil ID

// EncodedSize is the length of the canonical text form.
const EncodedSize = ulid.EncodedSize

var std = NewGenerator(time.Now, rand.Reader)

// New returns a fresh ID from the process-wide generator.
func New() ID {
	return std.New()
}

// Parse decodes the 26-character Crockford base32 form. Lower case is accepted.
func Parse(s string) (ID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Nil, err
	}
	return ID(u), nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) ID {
	v, err := Parse(s)
	if err != nil {
		panic("id: " + err.Error())
	}
	return v
}

func (v ID) String() string {
	return ulid.ULID(v).String()
}

// IsNil reports whether v is the all-zero ID.
func (v ID) IsNil() bool {
	return v == Nil
}

// Time returns the timestamp embedded in v.
func (v ID) Time() time.Time {
	return ulid.Time(ulid.ULID(v).Time())
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b.
func Compare(a, b ID) int {
	return ulid.ULID(a).Compare(ulid.ULID(b))
}

// Less reports whether a sorts before b.
func Less(a, b ID) bool {
	return Compare(a, b) < 0
}

func (v ID) MarshalText() ([]byte, error) {
	return ulid.ULID(v).MarshalText()
}

func (v *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Generator produces IDs whose timestamps never decrease, even if the clock
// steps backwards. IDs sharing a millisecond get monotonically increasing
// random parts.
type Generator struct {
	mu      sync.Mutex
	clock   func() time.Time
	entropy *ulid.MonotonicEntropy
	last    uint64
}

// NewGenerator returns a Generator reading time from clock and randomness
// from entropy.
func NewGenerator(clock func() time.Time, entropy io.Reader) *Generator {
	return &Generator{
		clock:   clock,
		entropy: ulid.Monotonic(entropy, 0),
	}
}

func (g *Generator) New() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(g.clock())
	if ms < g.last {
		ms = g.last
	}

	for {
		u, err := ulid.New(ms, g.entropy)
		if err == nil {
			g.last = ms
			return ID(u)
		}
		if !errors.Is(err, ulid.ErrMonotonicOverflow) || ms >= ulid.MaxTime() {
			panic("id: " + err.Error())
		}
		// random part exhausted for this millisecond
		ms++
	}
}
