package command

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// ProducerKind records which kind of entity allocated a receipt.
type ProducerKind int

const (
	ProducedByResource ProducerKind = iota + 1
	ProducedByFilterchain
)

func (k ProducerKind) String() string {
	switch k {
	case ProducedByResource:
		return "resource"
	case ProducedByFilterchain:
		return "filterchain"
	default:
		return "unknown"
	}
}

// Receipt is an opaque token for one stream. Receipts compare by id only.
type Receipt struct {
	id       string
	producer ProducerKind
	source   string
	pad      int
}

// ID returns the receipt identifier.
func (r Receipt) ID() string { return r.id }

// Producer reports the kind of entity that allocated the receipt.
func (r Receipt) Producer() ProducerKind { return r.producer }

// Source returns the id of the CommandResource or Filterchain that produced it.
func (r Receipt) Source() string { return r.source }

// Pad returns the output pad index within the producer.
func (r Receipt) Pad() int { return r.pad }

// Equal reports whether both receipts carry the same id.
func (r Receipt) Equal(other Receipt) bool {
	return r.id != "" && r.id == other.id
}

// IsZero reports whether the receipt was never allocated.
func (r Receipt) IsZero() bool { return r.id == "" }

func (r Receipt) String() string {
	if r.id == "" {
		return "<none>"
	}
	return r.producer.String() + ":" + r.id
}

// IDGenerator allocates identifiers for commands, entities and receipts.
type IDGenerator interface {
	New() string
}

// UUIDGenerator generates random UUIDs.
type UUIDGenerator struct{}

// New returns a fresh UUID v4 string.
func (UUIDGenerator) New() string {
	return uuid.NewString()
}

// SequentialGenerator generates prefix1, prefix2, ... and is intended for tests
// and reproducible plan output.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequentialGenerator creates a generator that prepends prefix to each id.
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns the next id in sequence.
func (s *SequentialGenerator) New() string {
	return s.prefix + strconv.FormatUint(s.counter.Add(1), 10)
}

var (
	_ IDGenerator = UUIDGenerator{}
	_ IDGenerator = (*SequentialGenerator)(nil)
)
