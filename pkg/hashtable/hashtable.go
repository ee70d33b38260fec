package hashtable

import (
	"github.com/pkg/errors"

	"github.com/CarGDev/MSCS532-Assignment7/pkg/hashfn"
	"github.com/CarGDev/MSCS532-Assignment7/pkg/hashtable/chained"
	"github.com/CarGDev/MSCS532-Assignment7/pkg/hashtable/direct"
	"github.com/CarGDev/MSCS532-Assignment7/pkg/hashtable/openaddr"
)

// Kind selects a table implementation and, for open addressing, its probe sequence
type Kind uint8

const (
	Direct Kind = iota
	OpenLinear
	OpenQuadratic
	OpenDouble
	Chained
)

// String implements fmt.Stringer for Kind
func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case OpenLinear:
		return "open-linear"
	case OpenQuadratic:
		return "open-quadratic"
	case OpenDouble:
		return "open-double"
	case Chained:
		return "chained"
	}
	return "unknown"
}

// Table is the surface every table kind exposes to callers. Benchmarking and
// demo code is expected to stay on this interface and never reach into the
// backing arrays
type Table[V any] interface {
	Put(key uint64, value V) error
	Get(key uint64) (V, bool)
	Del(key uint64) (V, bool)
	Len() int
	Cap() int
	LoadFactor() float64
}

// TombstoneCounter is satisfied by the open-addressing kinds on top of Table
type TombstoneCounter interface {
	Tombstones() int
}

// HashFunc maps an integer key to an index in [0, m)
type HashFunc = func(key uint64, m int) int

// UniversalParams carries the (a, b, p) triple for universal hashing. Draw a
// and b once, at table construction, and keep them for the table's lifetime
type UniversalParams struct {
	A, B, P uint64
}

// Options bundles the optional hash parameters for New. The zero value
// selects division hashing and the per-kind default load factor
type Options struct {
	// LoadFactor is the resize threshold; 0 selects the kind's default
	LoadFactor float64
	// Hash overrides the primary hash function
	Hash HashFunc
	// Step overrides the double-hashing step function
	Step HashFunc
	// Universal, when set, selects universal hashing with the given
	// parameters; it overrides Hash
	Universal *UniversalParams
}

// divisionHash is the default primary hash. Tables keep m positive, so the
// error path is unreachable here
func divisionHash(key uint64, m int) int {
	i, _ := hashfn.Division(key, m)
	return i
}

// divisionStep is the default double-hashing step, 1 + (k mod (m-1)),
// nonzero and below m
func divisionStep(key uint64, m int) int {
	if m < 2 {
		return 1
	}
	return 1 + int(key%uint64(m-1))
}

// resolveHash picks the primary hash from opts, validating universal
// parameters against the initial capacity
func resolveHash(capacity int, opts *Options) (HashFunc, error) {
	if opts.Universal != nil {
		u := *opts.Universal
		if _, err := hashfn.Universal(uint64(0), capacity, u.A, u.B, u.P); err != nil {
			return nil, err
		}
		// validated against the initial capacity; p must stay above m
		// as the table grows, which is the caller's sizing obligation
		return func(key uint64, m int) int {
			i, _ := hashfn.Universal(key, m, u.A, u.B, u.P)
			return i
		}, nil
	}
	if opts.Hash != nil {
		return opts.Hash, nil
	}
	return divisionHash, nil
}

// New constructs a table of the requested kind. For the direct kind the
// capacity is the key-range upper bound; for the hashed kinds it is the
// initial slot or bucket count, adjusted where the probe sequence requires
func New[V any](kind Kind, capacity int, opts *Options) (Table[V], error) {
	if opts == nil {
		opts = &Options{}
	}
	if kind == Direct {
		t, err := direct.New[V](capacity)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	hash, err := resolveHash(capacity, opts)
	if err != nil {
		return nil, err
	}
	switch kind {
	case OpenLinear, OpenQuadratic, OpenDouble:
		probing := openaddr.Linear
		switch kind {
		case OpenQuadratic:
			probing = openaddr.Quadratic
		case OpenDouble:
			probing = openaddr.Double
		}
		step := opts.Step
		if step == nil {
			step = divisionStep
		}
		t, err := openaddr.New[uint64, V](probing, capacity, opts.LoadFactor, openaddr.HashFunc[uint64](hash), openaddr.HashFunc[uint64](step))
		if err != nil {
			return nil, err
		}
		return t, nil
	case Chained:
		t, err := chained.New[uint64, V](capacity, opts.LoadFactor, chained.HashFunc[uint64](hash))
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "kind %d", kind)
}
