package openaddr

import (
	"github.com/pkg/errors"

	"github.com/CarGDev/MSCS532-Assignment7/pkg/hashfn"
)

const (
	DefaultLoadFactor = 0.70 // resize fires before an insert would exceed this
	DefaultMapSize    = 16
)

// Probing selects the probe sequence used to resolve collisions
type Probing uint8

const (
	Linear Probing = iota
	Quadratic
	Double
)

// HashFunc maps a key to an index in [0, m) for the current capacity m
type HashFunc[K comparable] func(key K, m int) int

// slot states; dead is the tombstone state and never reverts to empty
// except on a full rehash
const (
	slotEmpty byte = iota
	slotUsed
	slotDead
)

// slot is a single cell in the flat table array
type slot[K comparable, V any] struct {
	state byte
	key   K
	val   V
}

// Map is an open-addressing hash table with a configurable probe sequence
type Map[K comparable, V any] struct {
	probing   Probing
	hash      HashFunc[K]
	step      HashFunc[K] // double hashing only
	threshold float64
	expand    uint // precomputed floor(threshold * capacity)
	keys      uint
	dead      uint
	slots     []slot[K, V]
	probes    uint64
	compares  uint64
}

// alignBucketCount aligns a requested size up to a power of two
func alignBucketCount(size int) int {
	count := 1
	for count < size {
		count *= 2
	}
	return count
}

// normalizeCap adjusts a requested capacity to one the probe sequence can
// cover completely: powers of two for quadratic, primes for double hashing,
// anything for linear
func normalizeCap(probing Probing, size int) int {
	if size <= 0 {
		size = DefaultMapSize
	}
	switch probing {
	case Quadratic:
		return alignBucketCount(size)
	case Double:
		return hashfn.NextPrime(size)
	default:
		return size
	}
}

// New returns an open-addressing map with the given probe sequence. The
// requested size is adjusted by normalizeCap, threshold == 0 selects
// DefaultLoadFactor, and step is required only for double hashing
func New[K comparable, V any](probing Probing, size int, threshold float64, hash, step HashFunc[K]) (*Map[K, V], error) {
	if hash == nil {
		return nil, ErrBadHashFunc
	}
	if probing == Double && step == nil {
		return nil, errors.Wrap(ErrBadHashFunc, "double hashing needs a step hash")
	}
	if threshold == 0 {
		threshold = DefaultLoadFactor
	}
	return newMap[K, V](probing, normalizeCap(probing, size), threshold, hash, step), nil
}

// newMap is the internal variant of New; cap has already been normalized
func newMap[K comparable, V any](probing Probing, cap int, threshold float64, hash, step HashFunc[K]) *Map[K, V] {
	return &Map[K, V]{
		probing:   probing,
		hash:      hash,
		step:      step,
		threshold: threshold,
		expand:    uint(threshold * float64(cap)),
		slots:     make([]slot[K, V], cap),
	}
}

// probeAt returns the i-th slot of the probe sequence starting at h with
// step s (double hashing only)
func (m *Map[K, V]) probeAt(h, s, i int) int {
	cap := len(m.slots)
	switch m.probing {
	case Quadratic:
		return (h + (i*(i+1))/2) % cap
	case Double:
		return (h + i*s) % cap
	default:
		return (h + i) % cap
	}
}

// stepFor computes the double-hashing step for key, kept in [1, cap-1] so it
// stays coprime with the prime capacity
func (m *Map[K, V]) stepFor(key K) int {
	cap := len(m.slots)
	if m.probing != Double || cap < 2 {
		return 0
	}
	s := m.step(key, cap)
	s %= cap
	if s <= 0 {
		s = 1
	}
	return s
}

// resize rehashes every occupied slot into a table of newCap slots,
// discarding tombstones. Probe and comparison counters survive the move
func (m *Map[K, V]) resize(newCap int) {
	newM := newMap[K, V](m.probing, newCap, m.threshold, m.hash, m.step)
	newM.probes = m.probes
	newM.compares = m.compares
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].state == slotUsed {
			// cannot fail: the new table has room for every live key
			_ = newM.insert(m.slots[i].key, m.slots[i].val)
		}
	}
	*m = *newM
}

// grow doubles the capacity, keeping it suitable for the probe sequence
func (m *Map[K, V]) grow() {
	cap := len(m.slots)
	switch m.probing {
	case Double:
		m.resize(hashfn.NextPrime(cap * 2))
	default:
		m.resize(cap * 2)
	}
}

// Put inserts a key value pair, overwriting the value if the key is already
// present. The table grows before the insert would push the load factor past
// the threshold. ErrTableFull is unreachable while that discipline holds
func (m *Map[K, V]) Put(key K, value V) error {
	if m.keys+1 > m.expand {
		m.grow()
	}
	return m.insert(key, value)
}

// insert probes for a slot without checking the load factor first
func (m *Map[K, V]) insert(key K, value V) error {
	cap := len(m.slots)
	h := m.hash(key, cap)
	s := m.stepFor(key)
	firstDead := -1
	for i := 0; i < cap; i++ {
		idx := m.probeAt(h, s, i)
		m.probes++
		sl := &m.slots[idx]
		switch sl.state {
		case slotEmpty:
			if firstDead >= 0 {
				// reuse the earliest tombstone on the probe path
				idx = firstDead
				m.dead--
			}
			m.slots[idx] = slot[K, V]{state: slotUsed, key: key, val: value}
			m.keys++
			return nil
		case slotUsed:
			m.compares++
			if sl.key == key {
				sl.val = value
				return nil
			}
		case slotDead:
			if firstDead < 0 {
				firstDead = idx
			}
		}
	}
	if firstDead >= 0 {
		m.slots[firstDead] = slot[K, V]{state: slotUsed, key: key, val: value}
		m.dead--
		m.keys++
		return nil
	}
	return errors.Wrapf(ErrTableFull, "capacity %d", cap)
}

// Get returns the value stored under key, or false if none could be found.
// Tombstones never terminate the probe; only an empty slot or a match does
func (m *Map[K, V]) Get(key K) (V, bool) {
	cap := len(m.slots)
	h := m.hash(key, cap)
	s := m.stepFor(key)
	for i := 0; i < cap; i++ {
		idx := m.probeAt(h, s, i)
		m.probes++
		sl := &m.slots[idx]
		switch sl.state {
		case slotEmpty:
			return *new(V), false
		case slotUsed:
			m.compares++
			if sl.key == key {
				return sl.val, true
			}
		}
	}
	return *new(V), false
}

// Del removes key and returns the removed value, or false if the key was
// absent. The slot becomes a tombstone so probe chains through it survive;
// once tombstones outnumber half the table a same-size rehash purges them
func (m *Map[K, V]) Del(key K) (V, bool) {
	cap := len(m.slots)
	h := m.hash(key, cap)
	s := m.stepFor(key)
	for i := 0; i < cap; i++ {
		idx := m.probeAt(h, s, i)
		m.probes++
		sl := &m.slots[idx]
		switch sl.state {
		case slotEmpty:
			return *new(V), false
		case slotUsed:
			m.compares++
			if sl.key == key {
				val := sl.val
				*sl = slot[K, V]{state: slotDead}
				m.keys--
				m.dead++
				if m.dead > uint(cap)/2 {
					m.resize(cap)
				}
				return val, true
			}
		}
	}
	return *new(V), false
}

// Iterator is an iterator function type
type Iterator[K comparable, V any] func(key K, value V) bool

// Range visits every occupied slot in array order for as long as the
// iterator keeps returning true. Range is not safe to perform an insert or
// remove operation while ranging!
func (m *Map[K, V]) Range(it Iterator[K, V]) {
	for i := 0; i < len(m.slots); i++ {
		if m.slots[i].state != slotUsed {
			continue
		}
		if !it(m.slots[i].key, m.slots[i].val) {
			return
		}
	}
}

// Len returns the number of live entries
func (m *Map[K, V]) Len() int {
	return int(m.keys)
}

// Cap returns the current capacity
func (m *Map[K, V]) Cap() int {
	return len(m.slots)
}

// LoadFactor returns the ratio of live entries to capacity
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.keys) / float64(len(m.slots))
}

// Tombstones returns the number of dead slots currently in the table
func (m *Map[K, V]) Tombstones() int {
	return int(m.dead)
}

// Probes returns the number of slot inspections performed so far
func (m *Map[K, V]) Probes() uint64 {
	return m.probes
}

// Comparisons returns the number of key comparisons performed so far
func (m *Map[K, V]) Comparisons() uint64 {
	return m.compares
}

// ResetCounts zeroes the probe and comparison counters
func (m *Map[K, V]) ResetCounts() {
	m.probes, m.compares = 0, 0
}
