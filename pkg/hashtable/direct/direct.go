package direct

import "github.com/pkg/errors"

// slot is a single direct-address cell; the used flag keeps V's zero value storable
type slot[V any] struct {
	val  V
	used bool
}

// Table is a direct-address table over integer keys in [0, size). Every
// operation is a single array access, no hashing involved
type Table[V any] struct {
	slots []slot[V]
	keys  uint
}

// New returns a direct-address table admitting keys in [0, size)
func New[V any](size int) (*Table[V], error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrBadSize, "size %d", size)
	}
	return &Table[V]{
		slots: make([]slot[V], size),
	}, nil
}

// Put stores value at key, overwriting any previous value. Keys outside
// [0, size) fail with ErrKeyOutOfRange
func (t *Table[V]) Put(key uint64, value V) error {
	if key >= uint64(len(t.slots)) {
		return errors.Wrapf(ErrKeyOutOfRange, "key %d, range [0, %d)", key, len(t.slots))
	}
	if !t.slots[key].used {
		t.keys++
	}
	t.slots[key] = slot[V]{val: value, used: true}
	return nil
}

// Get returns the value stored at key, or false if none is present.
// Out-of-range keys simply read as absent
func (t *Table[V]) Get(key uint64) (V, bool) {
	if key >= uint64(len(t.slots)) || !t.slots[key].used {
		return *new(V), false
	}
	return t.slots[key].val, true
}

// Del clears the slot at key and returns the removed value, or false if the
// key was absent. Deleting an absent or out-of-range key is a no-op
func (t *Table[V]) Del(key uint64) (V, bool) {
	if key >= uint64(len(t.slots)) || !t.slots[key].used {
		return *new(V), false
	}
	val := t.slots[key].val
	t.slots[key] = slot[V]{}
	t.keys--
	return val, true
}

// Len returns the number of occupied slots
func (t *Table[V]) Len() int {
	return int(t.keys)
}

// Cap returns the size of the key range
func (t *Table[V]) Cap() int {
	return len(t.slots)
}

// LoadFactor returns the ratio of occupied slots to the key range
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.keys) / float64(len(t.slots))
}
