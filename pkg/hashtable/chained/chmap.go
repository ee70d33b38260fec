package chained

const (
	DefaultLoadFactor = 1.0 // chains absorb load, so one entry per bucket on average
	DefaultMapSize    = 16
)

// HashFunc maps a key to a bucket index in [0, m) for the current bucket count m
type HashFunc[K comparable] func(key K, m int) int

// node is a link in a bucket's chain
type node[K comparable, V any] struct {
	key  K
	val  V
	next *node[K, V]
}

// bucket is a single slot in the table, holding a chain of entries
type bucket[K comparable, V any] struct {
	head *node[K, V]
}

// search walks the chain for key and returns its value, or false. Every key
// comparison made along the way is added to compares
func (b *bucket[K, V]) search(key K, compares *uint64) (V, bool) {
	for n := b.head; n != nil; n = n.next {
		*compares++
		if n.key == key {
			return n.val, true
		}
	}
	return *new(V), false
}

// insert prepends a new entry, or overwrites in place if key is already
// chained. The bool reports whether an overwrite happened
func (b *bucket[K, V]) insert(key K, val V, compares *uint64) bool {
	for n := b.head; n != nil; n = n.next {
		*compares++
		if n.key == key {
			n.val = val
			return true
		}
	}
	b.head = &node[K, V]{key: key, val: val, next: b.head}
	return false
}

// delete unlinks the entry for key and returns its value, or false
func (b *bucket[K, V]) delete(key K) (V, bool) {
	if b.head == nil {
		return *new(V), false
	}
	if b.head.key == key {
		val := b.head.val
		b.head = b.head.next
		return val, true
	}
	for prev := b.head; prev.next != nil; prev = prev.next {
		if prev.next.key == key {
			val := prev.next.val
			prev.next = prev.next.next
			return val, true
		}
	}
	return *new(V), false
}

// scan visits the chain in order for as long as the iterator returns true
func (b *bucket[K, V]) scan(it Iterator[K, V]) bool {
	for n := b.head; n != nil; n = n.next {
		if !it(n.key, n.val) {
			return false
		}
	}
	return true
}

// length counts the entries currently chained in the bucket
func (b *bucket[K, V]) length() int {
	var l int
	for n := b.head; n != nil; n = n.next {
		l++
	}
	return l
}

// Map is a separate-chaining hash table: an array of buckets, each an
// independent chain of key value pairs
type Map[K comparable, V any] struct {
	hash      HashFunc[K]
	threshold float64
	expand    uint // precomputed floor(threshold * bucket count)
	keys      uint
	buckets   []bucket[K, V]
	compares  uint64
}

// New returns a separate-chaining map with size buckets. threshold == 0
// selects DefaultLoadFactor; size <= 0 selects DefaultMapSize
func New[K comparable, V any](size int, threshold float64, hash HashFunc[K]) (*Map[K, V], error) {
	if hash == nil {
		return nil, ErrBadHashFunc
	}
	if size <= 0 {
		size = DefaultMapSize
	}
	if threshold == 0 {
		threshold = DefaultLoadFactor
	}
	return newMap[K, V](size, threshold, hash), nil
}

// newMap is the internal variant of New
func newMap[K comparable, V any](size int, threshold float64, hash HashFunc[K]) *Map[K, V] {
	return &Map[K, V]{
		hash:      hash,
		threshold: threshold,
		expand:    uint(threshold * float64(size)),
		buckets:   make([]bucket[K, V], size),
	}
}

// resize rehashes every entry into a table of newSize buckets
func (m *Map[K, V]) resize(newSize int) {
	newM := newMap[K, V](newSize, m.threshold, m.hash)
	newM.compares = m.compares
	for i := 0; i < len(m.buckets); i++ {
		m.buckets[i].scan(func(key K, val V) bool {
			newM.insert(key, val)
			return true
		})
	}
	*m = *newM
}

// Put inserts a key value pair, overwriting the value if the key is already
// present. The bucket array doubles before the insert would push the load
// factor past the threshold
func (m *Map[K, V]) Put(key K, value V) error {
	if m.keys+1 > m.expand {
		m.resize(len(m.buckets) * 2)
	}
	m.insert(key, value)
	return nil
}

// insert places the pair without checking the load factor first
func (m *Map[K, V]) insert(key K, value V) {
	i := m.hash(key, len(m.buckets))
	if !m.buckets[i].insert(key, value, &m.compares) {
		m.keys++
	}
}

// Get returns the value stored under key, or false if none could be found
func (m *Map[K, V]) Get(key K) (V, bool) {
	i := m.hash(key, len(m.buckets))
	return m.buckets[i].search(key, &m.compares)
}

// Del removes key and returns the removed value, or false if the key was
// absent. Deleting an absent key is a no-op
func (m *Map[K, V]) Del(key K) (V, bool) {
	i := m.hash(key, len(m.buckets))
	val, ok := m.buckets[i].delete(key)
	if ok {
		m.keys--
	}
	return val, ok
}

// Iterator is an iterator function type
type Iterator[K comparable, V any] func(key K, value V) bool

// Range visits every entry, bucket by bucket, for as long as the iterator
// keeps returning true. Range is not safe to perform an insert or remove
// operation while ranging!
func (m *Map[K, V]) Range(it Iterator[K, V]) {
	for i := 0; i < len(m.buckets); i++ {
		if !m.buckets[i].scan(it) {
			return
		}
	}
}

// Len returns the number of entries currently in the map
func (m *Map[K, V]) Len() int {
	return int(m.keys)
}

// Cap returns the current number of buckets
func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

// LoadFactor returns the ratio of entries to buckets
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}

// ChainLengths returns the length of every chain, for distribution analysis
func (m *Map[K, V]) ChainLengths() []int {
	lengths := make([]int, len(m.buckets))
	for i := 0; i < len(m.buckets); i++ {
		lengths[i] = m.buckets[i].length()
	}
	return lengths
}

// Comparisons returns the number of key comparisons performed so far
func (m *Map[K, V]) Comparisons() uint64 {
	return m.compares
}

// ResetCounts zeroes the comparison counter
func (m *Map[K, V]) ResetCounts() {
	m.compares = 0
}
