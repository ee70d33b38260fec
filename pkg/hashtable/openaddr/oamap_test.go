package openaddr

import (
	"errors"
	"testing"

	"github.com/CarGDev/MSCS532-Assignment7/pkg/hashfn"
	"github.com/CarGDev/MSCS532-Assignment7/pkg/util"
)

func divHash(key uint64, m int) int {
	i, _ := hashfn.Division(key, m)
	return i
}

func divStep(key uint64, m int) int {
	return 1 + int(key%uint64(m-1))
}

func TestNewErrors(t *testing.T) {
	_, err := New[uint64, string](Linear, 10, 0, nil, nil)
	util.AssertTrue(t, errors.Is(err, ErrBadHashFunc))
	_, err = New[uint64, string](Double, 10, 0, divHash, nil)
	util.AssertTrue(t, errors.Is(err, ErrBadHashFunc))
}

func TestCapacityNormalization(t *testing.T) {
	m, err := New[uint64, string](Linear, 10, 0, divHash, nil)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 10, m.Cap())

	m, err = New[uint64, string](Quadratic, 10, 0, divHash, nil)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 16, m.Cap())

	m, err = New[uint64, string](Double, 10, 0, divHash, divStep)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 11, m.Cap())
}

// keys 5, 15 and 25 all hash to slot 5 under division with m=10; linear
// probing must settle them into slots 5, 6 and 7
func TestLinearCollisionScenario(t *testing.T) {
	m, err := New[uint64, string](Linear, 10, 0, divHash, nil)
	util.AssertNoError(t, err)

	util.AssertNoError(t, m.Put(5, "five"))
	util.AssertNoError(t, m.Put(15, "fifteen"))
	util.AssertNoError(t, m.Put(25, "twenty-five"))

	util.AssertExpected(t, slotUsed, m.slots[5].state)
	util.AssertExpected(t, uint64(5), m.slots[5].key)
	util.AssertExpected(t, slotUsed, m.slots[6].state)
	util.AssertExpected(t, uint64(15), m.slots[6].key)
	util.AssertExpected(t, slotUsed, m.slots[7].state)
	util.AssertExpected(t, uint64(25), m.slots[7].key)

	val, ok := m.Get(15)
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "fifteen", val)
	val, ok = m.Get(25)
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "twenty-five", val)
}

func TestUpdateSemantics(t *testing.T) {
	m, _ := New[uint64, string](Linear, 10, 0, divHash, nil)
	util.AssertNoError(t, m.Put(5, "old"))
	util.AssertNoError(t, m.Put(5, "new"))
	util.AssertExpected(t, 1, m.Len())
	val, ok := m.Get(5)
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "new", val)
}

func TestDeleteLeavesTombstone(t *testing.T) {
	m, _ := New[uint64, string](Linear, 10, 0, divHash, nil)
	m.Put(5, "five")
	m.Put(15, "fifteen")
	m.Put(25, "twenty-five")

	val, ok := m.Del(15)
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "fifteen", val)
	util.AssertExpected(t, 1, m.Tombstones())
	util.AssertExpected(t, slotDead, m.slots[6].state)

	// the probe for 25 crosses the tombstone and must not stop there
	val, ok = m.Get(25)
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "twenty-five", val)

	// a miss before any empty slot is still a miss
	_, ok = m.Get(15)
	util.AssertFalse(t, ok)

	// deleting an absent key is a no-op, repeatedly
	_, ok = m.Del(15)
	util.AssertFalse(t, ok)
	_, ok = m.Del(15)
	util.AssertFalse(t, ok)
	_, ok = m.Del(999)
	util.AssertFalse(t, ok)
	util.AssertExpected(t, 2, m.Len())
}

func TestTombstoneReuse(t *testing.T) {
	m, _ := New[uint64, string](Linear, 10, 0, divHash, nil)
	m.Put(5, "five")
	m.Put(15, "fifteen")
	m.Put(25, "twenty-five")
	m.Del(15)

	// 35 probes 5 (used), 6 (dead), 7 (used), 8 (empty) and must land on
	// the first tombstone it crossed
	util.AssertNoError(t, m.Put(35, "thirty-five"))
	util.AssertExpected(t, slotUsed, m.slots[6].state)
	util.AssertExpected(t, uint64(35), m.slots[6].key)
	util.AssertExpected(t, 0, m.Tombstones())
}

func TestGrowth(t *testing.T) {
	m, _ := New[uint64, int](Linear, 10, 0, divHash, nil)
	for key := uint64(0); key < 8; key++ {
		util.AssertNoError(t, m.Put(key, int(key)))
	}
	// the eighth insert would exceed 0.7*10, so the table doubled first
	util.AssertExpected(t, 20, m.Cap())
	util.AssertExpected(t, 8, m.Len())
	for key := uint64(0); key < 8; key++ {
		val, ok := m.Get(key)
		util.AssertTrue(t, ok)
		util.AssertExpected(t, int(key), val)
	}
}

func TestGrowthDoubleStaysPrime(t *testing.T) {
	m, _ := New[uint64, int](Double, 11, 0, divHash, divStep)
	util.AssertExpected(t, 11, m.Cap())
	for key := uint64(0); key < 8; key++ {
		util.AssertNoError(t, m.Put(key*11, int(key)))
	}
	util.AssertExpected(t, 23, m.Cap())
	for key := uint64(0); key < 8; key++ {
		val, ok := m.Get(key * 11)
		util.AssertTrue(t, ok)
		util.AssertExpected(t, int(key), val)
	}
}

func TestLoadFactorInvariant(t *testing.T) {
	for _, probing := range []Probing{Linear, Quadratic, Double} {
		m, err := New[uint64, int](probing, 16, 0, divHash, divStep)
		util.AssertNoError(t, err)
		for key := uint64(0); key < 200; key++ {
			util.AssertNoError(t, m.Put(key*7, int(key)))
			util.AssertTrue(t, m.LoadFactor() <= DefaultLoadFactor+1e-9)
		}
		util.AssertExpected(t, 200, m.Len())
	}
}

// with the load factor pinned at 1.0, m-1 colliding keys must all find a
// distinct slot within m probes for every probe sequence
func TestProbeCompleteness(t *testing.T) {
	run := func(probing Probing, size int, step HashFunc[uint64]) {
		m, err := New[uint64, int](probing, size, 1.0, divHash, step)
		util.AssertNoError(t, err)
		cap := uint64(m.Cap())
		for i := uint64(0); i < cap-1; i++ {
			// every key hashes to slot zero
			util.AssertNoError(t, m.Put(i*cap, int(i)))
		}
		util.AssertExpected(t, int(cap-1), m.Len())
	}
	run(Linear, 13, nil)
	run(Quadratic, 16, nil)
	run(Double, 13, divStep)
}

func TestTableFull(t *testing.T) {
	// a threshold above 1.0 defeats the resize discipline on purpose
	m, _ := New[uint64, int](Linear, 4, 2.0, divHash, nil)
	for key := uint64(0); key < 4; key++ {
		util.AssertNoError(t, m.Put(key, int(key)))
	}
	// updates still succeed on a full table
	util.AssertNoError(t, m.Put(2, 22))
	err := m.Put(4, 4)
	util.AssertTrue(t, errors.Is(err, ErrTableFull))
}

func TestTombstonePurge(t *testing.T) {
	m, _ := New[uint64, int](Linear, 16, 1.0, divHash, nil)
	for key := uint64(0); key < 10; key++ {
		m.Put(key, int(key))
	}
	for key := uint64(0); key < 9; key++ {
		_, ok := m.Del(key)
		util.AssertTrue(t, ok)
	}
	// the ninth tombstone pushed density past half the table and forced a
	// same-size rehash
	util.AssertExpected(t, 0, m.Tombstones())
	util.AssertExpected(t, 16, m.Cap())
	util.AssertExpected(t, 1, m.Len())
	val, ok := m.Get(9)
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 9, val)
}

func TestCounts(t *testing.T) {
	m, _ := New[uint64, int](Linear, 10, 0, divHash, nil)
	m.Put(5, 5)
	m.Put(15, 15)
	m.Get(15)
	util.AssertTrue(t, m.Probes() > 0)
	util.AssertTrue(t, m.Comparisons() > 0)
	m.ResetCounts()
	util.AssertExpected(t, uint64(0), m.Probes())
	util.AssertExpected(t, uint64(0), m.Comparisons())
}

func TestRange(t *testing.T) {
	m, _ := New[uint64, int](Quadratic, 16, 0, divHash, nil)
	for key := uint64(0); key < 9; key++ {
		m.Put(key, int(key)*10)
	}
	seen := make(map[uint64]int)
	m.Range(func(key uint64, value int) bool {
		seen[key] = value
		return true
	})
	util.AssertExpected(t, m.Len(), len(seen))
	util.AssertExpected(t, 30, seen[3])
}
