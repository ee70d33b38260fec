package hashfn

import (
	"crypto/md5"
	"encoding/binary"
	"math"
	"math/bits"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultA is the multiplication method constant, (sqrt(5)-1)/2
	DefaultA = 0.6180339887498949

	// DefaultBase is the default base for the polynomial rolling hash
	DefaultBase = 31

	// djb2Seed is the magic starting value for the djb2 accumulation
	djb2Seed = 5381
)

// checkTableSize validates the table size shared by every hash function
func checkTableSize(m int) error {
	if m <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "table size %d must be positive", m)
	}
	return nil
}

// Division implements the division method, h(k) = k mod m. Simple and
// fast, but m should be prime for decent distribution
func Division[K constraints.Integer](key K, m int) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	if key < 0 {
		i := int(int64(key) % int64(m))
		if i < 0 {
			i += m
		}
		return i, nil
	}
	return int(uint64(key) % uint64(m)), nil
}

// Multiplication implements the multiplication method, h(k) = floor(m * frac(k*a)).
// Passing a == 0 selects DefaultA; otherwise a must lie in (0, 1)
func Multiplication[K constraints.Integer](key K, m int, a float64) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	if a == 0 {
		a = DefaultA
	}
	if a <= 0 || a >= 1 {
		return 0, errors.Wrapf(ErrInvalidParameter, "multiplier %v must be in (0, 1)", a)
	}
	f := float64(key) * a
	f -= math.Floor(f)
	i := int(float64(m) * f)
	if i >= m {
		// frac rounding can graze 1.0 for very large keys
		i = m - 1
	}
	return i, nil
}

// Universal implements the universal family h(k) = ((a*k + b) mod p) mod m.
// p must be a prime strictly greater than m, a in [1, p-1] and b in [0, p-1].
// Draw a and b once per table instance, not per call
func Universal[K constraints.Integer](key K, m int, a, b, p uint64) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	if !IsPrime(p) || p <= uint64(m) {
		return 0, errors.Wrapf(ErrInvalidParameter, "modulus %d must be a prime greater than table size %d", p, m)
	}
	if a < 1 || a >= p {
		return 0, errors.Wrapf(ErrInvalidParameter, "parameter a=%d must be in [1, %d]", a, p-1)
	}
	if b >= p {
		return 0, errors.Wrapf(ErrInvalidParameter, "parameter b=%d must be in [0, %d]", b, p-1)
	}
	var k uint64
	if key < 0 {
		// reduce negative keys into [0, p) first
		r := int64(key) % int64(p)
		if r < 0 {
			r += int64(p)
		}
		k = uint64(r)
	} else {
		k = uint64(key) % p
	}
	// 128-bit intermediate keeps a*k from wrapping
	hi, lo := bits.Mul64(a, k)
	r := bits.Rem64(hi, lo, p)
	sum, carry := bits.Add64(r, b, 0)
	r = bits.Rem64(carry, sum, p)
	return int(r % uint64(m)), nil
}

// DrawUniversal draws the (a, b) pair for Universal from the supplied source,
// uniformly over a in [1, p-1] and b in [0, p-1]. Callers draw once per table
func DrawUniversal(p uint64, rng *rand.Rand) (a, b uint64, err error) {
	if !IsPrime(p) {
		return 0, 0, errors.Wrapf(ErrInvalidParameter, "modulus %d must be prime", p)
	}
	a = 1 + rng.Uint64()%(p-1)
	b = rng.Uint64() % p
	return a, b, nil
}

// PolynomialString implements the polynomial rolling hash over the bytes of
// key, accumulated Horner style with the modulus applied at every step so the
// running value never overflows. Passing base == 0 selects DefaultBase
func PolynomialString(key string, m int, base int) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	if base == 0 {
		base = DefaultBase
	}
	if base < 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "base %d must be positive", base)
	}
	var h int
	for i := 0; i < len(key); i++ {
		h = (h*base + int(key[i])) % m
	}
	return h, nil
}

// DJB2 implements the classic djb2 string hash, h = h*33 + c from seed 5381,
// reduced mod m at the end
func DJB2(key string, m int) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	var h uint64 = djb2Seed
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return int(h % uint64(m)), nil
}

// SimpleStringSum sums the byte values of key mod m. It is an intentionally
// weak function kept as a negative example: all anagrams collide
func SimpleStringSum(key string, m int) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(key[i])
	}
	return int(h % uint64(m)), nil
}

// BadClustering is an intentionally degenerate function kept as a negative
// example: it collapses every run of sixteen sequential keys onto a single
// index, so sequential workloads pile up and probe chains degrade
func BadClustering[K constraints.Integer](key K, m int) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	if key < 0 {
		key = -key
	}
	return int((uint64(key) >> 4) % uint64(m)), nil
}

// MD5String hashes key through crypto/md5 and reduces the leading eight
// digest bytes mod m. Excellent distribution, much slower than the others
func MD5String(key string, m int) (int, error) {
	if err := checkTableSize(m); err != nil {
		return 0, err
	}
	sum := md5.Sum([]byte(key))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(m)), nil
}

// IsPrime reports whether n is prime, by trial division over 6k±1 candidates
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime greater than or equal to n
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(uint64(n)) {
		n += 2
	}
	return n
}
