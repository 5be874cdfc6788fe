package imei

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// reportingBodies lists the historically assigned Reporting Body Identifiers,
// the two leading digits of real TACs.
var reportingBodies = [...][2]byte{
	{0, 1}, {1, 0}, {3, 0}, {3, 3}, {3, 5}, {4, 4},
	{4, 5}, {4, 9}, {5, 0}, {5, 1}, {5, 2}, {5, 3},
	{5, 4}, {8, 6}, {9, 1}, {9, 8}, {9, 9},
}

// intSource returns a uniformly distributed integer in [low, high).
type intSource func(low, high int) (int, error)

// NewRandomFunc generates a valid IMEI from a caller supplied source of
// uniform integers in the half-open range [low, high). It panics if the
// source returns a value outside that range.
func NewRandomFunc(next func(low, high int) int) IMEI {
	// The wrapped source never returns an error, so neither does generate.
	id, _ := generate(func(low, high int) (int, error) {
		v := next(low, high)
		if v < low || v >= high {
			panic(fmt.Sprintf("imei: random source returned %d outside [%d, %d)", v, low, high))
		}
		return v, nil
	})
	return id
}

// NewRandom generates a valid IMEI from r. r is not safe for concurrent use.
func NewRandom(r *rand.Rand) IMEI {
	return NewRandomFunc(func(low, high int) int {
		return low + r.IntN(high-low)
	})
}

// NewRandomSeeded generates a valid IMEI deterministically from seed. The same
// seed always yields the same IMEI; use it for tests and fixtures only.
func NewRandomSeeded(seed uint64) IMEI {
	return NewRandom(rand.New(rand.NewPCG(seed, seed)))
}

// NewSecureRandom generates a valid IMEI from the operating system's
// cryptographically secure random source.
func NewSecureRandom() (IMEI, error) {
	return generate(secureIntN)
}

func secureIntN(low, high int) (int, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(high-low)))
	if err != nil {
		return 0, fmt.Errorf("failed to read secure random: %w", err)
	}
	return low + int(n.Int64()), nil
}

// generate picks a reporting body, draws the remaining body digits and
// computes the Luhn sum in the same pass, then appends the check digit.
func generate(next intSource) (IMEI, error) {
	pick, err := next(0, len(reportingBodies))
	if err != nil {
		return Invalid, err
	}

	var d digits
	d[0], d[1] = reportingBodies[pick][0], reportingBodies[pick][1]

	var n int64
	sum := 0
	for pos := 0; pos < Length-1; pos++ {
		if pos > 1 {
			v, err := next(0, 10)
			if err != nil {
				return Invalid, err
			}
			d[pos] = byte(v)
		}

		// Position pos from the left is Length-1-pos from the check digit,
		// so odd positions are the doubled ones on both sides.
		v := int(d[pos])
		if pos%2 != 0 {
			v <<= 1
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		n = n*10 + int64(d[pos])
	}
	n = n*10 + int64((10-sum%10)%10)

	if assertions && !IsValid(n) {
		panic(fmt.Sprintf("imei: generated invalid value %d", n))
	}
	return IMEI{value: n}, nil
}
