// Package imei implements the International Mobile Equipment Identity as a
// value type: a 15-digit decimal number whose last digit is a Luhn check
// digit.
//
// Values are built by the Parse*, TryParse* and New* functions or by the
// random generators, and never change afterwards. The zero value is Invalid.
package imei

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// IMEI is an immutable International Mobile Equipment Identity.
// Two IMEIs are equal (==) iff their magnitudes are equal.
type IMEI struct {
	value int64
}

// IsValid reports whether the stored magnitude satisfies IsValid. It is false
// for Invalid and for values built with ValidationNone that break the rules.
func (i IMEI) IsValid() bool {
	return i != Invalid && IsValid(i.value)
}

// Int64 returns the stored magnitude.
func (i IMEI) Int64() int64 {
	return i.value
}

// TAC returns the Type Allocation Code, the two leading digits.
func (i IMEI) TAC() int {
	return int(i.value / tacPlace)
}

// FAC returns the Final Assembly Code, digits 3 to 8.
func (i IMEI) FAC() int {
	return int(i.value / facPlace % fieldWidth)
}

// SNR returns the serial number, digits 9 to 14.
func (i IMEI) SNR() int {
	return int(i.value / snrPlace % fieldWidth)
}

// String returns the 15-digit decimal form, zero-padded on the left.
func (i IMEI) String() string {
	var buf [Length]byte
	return string(i.appendDigits(buf[:0]))
}

// Bytes returns the 15-digit decimal form as UTF-8 text in a fresh slice.
func (i IMEI) Bytes() []byte {
	return i.appendDigits(make([]byte, 0, Length))
}

// Runes returns the 15-digit decimal form as a rune sequence.
func (i IMEI) Runes() []rune {
	var buf [Length]byte
	text := i.appendDigits(buf[:0])
	r := make([]rune, len(text))
	for k, c := range text {
		r[k] = rune(c)
	}
	return r
}

// AppendText appends the 15-digit decimal form to b.
func (i IMEI) AppendText(b []byte) ([]byte, error) {
	return i.appendDigits(b), nil
}

// appendDigits writes the zero-padded form. Magnitudes that do not fit in 15
// digits (only reachable with ValidationNone) fall back to plain decimal.
func (i IMEI) appendDigits(b []byte) []byte {
	if i.value < 0 || i.value > maxMagnitude {
		return strconv.AppendInt(b, i.value, 10)
	}
	var buf [Length]byte
	n := i.value
	for p := Length - 1; p >= 0; p-- {
		buf[p] = byte('0' + n%10)
		n /= 10
	}
	return append(b, buf[:]...)
}

// Equal reports whether i and other hold the same magnitude.
func (i IMEI) Equal(other IMEI) bool {
	return i.value == other.value
}

// Hash returns a 64-bit hash of the magnitude. Equal IMEIs hash equally.
func (i IMEI) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i.value))
	return xxhash.Sum64(buf[:])
}
