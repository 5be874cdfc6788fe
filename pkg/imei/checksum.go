package imei

// digits holds the decimal digits of an IMEI, most significant first.
// Every encoding is converted to digits before validation so that the
// Luhn check exists exactly once.
type digits [Length]byte

// luhnValid reports whether d carries a valid Luhn check digit in its last
// position. Counting from the check digit, every second digit is doubled and
// folded back below 10.
func luhnValid(d *digits) bool {
	sum := 0
	for i := 0; i < Length; i++ {
		v := int(d[Length-1-i])
		if i%2 != 0 {
			v <<= 1
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return sum%10 == 0
}

// splitDigits spreads the low Length digits of a non-negative n over a
// digits array. Higher digits are dropped, missing ones are zero.
func splitDigits(n int64) digits {
	var d digits
	for i := Length - 1; i >= 0; i-- {
		d[i] = byte(n % 10)
		n /= 10
	}
	return d
}

// scanDigits converts exactly Length ASCII digits into digits and the
// magnitude they spell. It returns a non-empty reason when s cannot be an
// IMEI for structural reasons.
func scanDigits[T ~string | ~[]byte](s T) (d digits, n int64, reason string) {
	switch {
	case len(s) == 0:
		return d, invalidValue, ReasonEmpty
	case len(s) != Length:
		return d, invalidValue, ReasonLength
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return d, invalidValue, ReasonNonDigit
		}
		d[i] = c - '0'
		n = n*10 + int64(d[i])
	}
	return d, n, ""
}

// scanRunes is scanDigits for rune sequences.
func scanRunes(r []rune) (d digits, n int64, reason string) {
	switch {
	case len(r) == 0:
		return d, invalidValue, ReasonEmpty
	case len(r) != Length:
		return d, invalidValue, ReasonLength
	}
	for i, c := range r {
		if c < '0' || c > '9' {
			return d, invalidValue, ReasonNonDigit
		}
		d[i] = byte(c - '0')
		n = n*10 + int64(d[i])
	}
	return d, n, ""
}

// checkDigits applies the range and checksum rules to an already scanned value.
func checkDigits(d *digits, n int64) string {
	if n < MinValue || n > MaxValue {
		return ReasonRange
	}
	if !luhnValid(d) {
		return ReasonChecksum
	}
	return ""
}

// checkNumber is checkDigits for a raw integer.
func checkNumber(n int64) string {
	if n < MinValue || n > MaxValue {
		return ReasonRange
	}
	d := splitDigits(n)
	if !luhnValid(&d) {
		return ReasonChecksum
	}
	return ""
}

// ChecksumValid reports whether the Luhn sum over the low 15 digits of n,
// zero-padded on the left, is a multiple of 10. Negative numbers never are.
func ChecksumValid(n int64) bool {
	if n < 0 {
		return false
	}
	d := splitDigits(n)
	return luhnValid(&d)
}

// IsValid reports whether n lies in [MinValue, MaxValue] and carries a valid
// check digit.
func IsValid(n int64) bool {
	return checkNumber(n) == ""
}

// IsValidString reports whether s is exactly 15 decimal digits spelling a
// valid IMEI. Signs, whitespace and separators are rejected.
func IsValidString(s string) bool {
	d, n, reason := scanDigits(s)
	return reason == "" && checkDigits(&d, n) == ""
}

// IsValidBytes is IsValidString for UTF-8 encoded text.
func IsValidBytes(b []byte) bool {
	d, n, reason := scanDigits(b)
	return reason == "" && checkDigits(&d, n) == ""
}

// IsValidRunes is IsValidString for a rune sequence.
func IsValidRunes(r []rune) bool {
	d, n, reason := scanRunes(r)
	return reason == "" && checkDigits(&d, n) == ""
}
