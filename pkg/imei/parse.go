package imei

import (
	"math"
	"strconv"
)

// ValidationMode selects how much checking construction performs.
type ValidationMode int

const (
	// ValidationStrict enforces length, digits, range and checksum.
	ValidationStrict ValidationMode = iota
	// ValidationNone only requires a syntactically valid non-negative
	// decimal number that fits in an int64.
	ValidationNone
)

func (m ValidationMode) String() string {
	switch m {
	case ValidationStrict:
		return "strict"
	case ValidationNone:
		return "none"
	default:
		return "unknown"
	}
}

// Option configures a construction call.
type Option func(*options)

type options struct {
	validation ValidationMode
}

// WithValidation sets the validation mode for a single construction call.
func WithValidation(mode ValidationMode) Option {
	return func(o *options) {
		o.validation = mode
	}
}

// WithoutValidation is shorthand for WithValidation(ValidationNone).
func WithoutValidation() Option {
	return WithValidation(ValidationNone)
}

func resolve(opts []Option) options {
	o := options{validation: ValidationStrict}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New builds an IMEI from a number. Unless validation is disabled through
// opts it behaves like ParseInt64.
func New(number int64, opts ...Option) (IMEI, error) {
	if resolve(opts).validation == ValidationNone {
		return IMEI{value: number}, nil
	}
	return ParseInt64(number)
}

// NewFromString builds an IMEI from text. With validation disabled the text
// must still be a plain decimal number.
func NewFromString(s string, opts ...Option) (IMEI, error) {
	if resolve(opts).validation == ValidationNone {
		n, reason := parseMagnitude(s)
		if reason != "" {
			return Invalid, formatError(s, reason)
		}
		return IMEI{value: n}, nil
	}
	return Parse(s)
}

// NewFromBytes is NewFromString for UTF-8 encoded text.
func NewFromBytes(b []byte, opts ...Option) (IMEI, error) {
	if resolve(opts).validation == ValidationNone {
		n, reason := parseMagnitude(b)
		if reason != "" {
			return Invalid, formatError(string(b), reason)
		}
		return IMEI{value: n}, nil
	}
	return ParseBytes(b)
}

// NewFromRunes is NewFromString for a rune sequence.
func NewFromRunes(r []rune, opts ...Option) (IMEI, error) {
	if resolve(opts).validation == ValidationNone {
		s := string(r)
		n, reason := parseMagnitude(s)
		if reason != "" {
			return Invalid, formatError(s, reason)
		}
		return IMEI{value: n}, nil
	}
	return ParseRunes(r)
}

// ParseInt64 returns the IMEI for n or a *FormatError when n is out of range
// or fails the checksum.
func ParseInt64(n int64) (IMEI, error) {
	if reason := checkNumber(n); reason != "" {
		return Invalid, formatError(strconv.FormatInt(n, 10), reason)
	}
	return IMEI{value: n}, nil
}

// TryParseInt64 is ParseInt64 without the error: on failure it returns
// Invalid and false.
func TryParseInt64(n int64) (IMEI, bool) {
	if checkNumber(n) != "" {
		return Invalid, false
	}
	return IMEI{value: n}, true
}

// Parse parses exactly 15 decimal digits.
func Parse(s string) (IMEI, error) {
	d, n, reason := scanDigits(s)
	if reason == "" {
		reason = checkDigits(&d, n)
	}
	if reason != "" {
		return Invalid, formatError(s, reason)
	}
	return IMEI{value: n}, nil
}

// TryParse is Parse without the error.
func TryParse(s string) (IMEI, bool) {
	d, n, reason := scanDigits(s)
	if reason != "" || checkDigits(&d, n) != "" {
		return Invalid, false
	}
	return IMEI{value: n}, true
}

// ParseBytes parses exactly 15 UTF-8 encoded decimal digits. A nil or empty
// slice is rejected.
func ParseBytes(b []byte) (IMEI, error) {
	d, n, reason := scanDigits(b)
	if reason == "" {
		reason = checkDigits(&d, n)
	}
	if reason != "" {
		return Invalid, formatError(string(b), reason)
	}
	return IMEI{value: n}, nil
}

// TryParseBytes is ParseBytes without the error. It does not allocate.
func TryParseBytes(b []byte) (IMEI, bool) {
	d, n, reason := scanDigits(b)
	if reason != "" || checkDigits(&d, n) != "" {
		return Invalid, false
	}
	return IMEI{value: n}, true
}

// ParseRunes parses exactly 15 decimal digit runes.
func ParseRunes(r []rune) (IMEI, error) {
	d, n, reason := scanRunes(r)
	if reason == "" {
		reason = checkDigits(&d, n)
	}
	if reason != "" {
		return Invalid, formatError(string(r), reason)
	}
	return IMEI{value: n}, nil
}

// TryParseRunes is ParseRunes without the error.
func TryParseRunes(r []rune) (IMEI, bool) {
	d, n, reason := scanRunes(r)
	if reason != "" || checkDigits(&d, n) != "" {
		return Invalid, false
	}
	return IMEI{value: n}, true
}

// MustParse is Parse for constants in tests and samples. It panics on error.
func MustParse(s string) IMEI {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// parseMagnitude accepts any non-empty run of decimal digits that fits in an
// int64. It backs the unvalidated construction path.
func parseMagnitude[T ~string | ~[]byte](s T) (int64, string) {
	if len(s) == 0 {
		return invalidValue, ReasonEmpty
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return invalidValue, ReasonNonDigit
		}
		v := int64(c - '0')
		if n > (math.MaxInt64-v)/10 {
			return invalidValue, ReasonRange
		}
		n = n*10 + v
	}
	return n, ""
}
