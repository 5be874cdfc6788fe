package imei

const (
	// Length is the number of decimal digits in an IMEI, check digit included.
	Length = 15

	// MinValue is the smallest magnitude that passes IsValid.
	// Written with all 15 digits it is 000000000000018.
	MinValue int64 = 18

	// MaxValue is the largest 15-digit magnitude with a valid check digit.
	MaxValue int64 = 999_999_999_999_994

	invalidValue int64 = 0

	// maxMagnitude is the largest number that still fits in Length digits.
	maxMagnitude int64 = 999_999_999_999_999
)

// Place values used to cut the stored magnitude into its fields:
// TAC(2) FAC(6) SNR(6) CD(1).
const (
	tacPlace   int64 = 10_000_000_000_000
	facPlace   int64 = 10_000_000
	snrPlace   int64 = 10
	fieldWidth int64 = 1_000_000
)

// Invalid is the sentinel IMEI. It is equal to the zero value and never
// passes IsValid; try-parse functions return it on failure.
var Invalid = IMEI{value: invalidValue}
