package generator

import (
	"errors"

	"github.com/weiawesome/imei-service/pkg/imei"
)

//go:generate mockgen -source=generator.go -destination=mocks/generator_mock.go -package=mocks Generator

// DefaultMaxBatch is the largest batch served when no limit is configured.
const DefaultMaxBatch = 1000

// ErrInvalidCount is returned by GenerateBatch for counts outside [1, max].
var ErrInvalidCount = errors.New("invalid batch count")

// Generator defines the interface for IMEI generation, validation, and parsing.
type Generator interface {
	Generate() (imei.IMEI, error)
	GenerateBatch(count int) ([]imei.IMEI, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the fields decoded from a valid IMEI.
type ParseResult struct {
	Value      imei.IMEI
	TAC        int // Reporting Body Identifier, the two leading digits
	FAC        int
	SNR        int
	CheckDigit int
}

// NewParseResult decodes the sub-fields of id.
func NewParseResult(id imei.IMEI) *ParseResult {
	return &ParseResult{
		Value:      id,
		TAC:        id.TAC(),
		FAC:        id.FAC(),
		SNR:        id.SNR(),
		CheckDigit: int(id.Int64() % 10),
	}
}
