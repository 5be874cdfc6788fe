package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/weiawesome/imei-service/pkg/imei"
)

const maxBatchLimit = 100_000

// IMEIGenerator generates IMEIs from the operating system's secure random
// source, or from a seeded PCG stream when a seed is configured.
type IMEIGenerator struct {
	mu       sync.Mutex // guards rng
	rng      *rand.Rand // nil means crypto/rand
	maxBatch int
}

// NewIMEIGenerator creates a new IMEIGenerator.
// seed 0 selects the secure source; any other value makes output
// reproducible. maxBatch must be in range [1, 100000]; 0 means
// DefaultMaxBatch.
func NewIMEIGenerator(seed uint64, maxBatch int) (*IMEIGenerator, error) {
	if maxBatch == 0 {
		maxBatch = DefaultMaxBatch
	}
	if maxBatch < 1 || maxBatch > maxBatchLimit {
		return nil, fmt.Errorf("max_batch must be between 1 and %d, got %d", maxBatchLimit, maxBatch)
	}

	g := &IMEIGenerator{maxBatch: maxBatch}
	if seed != 0 {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
	return g, nil
}

// Seeded reports whether output is reproducible.
func (g *IMEIGenerator) Seeded() bool {
	return g.rng != nil
}

// MaxBatch returns the largest count GenerateBatch accepts.
func (g *IMEIGenerator) MaxBatch() int {
	return g.maxBatch
}

func (g *IMEIGenerator) Generate() (imei.IMEI, error) {
	if g.rng == nil {
		return secureIMEI()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return imei.NewRandom(g.rng), nil
}

func (g *IMEIGenerator) GenerateBatch(count int) ([]imei.IMEI, error) {
	if count < 1 || count > g.maxBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d, got %d", ErrInvalidCount, g.maxBatch, count)
	}

	ids := make([]imei.IMEI, 0, count)
	if g.rng != nil {
		// Hold the lock for the whole batch so a seeded batch is one
		// contiguous run of the stream.
		g.mu.Lock()
		defer g.mu.Unlock()
		for i := 0; i < count; i++ {
			ids = append(ids, imei.NewRandom(g.rng))
		}
		return ids, nil
	}

	for i := 0; i < count; i++ {
		id, err := secureIMEI()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func secureIMEI() (imei.IMEI, error) {
	id, err := imei.NewSecureRandom()
	if err != nil {
		return imei.Invalid, fmt.Errorf("failed to generate IMEI: %w", err)
	}
	return id, nil
}

func (g *IMEIGenerator) Validate(id string) (bool, string) {
	if _, err := imei.Parse(id); err != nil {
		return false, reasonOf(err)
	}
	return true, ""
}

func (g *IMEIGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := imei.Parse(id)
	if err != nil {
		return nil, err
	}
	return NewParseResult(parsed), nil
}

func reasonOf(err error) string {
	var fe *imei.FormatError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return err.Error()
}
