// Package scoring computes pillar scores and board composites from
// normalized source values.
//
// Missing data is excluded and the remaining weights renormalized; it is
// never coerced to zero. A pillar whose sources are all missing is nil, and a
// model with fewer non-null pillars than the board's qualification threshold
// gets a nil composite. Scoring is pure and deterministic: identical inputs
// produce identical outputs, including float summation order.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/solosevn/trainingrun/internal/domain/model"
	"github.com/solosevn/trainingrun/internal/domain/registry"
)

// Rounding precision carried in published datasets.
const (
	pillarDecimals    = 1e4
	compositeDecimals = 1e2
)

// Composer scores models against one board.
type Composer struct {
	board registry.Board
}

// NewComposer creates a Composer for the given board. The board must have
// been validated; Compose trusts its weight structure.
func NewComposer(board registry.Board) *Composer {
	return &Composer{board: board}
}

// PillarScore aggregates one pillar from normalized source values for one
// model. A source absent from values is a missing reading: its sub-weight is
// excluded and the used sub-weights renormalized. All sources missing yields
// nil. A value outside [0,100] is a data error and must have been rejected
// upstream; it returns an error here rather than being clamped.
func (c *Composer) PillarScore(pillar registry.Pillar, values map[string]float64) (*float64, error) {
	sum := 0.0
	used := 0.0
	for _, src := range pillar.Sources {
		v, ok := values[src.Key]
		if !ok {
			continue
		}
		if v < 0 || v > 100 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: source %q value %v", ErrValueOutOfRange, src.Key, v)
		}
		sum += v * src.SubWeight
		used += src.SubWeight
	}
	if used == 0 {
		return nil, nil
	}
	score := roundTo(sum/used, pillarDecimals)
	return &score, nil
}

// Compose produces one model's DailyScoreRecord for one day. normalized maps
// source key to that model's normalized value; sources without a value are
// simply absent. The composite weights the non-null pillars by their declared
// board weights, renormalized over the non-null subset.
func (c *Composer) Compose(ctx context.Context, m, company, day string, normalized map[string]float64) (model.DailyScoreRecord, error) {
	rec := model.DailyScoreRecord{
		Model:   m,
		Company: company,
		Board:   c.board.Key,
		Day:     day,
		Pillars: make(map[string]*float64, len(c.board.Pillars)),
	}

	sum := 0.0
	used := 0.0
	nonNull := 0
	for _, pillar := range c.board.Pillars {
		score, err := c.PillarScore(pillar, normalized)
		if err != nil {
			return model.DailyScoreRecord{}, fmt.Errorf("pillar %q: %w", pillar.Key, err)
		}
		rec.Pillars[pillar.Key] = score
		if score == nil {
			continue
		}
		nonNull++
		sum += *score * pillar.Weight
		used += pillar.Weight
	}

	if nonNull < c.board.QualificationMin || used == 0 {
		// Below qualification: unranked that day, not an error.
		return rec, nil
	}
	composite := roundTo(sum/used, compositeDecimals)
	rec.Composite = &composite
	return rec, nil
}

// Board returns the board this composer scores against.
func (c *Composer) Board() registry.Board {
	return c.board
}

func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
