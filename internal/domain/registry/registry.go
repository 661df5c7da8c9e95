// Package registry defines the five scoring boards: their pillars, sources,
// weights, and qualification thresholds. Everything downstream of ingestion
// is parameterized by one Board.
package registry

import (
	"fmt"
	"math"

	"github.com/solosevn/trainingrun/internal/domain/normalize"
)

// WeightTolerance bounds rounding drift when validating weight sums.
const WeightTolerance = 0.001

// Source is one external benchmark feeding exactly one pillar.
type Source struct {
	Key       string         `koanf:"key" json:"key"`
	SubWeight float64        `koanf:"sub_weight" json:"sub_weight"` // fraction of the board composite
	Rule      normalize.Rule `koanf:"rule" json:"rule"`
}

// Pillar is a weighted scoring dimension within a board.
type Pillar struct {
	Key     string   `koanf:"key" json:"key"`
	Weight  float64  `koanf:"weight" json:"weight"`
	Sources []Source `koanf:"sources" json:"sources"`
}

// Board is one independently scored leaderboard.
type Board struct {
	Key              string   `koanf:"key" json:"key"`
	Name             string   `koanf:"name" json:"name"`
	FormulaVersion   string   `koanf:"formula_version" json:"formula_version"`
	QualificationMin int      `koanf:"qualification_min" json:"qualification_min"` // min non-null pillars for a composite
	Pillars          []Pillar `koanf:"pillars" json:"pillars"`
}

// Weights returns the pillar weight map in snapshot form.
func (b Board) Weights() map[string]float64 {
	w := make(map[string]float64, len(b.Pillars))
	for _, p := range b.Pillars {
		w[p.Key] = p.Weight
	}
	return w
}

// Sources returns all sources of the board in declaration order.
func (b Board) Sources() []Source {
	var all []Source
	for _, p := range b.Pillars {
		all = append(all, p.Sources...)
	}
	return all
}

// Validate checks the structural invariants a board must hold before any
// scoring run: pillar weights sum to 1, per-pillar sub-weights sum to the
// pillar's weight, rules are declared, and keys are unique. A board that
// fails validation must not publish.
func (b Board) Validate() error {
	if b.Key == "" {
		return fmt.Errorf("%w: board key is empty", ErrInvalidBoard)
	}
	if len(b.Pillars) == 0 {
		return fmt.Errorf("%w: board %q has no pillars", ErrInvalidBoard, b.Key)
	}
	if b.QualificationMin < 1 || b.QualificationMin > len(b.Pillars) {
		return fmt.Errorf("%w: board %q qualification_min %d out of range 1..%d",
			ErrInvalidBoard, b.Key, b.QualificationMin, len(b.Pillars))
	}

	total := 0.0
	pillarKeys := make(map[string]bool, len(b.Pillars))
	sourceKeys := make(map[string]bool)
	for _, p := range b.Pillars {
		if pillarKeys[p.Key] {
			return fmt.Errorf("%w: board %q duplicate pillar %q", ErrInvalidBoard, b.Key, p.Key)
		}
		pillarKeys[p.Key] = true
		if len(p.Sources) == 0 {
			return fmt.Errorf("%w: board %q pillar %q has no sources", ErrInvalidBoard, b.Key, p.Key)
		}
		total += p.Weight

		sub := 0.0
		for _, s := range p.Sources {
			if sourceKeys[s.Key] {
				return fmt.Errorf("%w: board %q duplicate source %q", ErrInvalidBoard, b.Key, s.Key)
			}
			sourceKeys[s.Key] = true
			if !s.Rule.Valid() {
				return fmt.Errorf("%w: board %q source %q has unknown rule %q",
					ErrInvalidBoard, b.Key, s.Key, s.Rule)
			}
			if s.SubWeight <= 0 {
				return fmt.Errorf("%w: board %q source %q has non-positive sub-weight",
					ErrInvalidBoard, b.Key, s.Key)
			}
			sub += s.SubWeight
		}
		if math.Abs(sub-p.Weight) > WeightTolerance {
			return fmt.Errorf("%w: board %q pillar %q sub-weights sum to %.4f, want %.4f",
				ErrInvalidBoard, b.Key, p.Key, sub, p.Weight)
		}
	}
	if math.Abs(total-1.0) > WeightTolerance {
		return fmt.Errorf("%w: board %q pillar weights sum to %.4f, want 1.0",
			ErrInvalidBoard, b.Key, total)
	}
	return nil
}

// Registry is the ordered set of configured boards.
type Registry struct {
	boards []Board
	byKey  map[string]int
}

// New builds a Registry, validating every board.
func New(boards []Board) (*Registry, error) {
	r := &Registry{byKey: make(map[string]int, len(boards))}
	for _, b := range boards {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byKey[b.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate board %q", ErrInvalidBoard, b.Key)
		}
		r.byKey[b.Key] = len(r.boards)
		r.boards = append(r.boards, b)
	}
	return r, nil
}

// Boards returns the boards in declaration order.
func (r *Registry) Boards() []Board {
	return r.boards
}

// Board looks up one board by key.
func (r *Registry) Board(key string) (Board, error) {
	i, ok := r.byKey[key]
	if !ok {
		return Board{}, fmt.Errorf("%w: %q", ErrUnknownBoard, key)
	}
	return r.boards[i], nil
}

// Keys returns the board keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.boards))
	for i, b := range r.boards {
		keys[i] = b.Key
	}
	return keys
}
