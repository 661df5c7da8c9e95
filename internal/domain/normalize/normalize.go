// Package normalize maps raw source values onto the 0-100 scale.
//
// Each source declares exactly one Rule. The mapping runs across all models
// currently reporting a value for the source, so "top performer = 100" always
// refers to the tracked set of that day, not an external absolute.
package normalize

import "math"

// Rule names a raw-value-to-0..100 mapping declared per source.
type Rule string

const (
	// Proportional scales values so the top tracked model scores 100 and the
	// rest score value/top*100. Ties at the top all score 100. A source with
	// a single reporting model scores it 100.
	Proportional Rule = "proportional"

	// Inverted handles lower-is-better metrics (Brier scores, cost, VRAM):
	// the worst positive value scores 0 and smaller values approach 100 via
	// (1 - value/worst) * 100. Non-positive values carry no signal and are
	// treated as missing.
	Inverted Rule = "inverted"

	// Identity passes values through unchanged; the source already reports
	// on a 0-100 scale. Out-of-range values are rejected, not clamped.
	Identity Rule = "identity"
)

// roundDecimals matches the precision the published datasets carry.
const roundDecimals = 1e4

// Valid reports whether r is a known rule.
func (r Rule) Valid() bool {
	switch r {
	case Proportional, Inverted, Identity:
		return true
	}
	return false
}

// Apply normalizes one source's raw values for all reporting models.
// The result contains only models whose value survived validation; callers
// treat absence as a missing reading. The second return lists models whose
// values were rejected as data errors (out of declared range).
func Apply(rule Rule, raw map[string]float64) (map[string]float64, []string) {
	switch rule {
	case Inverted:
		return applyInverted(raw)
	case Identity:
		return applyIdentity(raw)
	default:
		return applyProportional(raw)
	}
}

func applyProportional(raw map[string]float64) (map[string]float64, []string) {
	var rejected []string
	top := 0.0
	for name, v := range raw {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			rejected = append(rejected, name)
			continue
		}
		if v > top {
			top = v
		}
	}
	out := make(map[string]float64, len(raw))
	if top == 0 {
		// No positive signal anywhere: nothing to scale against.
		return out, rejected
	}
	for name, v := range raw {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[name] = round4(v / top * 100)
	}
	return out, rejected
}

func applyInverted(raw map[string]float64) (map[string]float64, []string) {
	var rejected []string
	worst := 0.0
	for name, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			rejected = append(rejected, name)
			continue
		}
		if v > worst {
			worst = v
		}
	}
	out := make(map[string]float64, len(raw))
	if worst <= 0 {
		return out, rejected
	}
	for name, v := range raw {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[name] = round4((1 - v/worst) * 100)
	}
	return out, rejected
}

func applyIdentity(raw map[string]float64) (map[string]float64, []string) {
	out := make(map[string]float64, len(raw))
	var rejected []string
	for name, v := range raw {
		if v < 0 || v > 100 || math.IsNaN(v) {
			rejected = append(rejected, name)
			continue
		}
		out[name] = round4(v)
	}
	return out, rejected
}

func round4(v float64) float64 {
	return math.Round(v*roundDecimals) / roundDecimals
}
