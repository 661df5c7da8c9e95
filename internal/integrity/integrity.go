// Package integrity seals and verifies board snapshots.
//
// The digest is SHA-256 over a canonical string built from the model names
// and their full score series. The same canonical form is implemented by the
// site-side verifier, so number formatting here is load-bearing: integral
// scores render with one decimal place and nulls as the literal "null".
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Series is one model's contribution to the digest.
type Series struct {
	Name   string
	Scores []*float64
}

// Canonical builds the canonical "names:scores" string the digest covers.
func Canonical(series []Series) string {
	var names strings.Builder
	var scores strings.Builder
	for i, s := range series {
		if i > 0 {
			names.WriteByte('|')
		}
		names.WriteString(s.Name)
		for _, v := range s.Scores {
			if scores.Len() > 0 {
				scores.WriteByte(',')
			}
			scores.WriteString(formatScore(v))
		}
	}
	return names.String() + ":" + scores.String()
}

// Digest returns the hex SHA-256 of the canonical form.
func Digest(series []Series) string {
	sum := sha256.Sum256([]byte(Canonical(series)))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest and compares it against the stored checksum.
// A mismatch means the snapshot is corrupt or tampered and must not be
// rendered.
func Verify(stored string, series []Series) error {
	got := Digest(series)
	if got != stored {
		return fmt.Errorf("%w: stored %s, computed %s", ErrChecksumMismatch, stored, got)
	}
	return nil
}

// formatScore renders one score the way the published files do: "null" for
// missing, one decimal for integral values, shortest representation
// otherwise.
func formatScore(v *float64) string {
	if v == nil {
		return "null"
	}
	if *v == math.Trunc(*v) {
		return strconv.FormatFloat(*v, 'f', 1, 64)
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
