// Package similarity provides the bounded vector-similarity primitive used to
// compare embedded text items.
package similarity

import (
	"fmt"
	"math"
)

// DimensionMismatchError reports an attempt to compare embeddings of
// different lengths. Callers comparing many pairs are expected to recover
// per-pair rather than abort the whole comparison.
type DimensionMismatchError struct {
	LenA int
	LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.LenA, e.LenB)
}

// Cosine returns the cosine similarity of two equal-length vectors, clamped
// to [0,1]. Negative cosine values are floored to 0: negative semantic
// similarity is not meaningful for this domain. Zero-magnitude vectors score
// 0. Pure and stateless; the only failure mode is a dimension mismatch.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, &DimensionMismatchError{LenA: len(a), LenB: len(b)}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(cos) || cos < 0 {
		return 0, nil
	}
	if cos > 1 {
		// Guard against float drift pushing identical vectors past 1.
		return 1, nil
	}
	return cos, nil
}
