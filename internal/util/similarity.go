package util

import "math"

// CosineSimilarity returns dot(a,b) / (|a|*|b|) in [-1, 1].
//
// An empty vector on either side means "no information" and scores 0.0, as
// does an all-zero vector (no division by zero). Mismatched lengths are
// zipped to the shorter vector; the provider emits fixed-length vectors in
// practice, so this only matters if cached vectors from an older model linger.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, x := range a {
		normA += float64(x) * float64(x)
	}
	for _, y := range b {
		normB += float64(y) * float64(y)
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
