// Package vecmath provides small float32 vector helpers shared by the
// encoders.
package vecmath

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when normalizing a vector with zero Euclidean norm.
var ErrZeroVector = errors.New("cannot normalize zero-norm vector")

// Norm returns the Euclidean (L2) norm of vec.
//
// gonum's floats package only operates on float64 slices; the embedding
// pipeline is float32 end to end (OpenAI responses and Qdrant points both
// use float32), so the accumulation is done here instead.
func Norm(vec []float32) float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return float32(math.Sqrt(sum))
}

// Normalize returns a new vector scaled to unit L2 norm.
func Normalize(vec []float32) ([]float32, error) {
	n := Norm(vec)
	if n == 0 {
		return nil, ErrZeroVector
	}
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = v / n
	}
	return out, nil
}

// NormalizeRows returns a new matrix with every row scaled to unit L2
// norm, preserving row order. Fails on the first zero-norm row.
func NormalizeRows(rows [][]float32) ([][]float32, error) {
	out := make([][]float32, len(rows))
	for i, row := range rows {
		norm, err := Normalize(row)
		if err != nil {
			return nil, err
		}
		out[i] = norm
	}
	return out, nil
}
