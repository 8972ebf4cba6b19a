package tokenizer

import (
	"errors"
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Vectorizer folds token IDs into a fixed number of hash buckets and
// counts them, producing bag-of-tokens feature vectors a fixed-width
// model can consume regardless of vocabulary size.
type Vectorizer struct {
	tok     Tokenizer
	buckets int
}

// NewVectorizer creates a Vectorizer with the given feature width.
func NewVectorizer(tok Tokenizer, buckets int) (*Vectorizer, error) {
	if tok == nil {
		return nil, errors.New("vectorizer: tokenizer is required")
	}
	if buckets < 1 {
		return nil, fmt.Errorf("vectorizer: buckets must be positive, got %d", buckets)
	}
	return &Vectorizer{tok: tok, buckets: buckets}, nil
}

// Buckets returns the feature width of every produced vector.
func (v *Vectorizer) Buckets() int {
	return v.buckets
}

// Vectorize encodes each text and returns [len(texts), buckets] float32
// bucket counts, normalized per row so short and long texts are
// comparable.
func (v *Vectorizer) Vectorize(texts []string) (*tensor.Tensor, error) {
	if len(texts) == 0 {
		return nil, errors.New("vectorizer: no texts")
	}
	out, err := tensor.New(tensor.Shape{len(texts), v.buckets}, tensor.Float32)
	if err != nil {
		return nil, err
	}

	features := out.AsFloat32()
	for i, text := range texts {
		tokens, err := v.tok.Encode(text)
		if err != nil {
			return nil, fmt.Errorf("vectorizer: encode text %d: %w", i, err)
		}
		row := features[i*v.buckets : (i+1)*v.buckets]
		for _, id := range tokens {
			row[bucketOf(id, v.buckets)]++
		}
		if n := len(tokens); n > 0 {
			inv := 1 / float32(n)
			for j := range row {
				row[j] *= inv
			}
		}
	}
	return out, nil
}

// bucketOf maps a token ID onto [0, buckets) with a Knuth multiplicative
// hash, spreading adjacent vocabulary IDs across buckets.
func bucketOf(id int32, buckets int) int {
	h := uint32(id) * 2654435761
	return int(h % uint32(buckets))
}
