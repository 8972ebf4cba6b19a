// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer converts text into token IDs and fixed-width numeric
// features for text classification.
//
// Example:
//
//	tok, _ := tokenizer.NewTikToken("cl100k_base")
//	vec, _ := tokenizer.NewVectorizer(tok, 512)
//
//	features, _ := vec.Vectorize(texts) // [len(texts), 512] float32
package tokenizer

import (
	"github.com/sprout-ml/sprout/internal/tokenizer"
)

// Tokenizer turns text into integer token IDs and back.
type Tokenizer = tokenizer.Tokenizer

// TikToken wraps the pkoukk/tiktoken-go library's OpenAI BPE encodings.
type TikToken = tokenizer.TikToken

// NewTikToken creates a tokenizer with the named encoding: "cl100k_base"
// (GPT-4), "p50k_base" (GPT-3), or "r50k_base".
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a tokenizer for a model name such as
// "gpt-4" or "gpt-3.5-turbo".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}

// Vectorizer folds token IDs into hashed bag-of-tokens feature vectors a
// fixed-width model can consume regardless of vocabulary size.
type Vectorizer = tokenizer.Vectorizer

// NewVectorizer creates a Vectorizer producing vectors of the given
// width.
func NewVectorizer(tok Tokenizer, buckets int) (*Vectorizer, error) {
	return tokenizer.NewVectorizer(tok, buckets)
}
