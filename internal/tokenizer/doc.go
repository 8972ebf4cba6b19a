// Package tokenizer converts text into integer token IDs and into
// fixed-width numeric features the training engine can consume.
//
// TikToken wraps the pkoukk/tiktoken-go library's OpenAI BPE encodings.
// Vectorizer folds token streams into hashed bag-of-tokens feature
// tensors for text classification.
package tokenizer
