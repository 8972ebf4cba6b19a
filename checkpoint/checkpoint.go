// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint persists and restores model state in the Sprout
// checkpoint format (.sprt files).
//
// A checkpoint bundles the architecture needed to rebuild a structurally
// identical model with the full parameter-name→tensor mapping. Restore
// rebuilds the model first and only then copies values in, so a stored
// file is sufficient to resume training or serve predictions.
//
// Example:
//
//	arch := checkpoint.Architecture{InputSize: 784, HiddenLayers: []int{128, 64}, OutputSize: 10}
//	_ = checkpoint.Save(model, arch, "model.sprt")
//
//	restored, err := checkpoint.Restore("model.sprt", func(a checkpoint.Architecture) (checkpoint.Model, error) {
//	    return nn.NewMLP(a.InputSize, a.HiddenLayers, a.OutputSize, rng)
//	})
//
// Save writes to a temporary file in the destination directory and
// renames it into place, so a crash mid-write never leaves a truncated
// checkpoint at the destination.
package checkpoint

import (
	"github.com/sprout-ml/sprout/internal/checkpoint"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Architecture is the structural metadata stored alongside parameters:
// enough to rebuild an identically shaped model before values are copied
// in.
type Architecture = checkpoint.Architecture

// Header is the decoded metadata block of a checkpoint file.
type Header = checkpoint.Header

// TensorMeta locates one named tensor inside a checkpoint's payload.
type TensorMeta = checkpoint.TensorMeta

// Model is the slice of model behavior checkpoints need: exporting and
// importing named parameter state.
type Model = checkpoint.Model

// Constructor builds a fresh model from stored architecture metadata.
type Constructor = checkpoint.Constructor

// FormatError reports a checkpoint file that cannot be read: missing,
// corrupt, or structurally invalid.
type FormatError = checkpoint.FormatError

// Sentinel causes wrapped by FormatError, for errors.Is checks.
var (
	ErrInvalidMagic       = checkpoint.ErrInvalidMagic
	ErrUnsupportedVersion = checkpoint.ErrUnsupportedVersion
	ErrHeaderTooLarge     = checkpoint.ErrHeaderTooLarge
	ErrTruncated          = checkpoint.ErrTruncated
)

// Save writes the model's parameters and architecture to path,
// overwriting any existing file atomically.
func Save(model Model, arch Architecture, path string) error {
	return checkpoint.Save(model, arch, path)
}

// Load reads a checkpoint's architecture and full parameter mapping.
func Load(path string) (Architecture, map[string]*tensor.Tensor, error) {
	return checkpoint.Load(path)
}

// Meta reads only a checkpoint's architecture and tensor table, without
// loading parameter data.
func Meta(path string) (Architecture, []TensorMeta, error) {
	return checkpoint.Meta(path)
}

// Restore loads a checkpoint, rebuilds the model via construct, and
// copies the stored parameters in. A stored state that does not match the
// rebuilt model fails with nn.ShapeMismatchError enumerating every
// offending parameter, leaving the rebuilt model's parameters untouched.
func Restore(path string, construct Constructor) (Model, error) {
	return checkpoint.Restore(path, construct)
}
