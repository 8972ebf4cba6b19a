// Package checkpoint persists and restores trained models in the .sprt
// format, pairing every parameter tensor with the structural metadata needed
// to rebuild an identical network before values are copied in.
//
//	Format structure:
//	  [4 bytes: Magic "SPRT"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata, architecture plus tensor table]
//	  [Padding to 64-byte alignment]
//	  [Tensor data: raw bytes in header order]
//
// Saves go through a temporary file in the destination directory and are
// atomically renamed into place, so a crashed or failed save never leaves a
// partial checkpoint behind.
//
// Example:
//
//	arch := checkpoint.Architecture{InputSize: 784, OutputSize: 10, HiddenLayers: []int{128, 64}}
//	err := checkpoint.Save(model, arch, "model.sprt")
//
//	restored, err := checkpoint.Restore("model.sprt", func(a checkpoint.Architecture) (checkpoint.Model, error) {
//	    return nn.NewMLP(a.InputSize, a.HiddenLayers, a.OutputSize, rng)
//	})
package checkpoint
