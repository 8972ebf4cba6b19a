// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure-Go CPU backend, the default compute
// backend of the Sprout training engine.
//
// Kernels run single-threaded for small operands and spread row-parallel
// work across a worker pool for larger matrix multiplications.
//
// Example:
//
//	import (
//	    "github.com/sprout-ml/sprout/autodiff"
//	    "github.com/sprout-ml/sprout/backend/cpu"
//	)
//
//	func main() {
//	    autodiff.Use(cpu.New())
//	}
package cpu

import (
	"github.com/sprout-ml/sprout/internal/backend/cpu"
)

// CPUBackend executes tensor kernels on the host CPU.
type CPUBackend = cpu.CPUBackend

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return cpu.New()
}
