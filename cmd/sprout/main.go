// Package main provides the Sprout ML command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/sprout-ml/sprout/checkpoint"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Sprout ML %s\n", version)
			return
		case "inspect":
			if len(os.Args) != 3 {
				fmt.Fprintln(os.Stderr, "usage: sprout inspect <checkpoint.sprt>")
				os.Exit(2)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "sprout: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Sprout ML - Training Small Networks in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  inspect <file.sprt>  Describe a checkpoint's architecture and tensors")
}

// inspect prints a checkpoint's architecture and tensor table without
// loading parameter data.
func inspect(path string) error {
	arch, tensors, err := checkpoint.Meta(path)
	if err != nil {
		return err
	}

	fmt.Printf("checkpoint: %s\n", path)
	fmt.Printf("architecture: %d", arch.InputSize)
	for _, h := range arch.HiddenLayers {
		fmt.Printf(" -> %d", h)
	}
	fmt.Printf(" -> %d\n\n", arch.OutputSize)

	var total int64
	fmt.Printf("%-28s %-8s %-12s %s\n", "NAME", "DTYPE", "SHAPE", "BYTES")
	for _, meta := range tensors {
		fmt.Printf("%-28s %-8s %-12v %d\n", meta.Name, meta.DType, meta.Shape, meta.Size)
		total += meta.Size
	}
	fmt.Printf("\n%d tensors, %d payload bytes\n", len(tensors), total)
	return nil
}
