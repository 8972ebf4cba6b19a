package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// preludeSize is the fixed byte count before the JSON header: magic,
// version, and header size.
const preludeSize = 4 + 4 + 8

// Save writes the model's parameters and the architecture to path in .sprt
// format, overwriting any existing file.
//
// The model's state-dict keys must match arch.ParameterNames exactly; a
// disagreement means the caller paired a model with the wrong metadata and
// fails before anything is written. The file is first written to a
// temporary name in the destination directory and atomically renamed into
// place, so no partial checkpoint is ever visible.
func Save(model Model, arch Architecture, path string) error {
	if err := arch.Validate(); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	state := model.StateDict()
	names := arch.ParameterNames()
	if len(state) != len(names) {
		return fmt.Errorf("save checkpoint: model has %d parameters, architecture describes %d", len(state), len(names))
	}

	header := Header{
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Architecture:  arch,
		Tensors:       make([]TensorMeta, 0, len(names)),
	}
	var offset int64
	for _, name := range names {
		t, ok := state[name]
		if !ok {
			return fmt.Errorf("save checkpoint: model is missing parameter %q", name)
		}
		size := int64(t.ByteSize())
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			DType:  t.DType().String(),
			Shape:  append([]int(nil), t.Shape()...),
			Offset: offset,
			Size:   size,
		})
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("save checkpoint: marshal header: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".sprt-*")
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	write := func(data []byte) error {
		_, werr := tmp.Write(data)
		return werr
	}
	if err := write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err := binary.Write(tmp, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err := binary.Write(tmp, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err := write(headerJSON); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if pad := padTo(preludeSize+int64(len(headerJSON)), HeaderAlignment); pad > 0 {
		if err := write(make([]byte, pad)); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
	}
	for _, name := range names {
		if err := write(state[name].Data()); err != nil {
			return fmt.Errorf("save checkpoint: write %s: %w", name, err)
		}
	}

	// Flush to stable storage before publishing.
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	tmp = nil
	return nil
}

// padTo returns the byte count needed to advance pos to the next multiple
// of align.
func padTo(pos int64, align int64) int64 {
	return (align - pos%align) % align
}
