package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Meta reads only the metadata of a checkpoint: its architecture and tensor
// table, without loading any parameter data. Fails with a FormatError if
// the file is unreadable or malformed.
func Meta(path string) (Architecture, []TensorMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return Architecture{}, nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	header, _, err := readHeader(f, path)
	if err != nil {
		return Architecture{}, nil, err
	}
	return header.Architecture, header.Tensors, nil
}

// Load reads a checkpoint's architecture and full parameter mapping. Fails
// with a FormatError if the file is unreadable or malformed.
func Load(path string) (Architecture, map[string]*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return Architecture{}, nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	header, dataOffset, err := readHeader(f, path)
	if err != nil {
		return Architecture{}, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		return Architecture{}, nil, &FormatError{Path: path, Err: err}
	}
	dataSize := info.Size() - dataOffset

	params := make(map[string]*tensor.Tensor, len(header.Tensors))
	for _, meta := range header.Tensors {
		if meta.Name == "" {
			return Architecture{}, nil, formatErr(path, "tensor with empty name")
		}
		if _, dup := params[meta.Name]; dup {
			return Architecture{}, nil, formatErr(path, "duplicate tensor %q", meta.Name)
		}
		dtype, ok := tensor.ParseDataType(meta.DType)
		if !ok {
			return Architecture{}, nil, formatErr(path, "tensor %q: unknown dtype %q", meta.Name, meta.DType)
		}
		shape := tensor.Shape(meta.Shape)
		if err := shape.Validate(); err != nil {
			return Architecture{}, nil, formatErr(path, "tensor %q: %v", meta.Name, err)
		}
		want := int64(shape.NumElements() * dtype.Size())
		if meta.Size != want {
			return Architecture{}, nil, formatErr(path, "tensor %q: size %d does not match shape %v (%d bytes)", meta.Name, meta.Size, shape, want)
		}
		if meta.Offset < 0 || meta.Offset+meta.Size > dataSize {
			return Architecture{}, nil, formatErr(path, "tensor %q: %w", meta.Name, ErrTruncated)
		}

		t, err := tensor.New(shape, dtype)
		if err != nil {
			return Architecture{}, nil, &FormatError{Path: path, Err: err}
		}
		if _, err := f.ReadAt(t.Data(), dataOffset+meta.Offset); err != nil {
			return Architecture{}, nil, formatErr(path, "tensor %q: %w", meta.Name, ErrTruncated)
		}
		params[meta.Name] = t
	}
	return header.Architecture, params, nil
}

// readHeader parses the fixed prelude and JSON header, returning the header
// and the offset where tensor data begins.
func readHeader(f *os.File, path string) (Header, int64, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return Header{}, 0, formatErr(path, "%w", ErrTruncated)
	}
	if string(magic) != MagicBytes {
		return Header{}, 0, &FormatError{Path: path, Err: ErrInvalidMagic}
	}

	var version uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return Header{}, 0, formatErr(path, "%w", ErrTruncated)
	}
	if version != FormatVersion {
		return Header{}, 0, formatErr(path, "%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	var headerSize uint64
	if err := binary.Read(f, binary.LittleEndian, &headerSize); err != nil {
		return Header{}, 0, formatErr(path, "%w", ErrTruncated)
	}
	if headerSize > maxHeaderSize {
		return Header{}, 0, formatErr(path, "%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(f, headerJSON); err != nil {
		return Header{}, 0, formatErr(path, "%w", ErrTruncated)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return Header{}, 0, formatErr(path, "parse header: %w", err)
	}
	if err := header.Architecture.Validate(); err != nil {
		return Header{}, 0, formatErr(path, "invalid architecture: %w", err)
	}

	dataOffset := preludeSize + int64(headerSize)
	dataOffset += padTo(dataOffset, HeaderAlignment)
	return header, dataOffset, nil
}
