package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// CSVOptions configures LoadCSV.
type CSVOptions struct {
	HasHeader bool    // skip the first row
	Scale     float32 // divide every feature by this (e.g. 255 for pixel data); 0 means no scaling
	Limit     int     // load at most this many rows; 0 means all
}

// LoadCSV reads a labeled numeric dataset in the common Kaggle layout: the
// first column is an integer class label, the remaining columns are
// features. Every row must have the same width.
//
// Returns [rows, features] float32 inputs and [rows] int32 labels.
func LoadCSV(path string, opts CSVOptions) (*tensor.Tensor, *tensor.Tensor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load csv %s: %w", path, err)
	}
	if opts.HasHeader {
		if len(records) == 0 {
			return nil, nil, fmt.Errorf("load csv %s: missing header", path)
		}
		records = records[1:]
	}
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("load csv %s: no data rows", path)
	}

	features := len(records[0]) - 1
	if features < 1 {
		return nil, nil, fmt.Errorf("load csv %s: rows need a label and at least one feature", path)
	}

	x, err := tensor.New(tensor.Shape{len(records), features}, tensor.Float32)
	if err != nil {
		return nil, nil, err
	}
	y, err := tensor.New(tensor.Shape{len(records)}, tensor.Int32)
	if err != nil {
		return nil, nil, err
	}

	xs, ys := x.AsFloat32(), y.AsInt32()
	for i, record := range records {
		if len(record) != features+1 {
			return nil, nil, fmt.Errorf("load csv %s: row %d has %d columns, want %d", path, i+1, len(record), features+1)
		}
		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, nil, fmt.Errorf("load csv %s: row %d label: %w", path, i+1, err)
		}
		ys[i] = int32(label)
		for j := 1; j < len(record); j++ {
			v, err := strconv.ParseFloat(record[j], 32)
			if err != nil {
				return nil, nil, fmt.Errorf("load csv %s: row %d column %d: %w", path, i+1, j, err)
			}
			f := float32(v)
			if opts.Scale != 0 {
				f /= opts.Scale
			}
			xs[i*features+(j-1)] = f
		}
	}
	return x, y, nil
}
