// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/checkpoint"
	"github.com/sprout-ml/sprout/data"
	"github.com/sprout-ml/sprout/nn"
	"github.com/sprout-ml/sprout/optim"
	"github.com/sprout-ml/sprout/train"
)

// TestTrainSaveRestore exercises the full public API: generate a dataset,
// train a model, checkpoint it, restore it, and verify the restored model
// predicts identically.
func TestTrainSaveRestore(t *testing.T) {
	dataRng := rand.New(rand.NewSource(5))
	x, y, err := data.SyntheticClassification(120, 20, 4, dataRng)
	require.NoError(t, err)
	batches, err := data.NewBatches(x, y, 16)
	require.NoError(t, err)

	modelRng := rand.New(rand.NewSource(42))
	model, err := nn.NewMLP(20, []int{16}, 4, modelRng)
	require.NoError(t, err)

	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
	trainer, err := train.New(model, nn.NewCrossEntropyLoss(), opt, train.Config{Epochs: 5})
	require.NoError(t, err)

	history, err := trainer.Fit(batches)
	require.NoError(t, err)
	require.Len(t, history, 5)
	assert.Less(t, history[4], history[0], "loss should fall over training")

	acc, err := train.Accuracy(model, batches)
	require.NoError(t, err)
	assert.Greater(t, acc, 0.8, "separable clusters should be mostly solved")

	path := filepath.Join(t.TempDir(), "model.sprt")
	arch := checkpoint.Architecture{
		InputSize:    model.InputSize(),
		HiddenLayers: model.HiddenSizes(),
		OutputSize:   model.OutputSize(),
	}
	require.NoError(t, checkpoint.Save(model, arch, path))

	restored, err := checkpoint.Restore(path, func(a checkpoint.Architecture) (checkpoint.Model, error) {
		return nn.NewMLP(a.InputSize, a.HiddenLayers, a.OutputSize, rand.New(rand.NewSource(0)))
	})
	require.NoError(t, err)

	restoredMLP, ok := restored.(*nn.MLP)
	require.True(t, ok)

	want, err := model.Predict(x)
	require.NoError(t, err)
	got, err := restoredMLP.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, want.AsInt32(), got.AsInt32(), "restored model must predict identically")
}
