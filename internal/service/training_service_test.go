package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Polaris/internal/ml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainer struct {
	report *ml.TrainingReport
	err    error
}

func (f *fakeTrainer) Train() (*ml.TrainingReport, error) {
	return f.report, f.err
}

func TestTrainReloadsPredictorOnSuccess(t *testing.T) {
	trainer := &fakeTrainer{report: &ml.TrainingReport{
		Status:       ml.TrainingStatusTrained,
		Samples:      20,
		TrainSamples: 16,
		TestSamples:  4,
		MSE:          12.3,
		R2:           0.7,
		ModelVersion: "v1.0-deadbeef",
	}}
	predictor := newFakePredictor()
	svc := NewTrainingService(trainer, predictor)

	report, err := svc.Train()
	require.NoError(t, err)

	assert.Equal(t, "trained", report.Status)
	assert.Equal(t, "v1.0-deadbeef", report.ModelVersion)
	assert.Equal(t, 20, report.Samples)
	assert.Equal(t, 1, predictor.reloaded, "successful training must hot-swap the cached artifacts")
}

func TestTrainInsufficientDataSkipsReload(t *testing.T) {
	trainer := &fakeTrainer{report: &ml.TrainingReport{
		Status:  ml.TrainingStatusInsufficientData,
		Samples: 4,
	}}
	predictor := newFakePredictor()
	svc := NewTrainingService(trainer, predictor)

	report, err := svc.Train()
	require.NoError(t, err)

	assert.Equal(t, "insufficient_data", report.Status)
	assert.Zero(t, predictor.reloaded)
}

func TestTrainPropagatesPipelineError(t *testing.T) {
	trainer := &fakeTrainer{err: errors.New("db gone")}
	svc := NewTrainingService(trainer, newFakePredictor())

	_, err := svc.Train()
	assert.ErrorContains(t, err, "training failed")
}
