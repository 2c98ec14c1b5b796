package ml

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCompleted populates n students with completed, graded enrollments in
// one shared course.
func seedCompleted(w *testWorld, n int) {
	w.addCourse(100, "intermediate", 3)
	for i := 1; i <= n; i++ {
		id := uint(i)
		year := fmt.Sprintf("%d", i%5+1)
		w.addStudent(id, year, 2.0+float64(i%3)*0.5)
		w.complete(id, 100, 50+float64(i*3%50), 120)
		w.addGrade(id, 100, 40+float64(i%10), 50, true)
		w.addAttendance(id, 100, "present", 10)
		w.addAttendance(id, 100, "absent", 9)
	}
}

func TestTrainInsufficientData(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, MinTrainingSamples-1)

	store := NewArtifactStore(t.TempDir())
	trainer := NewTrainer(w.extractor(), w.enrollments, store, "v1.0")

	report, err := trainer.Train()
	require.NoError(t, err)
	assert.Equal(t, TrainingStatusInsufficientData, report.Status)
	assert.Equal(t, MinTrainingSamples-1, report.Samples)
	assert.Empty(t, report.ModelVersion)
	assert.False(t, store.Exists(), "insufficient data must not write artifacts")
}

func TestTrainPersistsMatchedPair(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 12)

	store := NewArtifactStore(t.TempDir())
	trainer := NewTrainer(w.extractor(), w.enrollments, store, "v1.0")

	report, err := trainer.Train()
	require.NoError(t, err)
	assert.Equal(t, TrainingStatusTrained, report.Status)
	assert.Equal(t, 12, report.Samples)
	assert.Equal(t, 10, report.TrainSamples)
	assert.Equal(t, 2, report.TestSamples)
	assert.True(t, strings.HasPrefix(report.ModelVersion, "v1.0-"))
	assert.True(t, store.Exists())

	model, scaler, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, report.ModelVersion, model.Version)
	assert.Len(t, model.Weights, NumFeatures)
	assert.Len(t, scaler.Means, NumFeatures)
	assert.True(t, scaler.Fitted)
}

func TestTrainAtExactMinimum(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, MinTrainingSamples)

	store := NewArtifactStore(t.TempDir())
	trainer := NewTrainer(w.extractor(), w.enrollments, store, "v1.0")

	report, err := trainer.Train()
	require.NoError(t, err)
	assert.Equal(t, TrainingStatusTrained, report.Status)
	assert.Equal(t, 8, report.TrainSamples)
	assert.Equal(t, 2, report.TestSamples)
}

func TestPrepareTrainingDataSkipsBrokenPairs(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 5)
	// Completed enrollment whose student row is gone: skipped, not fatal.
	w.complete(999, 100, 70, 120)

	trainer := NewTrainer(w.extractor(), w.enrollments, NewArtifactStore(t.TempDir()), "v1.0")
	rows, skipped, err := trainer.PrepareTrainingData()
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, 1, skipped)
}

func TestPrepareTrainingDataIgnoresActiveEnrollments(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 3)
	w.addStudent(50, "2", 3.0)
	w.enroll(50, 100, 10) // still active, no label

	trainer := NewTrainer(w.extractor(), w.enrollments, NewArtifactStore(t.TempDir()), "v1.0")
	rows, skipped, err := trainer.PrepareTrainingData()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Zero(t, skipped)
}

func TestTrainInsufficientDataLeavesExistingArtifacts(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(dir)

	// Persist a pair from a dataset that is large enough.
	big := newTestWorld()
	seedCompleted(big, 12)
	_, err := NewTrainer(big.extractor(), big.enrollments, store, "v1.0").Train()
	require.NoError(t, err)
	model, _, err := store.Load()
	require.NoError(t, err)

	// Retrain against a shrunken dataset: the old pair must survive.
	small := newTestWorld()
	seedCompleted(small, 4)
	report, err := NewTrainer(small.extractor(), small.enrollments, store, "v2.0").Train()
	require.NoError(t, err)
	assert.Equal(t, TrainingStatusInsufficientData, report.Status)

	after, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.Version, after.Version)
}
