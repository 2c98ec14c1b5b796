package ml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictWithoutArtifacts(t *testing.T) {
	w := newTestWorld()
	w.addStudent(1, "2", 3.0)
	w.addCourse(10, "beginner", 3)
	w.enroll(1, 10, 5)

	predictor := NewPredictor(w.extractor(), NewArtifactStore(t.TempDir()))
	_, err := predictor.Predict(1, 10)
	assert.ErrorIs(t, err, ErrModelNotTrained)
}

func TestPredictAfterTraining(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 12)
	store := NewArtifactStore(t.TempDir())
	report, err := NewTrainer(w.extractor(), w.enrollments, store, "v1.0").Train()
	require.NoError(t, err)

	w.addStudent(60, "3", 3.2)
	w.enroll(60, 100, 20)
	w.addGrade(60, 100, 42, 50, true)
	w.addGrade(60, 100, 44, 50, true)
	w.addAttendance(60, 100, "present", 3)
	w.addAttendance(60, 100, "present", 2)

	predictor := NewPredictor(w.extractor(), store)
	result, err := predictor.Predict(60, 100)
	require.NoError(t, err)

	assert.Equal(t, report.ModelVersion, result.ModelVersion)
	assert.GreaterOrEqual(t, result.ConfidenceScore, 0.1)
	assert.LessOrEqual(t, result.ConfidenceScore, 0.9)
	assert.NotEmpty(t, result.Recommendations)
	assert.Equal(t, 86.0, result.FeaturesUsed.CurrentCourseAvg)
	assert.Equal(t, 100.0, result.FeaturesUsed.AttendanceRate)
}

func TestPredictIsRepeatable(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 12)
	store := NewArtifactStore(t.TempDir())
	_, err := NewTrainer(w.extractor(), w.enrollments, store, "v1.0").Train()
	require.NoError(t, err)

	predictor := NewPredictor(w.extractor(), store)
	first, err := predictor.Predict(1, 100)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := predictor.Predict(1, 100)
		require.NoError(t, err)
		assert.Equal(t, first.PredictedGrade, again.PredictedGrade)
		assert.Equal(t, first.ConfidenceScore, again.ConfidenceScore)
		assert.Equal(t, first.RiskFactors, again.RiskFactors)
	}
}

func TestPredictExtractionFailure(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 12)
	store := NewArtifactStore(t.TempDir())
	_, err := NewTrainer(w.extractor(), w.enrollments, store, "v1.0").Train()
	require.NoError(t, err)

	predictor := NewPredictor(w.extractor(), store)
	_, err = predictor.Predict(999, 100)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestPredictCachesUntilReload(t *testing.T) {
	w := newTestWorld()
	seedCompleted(w, 12)
	store := NewArtifactStore(t.TempDir())
	first, err := NewTrainer(w.extractor(), w.enrollments, store, "v1.0").Train()
	require.NoError(t, err)

	predictor := NewPredictor(w.extractor(), store)
	result, err := predictor.Predict(1, 100)
	require.NoError(t, err)
	assert.Equal(t, first.ModelVersion, result.ModelVersion)

	// Retrain under a new prefix. The cached pair stays live until Reload.
	second, err := NewTrainer(w.extractor(), w.enrollments, store, "v2.0").Train()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(second.ModelVersion, "v2.0-"))

	stale, err := predictor.Predict(1, 100)
	require.NoError(t, err)
	assert.Equal(t, first.ModelVersion, stale.ModelVersion)

	require.NoError(t, predictor.Reload())
	fresh, err := predictor.Predict(1, 100)
	require.NoError(t, err)
	assert.Equal(t, second.ModelVersion, fresh.ModelVersion)
}

func TestConfidenceClampAtExtremes(t *testing.T) {
	assert.Equal(t, 0.1, clamp(1-absDiff(200, 75)/100, 0.1, 0.9))
	assert.Equal(t, 0.9, clamp(1-absDiff(75, 75)/100, 0.1, 0.9))
	assert.Equal(t, 0.75, clamp(1-absDiff(50, 75)/100, 0.1, 0.9))
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
