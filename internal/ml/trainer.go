package ml

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// MinTrainingSamples is the floor below which training is skipped. Anything
// smaller makes a single train/test split meaningless.
const MinTrainingSamples = 10

// splitSeed fixes the train/test shuffle. The same dataset must always
// produce the same split and therefore the same persisted model, since the
// only versioning is a string tag.
const splitSeed = 42

// TrainingStatus values reported to the caller.
const (
	TrainingStatusTrained          = "trained"
	TrainingStatusInsufficientData = "insufficient_data"
)

// TrainingRow is one labeled sample: the features of a finished enrollment
// plus its final grade.
type TrainingRow struct {
	Features FeatureVector
	Label    float64
}

// TrainingReport summarizes a training run. MSE and R2 are held-out
// diagnostics only; they never gate persistence.
type TrainingReport struct {
	Status       string  `json:"status"`
	Samples      int     `json:"samples"`
	TrainSamples int     `json:"train_samples"`
	TestSamples  int     `json:"test_samples"`
	MSE          float64 `json:"mse"`
	R2           float64 `json:"r2"`
	ModelVersion string  `json:"model_version,omitempty"`
	Skipped      int     `json:"skipped"`
}

// Trainer builds the labeled dataset from historical enrollments, fits the
// scaler and model, and persists them as a pair.
type Trainer struct {
	extractor      *FeatureExtractor
	enrollmentRepo repository.EnrollmentRepository
	store          *ArtifactStore
	versionPrefix  string
}

func NewTrainer(
	extractor *FeatureExtractor,
	enrollmentRepo repository.EnrollmentRepository,
	store *ArtifactStore,
	versionPrefix string,
) *Trainer {
	return &Trainer{
		extractor:      extractor,
		enrollmentRepo: enrollmentRepo,
		store:          store,
		versionPrefix:  versionPrefix,
	}
}

// PrepareTrainingData selects every completed or failed enrollment carrying
// a final grade and extracts its features. Pairs that fail extraction are
// skipped and counted, not propagated.
func (t *Trainer) PrepareTrainingData() ([]TrainingRow, int, error) {
	enrollments, err := t.enrollmentRepo.FindCompletedWithFinalGrade()
	if err != nil {
		return nil, 0, fmt.Errorf("loading labeled enrollments: %w", err)
	}

	rows := make([]TrainingRow, 0, len(enrollments))
	skipped := 0
	for _, enrollment := range enrollments {
		if enrollment.FinalGrade == nil {
			skipped++
			continue
		}
		features, err := t.extractor.Extract(enrollment.StudentID, enrollment.CourseID)
		if err != nil {
			if !errors.Is(err, ErrExtractionFailed) {
				return nil, 0, err
			}
			skipped++
			continue
		}
		rows = append(rows, TrainingRow{Features: features, Label: *enrollment.FinalGrade})
	}
	return rows, skipped, nil
}

// Train fits the scaler and model on an 80/20 split and persists them. With
// fewer than MinTrainingSamples rows it reports insufficient_data and leaves
// any existing artifacts untouched.
func (t *Trainer) Train() (*TrainingReport, error) {
	rows, skipped, err := t.PrepareTrainingData()
	if err != nil {
		return nil, err
	}

	report := &TrainingReport{Samples: len(rows), Skipped: skipped}
	if len(rows) < MinTrainingSamples {
		log.Warn().Int("samples", len(rows)).Int("minimum", MinTrainingSamples).Msg("Trainer: insufficient data, skipping training")
		report.Status = TrainingStatusInsufficientData
		return report, nil
	}

	trainRows, testRows := split(rows)
	report.TrainSamples = len(trainRows)
	report.TestSamples = len(testRows)

	trainX := make([][]float64, len(trainRows))
	trainY := make([]float64, len(trainRows))
	for i, row := range trainRows {
		trainX[i] = row.Features.Values()
		trainY[i] = row.Label
	}

	// Scaler statistics come from the training rows only; fitting on test
	// rows would leak held-out information into the model.
	scaler := NewStandardScaler()
	if err := scaler.Fit(trainX); err != nil {
		return nil, fmt.Errorf("fitting scaler: %w", err)
	}
	scaledTrain, err := scaler.TransformAll(trainX)
	if err != nil {
		return nil, fmt.Errorf("scaling training rows: %w", err)
	}

	model, err := FitRidge(scaledTrain, trainY, defaultLambda)
	if err != nil {
		return nil, fmt.Errorf("fitting model: %w", err)
	}
	model.Version = fmt.Sprintf("%s-%s", t.versionPrefix, uuid.NewString()[:8])

	report.MSE, report.R2 = t.evaluate(model, scaler, testRows)
	log.Info().
		Int("train_samples", report.TrainSamples).
		Int("test_samples", report.TestSamples).
		Float64("mse", report.MSE).
		Float64("r2", report.R2).
		Str("version", model.Version).
		Msg("Trainer: model fitted")

	if err := t.store.Save(model, scaler); err != nil {
		return nil, err
	}

	report.Status = TrainingStatusTrained
	report.ModelVersion = model.Version
	return report, nil
}

// evaluate computes held-out MSE and R². Diagnostics only.
func (t *Trainer) evaluate(model *RidgeModel, scaler *StandardScaler, testRows []TrainingRow) (mse, r2 float64) {
	if len(testRows) == 0 {
		return 0, 0
	}
	predicted := make([]float64, len(testRows))
	actual := make([]float64, len(testRows))
	for i, row := range testRows {
		scaled, err := scaler.Transform(row.Features.Values())
		if err != nil {
			log.Warn().Err(err).Msg("Trainer: failed to scale test row")
			continue
		}
		p, err := model.Predict(scaled)
		if err != nil {
			log.Warn().Err(err).Msg("Trainer: failed to score test row")
			continue
		}
		predicted[i] = p
		actual[i] = row.Label
		mse += (p - row.Label) * (p - row.Label)
	}
	mse /= float64(len(testRows))
	r2 = stat.RSquaredFrom(predicted, actual, nil)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		r2 = 0
	}
	return mse, r2
}

// split shuffles with the fixed seed and carves off 20% as the test set.
func split(rows []TrainingRow) (train, test []TrainingRow) {
	rng := rand.New(rand.NewSource(splitSeed))
	perm := rng.Perm(len(rows))

	testN := len(rows) / 5
	test = make([]TrainingRow, 0, testN)
	train = make([]TrainingRow, 0, len(rows)-testN)
	for i, idx := range perm {
		if i < testN {
			test = append(test, rows[idx])
		} else {
			train = append(train, rows[idx])
		}
	}
	return train, test
}
