package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/ml"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrPredictionUnavailable covers every recoverable reason a prediction
// cannot be produced (untrained model, missing rows). Handlers map it to an
// explicit "could not generate prediction" outcome; existing persisted
// predictions are left untouched.
var ErrPredictionUnavailable = errors.New("prediction not available")

// PredictorEngine is what the service needs from the ML predictor.
type PredictorEngine interface {
	Predict(studentID, courseID uint) (*ml.PredictionResult, error)
	Reload() error
}

type PredictionService interface {
	// PredictFor generates a fresh prediction for the pair and upserts it.
	PredictFor(studentID, courseID uint) (*dto.PredictionResponse, error)
	GetStudentPredictions(studentID uint) ([]dto.PredictionResponse, error)
	GetAtRiskPredictions() ([]dto.PredictionResponse, error)
	// UpdateAllPredictions refreshes every active enrollment sequentially;
	// failed pairs are skipped and counted, never aborting the loop.
	UpdateAllPredictions() (*dto.BatchPredictionSummary, error)
}

type predictionService struct {
	predictor      PredictorEngine
	predictionRepo repository.PredictionRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewPredictionService(
	predictor PredictorEngine,
	predictionRepo repository.PredictionRepository,
	enrollmentRepo repository.EnrollmentRepository,
) PredictionService {
	return &predictionService{
		predictor:      predictor,
		predictionRepo: predictionRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *predictionService) PredictFor(studentID, courseID uint) (*dto.PredictionResponse, error) {
	result, err := s.predictor.Predict(studentID, courseID)
	if err != nil {
		if errors.Is(err, ml.ErrModelNotTrained) || errors.Is(err, ml.ErrExtractionFailed) {
			log.Warn().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("PredictFor: prediction unavailable")
			return nil, fmt.Errorf("%w: %v", ErrPredictionUnavailable, err)
		}
		log.Error().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("PredictFor: inference failed")
		return nil, fmt.Errorf("error generating prediction: %w", err)
	}

	prediction, err := s.toModel(studentID, courseID, result)
	if err != nil {
		return nil, err
	}
	if err := s.predictionRepo.Upsert(prediction); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("PredictFor: upsert failed")
		return nil, fmt.Errorf("database error persisting prediction: %w", err)
	}

	return toPredictionResponse(prediction, result), nil
}

func (s *predictionService) GetStudentPredictions(studentID uint) ([]dto.PredictionResponse, error) {
	predictions, err := s.predictionRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentPredictions: repository error")
		return nil, fmt.Errorf("error fetching predictions for student %d: %w", studentID, err)
	}
	return toPredictionResponses(predictions), nil
}

func (s *predictionService) GetAtRiskPredictions() ([]dto.PredictionResponse, error) {
	predictions, err := s.predictionRepo.FindAtRisk()
	if err != nil {
		log.Error().Err(err).Msg("GetAtRiskPredictions: repository error")
		return nil, fmt.Errorf("error fetching at-risk predictions: %w", err)
	}
	return toPredictionResponses(predictions), nil
}

func (s *predictionService) UpdateAllPredictions() (*dto.BatchPredictionSummary, error) {
	enrollments, err := s.enrollmentRepo.FindActiveEnrolled()
	if err != nil {
		return nil, fmt.Errorf("error loading active enrollments: %w", err)
	}

	summary := dto.BatchPredictionSummary{Total: len(enrollments)}
	for _, enrollment := range enrollments {
		if _, err := s.PredictFor(enrollment.StudentID, enrollment.CourseID); err != nil {
			summary.Skipped++
			continue
		}
		summary.Updated++
	}
	log.Info().Int("total", summary.Total).Int("updated", summary.Updated).Int("skipped", summary.Skipped).Msg("UpdateAllPredictions: batch refresh finished")
	return &summary, nil
}

func (s *predictionService) toModel(studentID, courseID uint, result *ml.PredictionResult) (*model.PerformancePrediction, error) {
	riskFactors, err := json.Marshal(result.RiskFactors)
	if err != nil {
		return nil, fmt.Errorf("error encoding risk factors: %w", err)
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("error encoding recommendations: %w", err)
	}
	featuresUsed, err := json.Marshal(result.FeaturesUsed)
	if err != nil {
		return nil, fmt.Errorf("error encoding features: %w", err)
	}

	return &model.PerformancePrediction{
		StudentID:       studentID,
		CourseID:        courseID,
		PredictedGrade:  result.PredictedGrade,
		ConfidenceScore: result.ConfidenceScore,
		AtRisk:          result.AtRisk,
		RiskFactors:     riskFactors,
		Recommendations: recommendations,
		FeaturesUsed:    featuresUsed,
		ModelVersion:    result.ModelVersion,
	}, nil
}

func toPredictionResponse(prediction *model.PerformancePrediction, result *ml.PredictionResult) *dto.PredictionResponse {
	resp := dto.PredictionResponse{
		StudentID:       prediction.StudentID,
		CourseID:        prediction.CourseID,
		PredictedGrade:  prediction.PredictedGrade,
		ConfidenceScore: prediction.ConfidenceScore,
		AtRisk:          prediction.AtRisk,
		ModelVersion:    prediction.ModelVersion,
		PredictionDate:  prediction.PredictionDate,
	}
	if prediction.Course.ID != 0 {
		resp.CourseCode = prediction.Course.Code
		resp.CourseName = prediction.Course.Name
	}
	if prediction.Student.ID != 0 {
		resp.StudentName = prediction.Student.FullName
	}

	if result != nil {
		resp.RiskFactors = result.RiskFactors
		resp.Recommendations = result.Recommendations
		resp.FeaturesUsed = featureMap(result.FeaturesUsed)
		return &resp
	}

	// Listing path: decode the persisted JSON columns.
	if err := json.Unmarshal(prediction.RiskFactors, &resp.RiskFactors); err != nil {
		log.Warn().Err(err).Uint("predictionID", prediction.ID).Msg("toPredictionResponse: bad risk_factors JSON")
	}
	if err := json.Unmarshal(prediction.Recommendations, &resp.Recommendations); err != nil {
		log.Warn().Err(err).Uint("predictionID", prediction.ID).Msg("toPredictionResponse: bad recommendations JSON")
	}
	if err := json.Unmarshal(prediction.FeaturesUsed, &resp.FeaturesUsed); err != nil {
		log.Warn().Err(err).Uint("predictionID", prediction.ID).Msg("toPredictionResponse: bad features_used JSON")
	}
	return &resp
}

func toPredictionResponses(predictions []model.PerformancePrediction) []dto.PredictionResponse {
	resp := make([]dto.PredictionResponse, 0, len(predictions))
	for i := range predictions {
		resp = append(resp, *toPredictionResponse(&predictions[i], nil))
	}
	return resp
}

func featureMap(features ml.FeatureVector) map[string]float64 {
	names := ml.FeatureNames()
	values := features.Values()
	m := make(map[string]float64, len(names))
	for i, name := range names {
		m[name] = values[i]
	}
	return m
}
