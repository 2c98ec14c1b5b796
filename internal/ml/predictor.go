package ml

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
)

// PredictionResult is the full output of one prediction. FeaturesUsed is the
// exact vector the model scored, so persisted rows are auditable.
type PredictionResult struct {
	PredictedGrade  float64       `json:"predicted_grade"`
	ConfidenceScore float64       `json:"confidence_score"`
	AtRisk          bool          `json:"at_risk"`
	RiskFactors     []string      `json:"risk_factors"`
	Recommendations []string      `json:"recommendations"`
	FeaturesUsed    FeatureVector `json:"features_used"`
	ModelVersion    string        `json:"model_version"`
}

// Predictor runs online inference. The artifact pair is loaded lazily once
// and treated as immutable afterwards; concurrent requests share it behind a
// read lock. Reload swaps in a fresh pair after retraining.
type Predictor struct {
	extractor *FeatureExtractor
	store     *ArtifactStore

	mu     sync.RWMutex
	model  *RidgeModel
	scaler *StandardScaler
}

func NewPredictor(extractor *FeatureExtractor, store *ArtifactStore) *Predictor {
	return &Predictor{extractor: extractor, store: store}
}

// Predict scores a (student, course) pair. It returns ErrModelNotTrained
// when no artifacts exist and ErrExtractionFailed when the pair is missing
// required rows; both are recoverable conditions, never panics.
func (p *Predictor) Predict(studentID, courseID uint) (*PredictionResult, error) {
	model, scaler, err := p.loaded()
	if err != nil {
		return nil, err
	}

	features, err := p.extractor.Extract(studentID, courseID)
	if err != nil {
		return nil, err
	}

	scaled, err := scaler.Transform(features.Values())
	if err != nil {
		return nil, fmt.Errorf("scaling features: %w", err)
	}
	predictedGrade, err := model.Predict(scaled)
	if err != nil {
		return nil, fmt.Errorf("scoring features: %w", err)
	}

	// Heuristic confidence, not a statistical interval: predictions near the
	// middle of the grade distribution are more trustworthy than extremes.
	// Clamped to [0.1, 0.9] so it is never reported as certain or worthless.
	confidence := clamp(1-math.Abs(predictedGrade-75)/100, 0.1, 0.9)

	// Risk and recommendations run on the same vector that produced the
	// prediction, not a re-extracted one.
	riskFactors := IdentifyRiskFactors(features)

	return &PredictionResult{
		PredictedGrade:  round(predictedGrade, 2),
		ConfidenceScore: round(confidence, 4),
		AtRisk:          IsAtRisk(riskFactors, predictedGrade),
		RiskFactors:     riskFactors,
		Recommendations: GenerateRecommendations(features, riskFactors),
		FeaturesUsed:    features,
		ModelVersion:    model.Version,
	}, nil
}

// Reload discards the cached artifact pair and loads the persisted one.
// Called after a successful training run.
func (p *Predictor) Reload() error {
	model, scaler, err := p.store.Load()
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.model = model
	p.scaler = scaler
	p.mu.Unlock()
	log.Info().Str("version", model.Version).Msg("Predictor: reloaded model artifacts")
	return nil
}

// loaded returns the cached pair, lazily loading it on first use. The double
// check under the write lock keeps concurrent first requests from loading
// twice.
func (p *Predictor) loaded() (*RidgeModel, *StandardScaler, error) {
	p.mu.RLock()
	model, scaler := p.model, p.scaler
	p.mu.RUnlock()
	if model != nil && scaler != nil {
		return model, scaler, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.model != nil && p.scaler != nil {
		return p.model, p.scaler, nil
	}
	model, scaler, err := p.store.Load()
	if err != nil {
		if errors.Is(err, ErrModelNotTrained) {
			return nil, nil, ErrModelNotTrained
		}
		return nil, nil, err
	}
	p.model = model
	p.scaler = scaler
	log.Info().Str("version", model.Version).Msg("Predictor: loaded model artifacts")
	return model, scaler, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
