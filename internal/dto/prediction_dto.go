package dto

import "time"

// PredictionResponse mirrors one persisted PerformancePrediction.
type PredictionResponse struct {
	StudentID       uint               `json:"student_id"`
	CourseID        uint               `json:"course_id"`
	CourseCode      string             `json:"course_code,omitempty"`
	CourseName      string             `json:"course_name,omitempty"`
	StudentName     string             `json:"student_name,omitempty"`
	PredictedGrade  float64            `json:"predicted_grade"`
	ConfidenceScore float64            `json:"confidence_score"`
	AtRisk          bool               `json:"at_risk"`
	RiskFactors     []string           `json:"risk_factors"`
	Recommendations []string           `json:"recommendations"`
	FeaturesUsed    map[string]float64 `json:"features_used"`
	ModelVersion    string             `json:"model_version"`
	PredictionDate  time.Time          `json:"prediction_date"`
}

// TrainingReportDTO is returned by the offline training entry point.
type TrainingReportDTO struct {
	Status       string  `json:"status"` // trained | insufficient_data
	Samples      int     `json:"samples"`
	TrainSamples int     `json:"train_samples"`
	TestSamples  int     `json:"test_samples"`
	MSE          float64 `json:"mse"`
	R2           float64 `json:"r2"`
	ModelVersion string  `json:"model_version,omitempty"`
	Skipped      int     `json:"skipped"`
}

// BatchPredictionSummary reports a refresh over all active enrollments.
// Individual failures are skipped and counted, never propagated.
type BatchPredictionSummary struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
