package model

import (
	"time"

	"gorm.io/datatypes"
)

// PerformancePrediction is the persisted output of the prediction pipeline.
// One row per (student, course); regenerating a prediction overwrites the
// previous one, no history is kept.
type PerformancePrediction struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	StudentID       uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_prediction_student_course"`
	Student         StudentProfile `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	CourseID        uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_prediction_student_course"`
	Course          Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	PredictedGrade  float64        `json:"predicted_grade"`
	ConfidenceScore float64        `json:"confidence_score"` // 0.1 - 0.9
	AtRisk          bool           `json:"at_risk" gorm:"default:false;index"`
	RiskFactors     datatypes.JSON `json:"risk_factors"`
	Recommendations datatypes.JSON `json:"recommendations"`
	FeaturesUsed    datatypes.JSON `json:"features_used"`
	ModelVersion    string         `json:"model_version"`
	PredictionDate  time.Time      `json:"prediction_date" gorm:"autoUpdateTime"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
