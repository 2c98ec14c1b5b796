package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredictionRepository interface {
	// Upsert writes the prediction for its (student, course) pair,
	// overwriting any previous row. Last write wins, no history.
	Upsert(prediction *model.PerformancePrediction) error
	FindByStudentAndCourse(studentID, courseID uint) (*model.PerformancePrediction, error)
	FindByStudent(studentID uint) ([]model.PerformancePrediction, error)
	FindAtRisk() ([]model.PerformancePrediction, error)
	CountAtRiskByStudent(studentID uint) (int64, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Upsert(prediction *model.PerformancePrediction) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"predicted_grade", "confidence_score", "at_risk",
			"risk_factors", "recommendations", "features_used",
			"model_version", "prediction_date", "updated_at",
		}),
	}).Create(prediction).Error
}

func (r *predictionRepository) FindByStudentAndCourse(studentID, courseID uint) (*model.PerformancePrediction, error) {
	var prediction model.PerformancePrediction
	err := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&prediction).Error
	return &prediction, err
}

func (r *predictionRepository) FindByStudent(studentID uint) ([]model.PerformancePrediction, error) {
	var predictions []model.PerformancePrediction
	err := r.db.Preload("Course").
		Where("student_id = ?", studentID).
		Order("prediction_date DESC").
		Find(&predictions).Error
	return predictions, err
}

func (r *predictionRepository) FindAtRisk() ([]model.PerformancePrediction, error) {
	var predictions []model.PerformancePrediction
	err := r.db.Preload("Student").Preload("Course").
		Where("at_risk = true").
		Order("predicted_grade ASC").
		Find(&predictions).Error
	return predictions, err
}

func (r *predictionRepository) CountAtRiskByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.PerformancePrediction{}).
		Where("student_id = ? AND at_risk = true", studentID).
		Count(&count).Error
	return count, err
}
