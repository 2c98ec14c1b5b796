package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByCourse(courseID uint) ([]model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.First(&assessment, id).Error
	return &assessment, err
}

func (r *assessmentRepository) FindByCourse(courseID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("course_id = ?", courseID).Order("due_date ASC").Find(&assessments).Error
	return assessments, err
}
