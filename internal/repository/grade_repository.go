package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

type GradeRepository interface {
	Create(grade *model.Grade) error
	Update(grade *model.Grade) error
	// FindHistoricalByStudent returns all of a student's grades excluding
	// those belonging to the given course. Assessments are preloaded so
	// percentages can be derived.
	FindHistoricalByStudent(studentID, excludeCourseID uint) ([]model.Grade, error)
	// FindPublishedByStudentAndCourse returns the student's published grades
	// within one course, with assessments preloaded.
	FindPublishedByStudentAndCourse(studentID, courseID uint) ([]model.Grade, error)
	FindPublishedByStudent(studentID uint) ([]model.Grade, error)
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Create(grade *model.Grade) error {
	return r.db.Create(grade).Error
}

func (r *gradeRepository) Update(grade *model.Grade) error {
	return r.db.Save(grade).Error
}

func (r *gradeRepository) FindHistoricalByStudent(studentID, excludeCourseID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.Preload("Assessment").
		Joins("JOIN assessments ON assessments.id = grades.assessment_id").
		Where("grades.student_id = ? AND assessments.course_id <> ?", studentID, excludeCourseID).
		Find(&grades).Error
	return grades, err
}

func (r *gradeRepository) FindPublishedByStudentAndCourse(studentID, courseID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.Preload("Assessment").
		Joins("JOIN assessments ON assessments.id = grades.assessment_id").
		Where("grades.student_id = ? AND assessments.course_id = ? AND grades.is_published = true", studentID, courseID).
		Find(&grades).Error
	return grades, err
}

func (r *gradeRepository) FindPublishedByStudent(studentID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.Preload("Assessment").Preload("Assessment.Course").
		Where("student_id = ? AND is_published = true", studentID).
		Order("graded_at DESC").
		Find(&grades).Error
	return grades, err
}
