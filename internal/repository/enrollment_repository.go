package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(enrollment *model.Enrollment) error
	Update(enrollment *model.Enrollment) error
	FindByID(id uint) (*model.Enrollment, error)
	FindByStudentAndCourse(studentID, courseID uint) (*model.Enrollment, error)
	FindByStudent(studentID uint) ([]model.Enrollment, error)
	// FindCompletedWithFinalGrade returns enrollments usable as training
	// labels: status completed or failed and a recorded final grade.
	FindCompletedWithFinalGrade() ([]model.Enrollment, error)
	// FindActiveEnrolled returns live enrollments eligible for prediction.
	FindActiveEnrolled() ([]model.Enrollment, error)
	CountActiveByCourse(courseID uint) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.db.Save(enrollment).Error
}

func (r *enrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.First(&enrollment, id).Error
	return &enrollment, err
}

func (r *enrollmentRepository) FindByStudentAndCourse(studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error
	return &enrollment, err
}

func (r *enrollmentRepository) FindByStudent(studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Preload("Course").
		Where("student_id = ?", studentID).
		Order("enrollment_date DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) FindCompletedWithFinalGrade() ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.
		Where("status IN ? AND final_grade IS NOT NULL",
			[]string{model.EnrollmentStatusCompleted, model.EnrollmentStatusFailed}).
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) FindActiveEnrolled() ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.
		Where("status = ? AND is_active = true", model.EnrollmentStatusEnrolled).
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) CountActiveByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Enrollment{}).
		Where("course_id = ? AND is_active = true", courseID).
		Count(&count).Error
	return count, err
}
