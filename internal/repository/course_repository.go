package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithAssessments(id uint) (*model.Course, error)
	FindAllWithEnrolledCount() ([]struct {
		model.Course
		EnrolledCount int
	}, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.First(&course, id).Error
	return &course, err
}

func (r *courseRepository) FindByIDWithAssessments(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Assessments", func(db *gorm.DB) *gorm.DB {
		return db.Order("assessments.due_date ASC")
	}).First(&course, id).Error
	return &course, err
}

func (r *courseRepository) FindAllWithEnrolledCount() ([]struct {
	model.Course
	EnrolledCount int
}, error) {
	var results []struct {
		model.Course
		EnrolledCount int
	}
	err := r.db.Model(&model.Course{}).
		Select("courses.*, (SELECT COUNT(*) FROM enrollments WHERE enrollments.course_id = courses.id AND enrollments.is_active = true AND enrollments.deleted_at IS NULL) as enrolled_count").
		Where("courses.deleted_at IS NULL").
		Order("courses.code ASC").
		Scan(&results).Error
	return results, err
}
