package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *model.AttendanceRecord) error
	FindByStudentAndCourse(studentID, courseID uint) ([]model.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(record *model.AttendanceRecord) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) FindByStudentAndCourse(studentID, courseID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("student_id = ? AND course_id = ?", studentID, courseID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}
