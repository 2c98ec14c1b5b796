package repository

import (
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.StudentProfile) error
	FindByID(id uint) (*model.StudentProfile, error)
	FindAll() ([]model.StudentProfile, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.StudentProfile) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.StudentProfile, error) {
	var student model.StudentProfile
	err := r.db.First(&student, id).Error
	return &student, err
}

func (r *studentRepository) FindAll() ([]model.StudentProfile, error) {
	var students []model.StudentProfile
	err := r.db.Order("student_code ASC").Find(&students).Error
	return students, err
}
