package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	CreateStudent(req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(id uint) (*dto.StudentResponse, error)
	GetAllStudents() ([]dto.StudentResponse, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	var student model.StudentProfile
	if err := copier.Copy(&student, &req); err != nil {
		return nil, fmt.Errorf("error preparing student record: %w", err)
	}
	student.IsActive = true

	if err := s.studentRepo.Create(&student); err != nil {
		log.Error().Err(err).Str("studentCode", req.StudentCode).Msg("CreateStudent: database error")
		return nil, fmt.Errorf("database error creating student: %w", err)
	}

	var resp dto.StudentResponse
	if err := copier.Copy(&resp, &student); err != nil {
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	return &resp, nil
}

func (s *studentService) GetStudent(id uint) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", id).Msg("GetStudent: not found")
		return nil, fmt.Errorf("student not found with ID %d: %w", id, err)
	}
	var resp dto.StudentResponse
	if err := copier.Copy(&resp, student); err != nil {
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	return &resp, nil
}

func (s *studentService) GetAllStudents() ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllStudents: repository error")
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	resp := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		var item dto.StudentResponse
		if err := copier.Copy(&item, &students[i]); err != nil {
			log.Error().Err(err).Uint("studentID", students[i].ID).Msg("GetAllStudents: copy error, skipping")
			continue
		}
		resp = append(resp, item)
	}
	return resp, nil
}
