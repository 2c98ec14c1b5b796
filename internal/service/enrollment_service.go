package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	Enroll(studentID, courseID uint) (*dto.EnrollmentResponse, error)
	Complete(enrollmentID uint, finalGrade float64, failed bool) (*dto.EnrollmentResponse, error)
	Drop(enrollmentID uint) (*dto.EnrollmentResponse, error)
	GetStudentEnrollments(studentID uint) ([]dto.EnrollmentResponse, error)
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	studentRepo    repository.StudentRepository
	courseRepo     repository.CourseRepository
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	studentRepo repository.StudentRepository,
	courseRepo repository.CourseRepository,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *enrollmentService) Enroll(studentID, courseID uint) (*dto.EnrollmentResponse, error) {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		return nil, fmt.Errorf("student not found with ID %d: %w", studentID, err)
	}
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}
	if !course.IsActive {
		return nil, fmt.Errorf("course %s is not open for enrollment", course.Code)
	}

	if _, err := s.enrollmentRepo.FindByStudentAndCourse(studentID, courseID); err == nil {
		return nil, fmt.Errorf("student %d is already enrolled in course %s", studentID, course.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing enrollment: %w", err)
	}

	enrolled, err := s.enrollmentRepo.CountActiveByCourse(courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course capacity: %w", err)
	}
	if enrolled >= int64(course.MaxStudents) {
		return nil, fmt.Errorf("course %s is full (%d/%d students)", course.Code, enrolled, course.MaxStudents)
	}

	enrollment := model.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: time.Now(),
		Status:         model.EnrollmentStatusEnrolled,
		IsActive:       true,
	}
	if err := s.enrollmentRepo.Create(&enrollment); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("Enroll: database error")
		return nil, fmt.Errorf("database error creating enrollment: %w", err)
	}

	return s.toResponse(&enrollment, course), nil
}

// Complete closes an enrollment with its final grade, making it usable as a
// training label.
func (s *enrollmentService) Complete(enrollmentID uint, finalGrade float64, failed bool) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("enrollment not found with ID %d: %w", enrollmentID, err)
	}
	if enrollment.Status != model.EnrollmentStatusEnrolled {
		return nil, fmt.Errorf("enrollment %d is %s, only enrolled enrollments can be completed", enrollmentID, enrollment.Status)
	}

	now := time.Now()
	enrollment.FinalGrade = &finalGrade
	enrollment.CompletionDate = &now
	enrollment.IsActive = false
	if failed {
		enrollment.Status = model.EnrollmentStatusFailed
	} else {
		enrollment.Status = model.EnrollmentStatusCompleted
	}

	if err := s.enrollmentRepo.Update(enrollment); err != nil {
		log.Error().Err(err).Uint("enrollmentID", enrollmentID).Msg("Complete: database error")
		return nil, fmt.Errorf("database error completing enrollment: %w", err)
	}
	return s.toResponse(enrollment, nil), nil
}

func (s *enrollmentService) Drop(enrollmentID uint) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("enrollment not found with ID %d: %w", enrollmentID, err)
	}
	if enrollment.Status != model.EnrollmentStatusEnrolled {
		return nil, fmt.Errorf("enrollment %d is %s and cannot be dropped", enrollmentID, enrollment.Status)
	}

	enrollment.Status = model.EnrollmentStatusDropped
	enrollment.IsActive = false
	if err := s.enrollmentRepo.Update(enrollment); err != nil {
		log.Error().Err(err).Uint("enrollmentID", enrollmentID).Msg("Drop: database error")
		return nil, fmt.Errorf("database error dropping enrollment: %w", err)
	}
	return s.toResponse(enrollment, nil), nil
}

func (s *enrollmentService) GetStudentEnrollments(studentID uint) ([]dto.EnrollmentResponse, error) {
	enrollments, err := s.enrollmentRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentEnrollments: repository error")
		return nil, fmt.Errorf("error fetching enrollments for student %d: %w", studentID, err)
	}

	resp := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		item := s.toResponse(&enrollments[i], &enrollments[i].Course)
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *enrollmentService) toResponse(enrollment *model.Enrollment, course *model.Course) *dto.EnrollmentResponse {
	var resp dto.EnrollmentResponse
	if err := copier.Copy(&resp, enrollment); err != nil {
		log.Error().Err(err).Uint("enrollmentID", enrollment.ID).Msg("toResponse: copy error")
	}
	if course != nil && course.ID != 0 {
		resp.CourseCode = course.Code
		resp.CourseName = course.Name
	}
	return &resp
}
