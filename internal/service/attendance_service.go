package service

import (
	"fmt"

	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
)

type AttendanceService interface {
	MarkAttendance(req dto.MarkAttendanceRequest) error
	// GetCourseSummary aggregates a student's attendance in one course.
	// Its percentage counts late arrivals as attended, unlike the prediction
	// pipeline's attendance feature which counts "present" only. The two
	// definitions intentionally stay apart; aligning them would silently
	// change model behavior.
	GetCourseSummary(studentID, courseID uint) (*dto.AttendanceSummaryDTO, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
	courseRepo     repository.CourseRepository
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	studentRepo repository.StudentRepository,
	courseRepo repository.CourseRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *attendanceService) MarkAttendance(req dto.MarkAttendanceRequest) error {
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		return fmt.Errorf("student not found with ID %d: %w", req.StudentID, err)
	}
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		return fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}

	record := model.AttendanceRecord{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      req.Date,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if err := s.attendanceRepo.Create(&record); err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Uint("courseID", req.CourseID).Msg("MarkAttendance: database error")
		return fmt.Errorf("database error recording attendance: %w", err)
	}
	return nil
}

func (s *attendanceService) GetCourseSummary(studentID, courseID uint) (*dto.AttendanceSummaryDTO, error) {
	records, err := s.attendanceRepo.FindByStudentAndCourse(studentID, courseID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("GetCourseSummary: repository error")
		return nil, fmt.Errorf("error fetching attendance for student %d in course %d: %w", studentID, courseID, err)
	}

	summary := dto.AttendanceSummaryDTO{
		StudentID:    studentID,
		CourseID:     courseID,
		TotalClasses: len(records),
	}
	for _, record := range records {
		switch record.Status {
		case model.AttendanceStatusPresent:
			summary.ClassesAttended++
		case model.AttendanceStatusLate:
			summary.ClassesLate++
		case model.AttendanceStatusAbsent:
			summary.ClassesAbsent++
		case model.AttendanceStatusExcused:
			summary.ClassesExcused++
		}
	}
	if summary.TotalClasses > 0 {
		effective := summary.ClassesAttended + summary.ClassesLate
		summary.AttendancePercentage = float64(effective) / float64(summary.TotalClasses) * 100
	}
	return &summary, nil
}
