package service

import (
	"fmt"

	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
)

type GradeService interface {
	RecordGrade(req dto.RecordGradeRequest) (*dto.GradeResponse, error)
	GetStudentGrades(studentID uint) ([]dto.GradeResponse, error)
	GetPerformanceSummary(studentID uint) (*dto.PerformanceSummaryDTO, error)
}

type gradeService struct {
	gradeRepo      repository.GradeRepository
	assessmentRepo repository.AssessmentRepository
	studentRepo    repository.StudentRepository
	enrollmentRepo repository.EnrollmentRepository
	predictionRepo repository.PredictionRepository
}

func NewGradeService(
	gradeRepo repository.GradeRepository,
	assessmentRepo repository.AssessmentRepository,
	studentRepo repository.StudentRepository,
	enrollmentRepo repository.EnrollmentRepository,
	predictionRepo repository.PredictionRepository,
) GradeService {
	return &gradeService{
		gradeRepo:      gradeRepo,
		assessmentRepo: assessmentRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		predictionRepo: predictionRepo,
	}
}

func (s *gradeService) RecordGrade(req dto.RecordGradeRequest) (*dto.GradeResponse, error) {
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		return nil, fmt.Errorf("student not found with ID %d: %w", req.StudentID, err)
	}
	assessment, err := s.assessmentRepo.FindByID(req.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("assessment not found with ID %d: %w", req.AssessmentID, err)
	}
	if req.MarksObtained > assessment.TotalMarks {
		return nil, fmt.Errorf("marks obtained %.2f exceed assessment total %.2f", req.MarksObtained, assessment.TotalMarks)
	}

	grade := model.Grade{
		StudentID:     req.StudentID,
		AssessmentID:  req.AssessmentID,
		MarksObtained: req.MarksObtained,
		Feedback:      req.Feedback,
		IsPublished:   req.IsPublished,
	}
	if err := s.gradeRepo.Create(&grade); err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Uint("assessmentID", req.AssessmentID).Msg("RecordGrade: database error")
		return nil, fmt.Errorf("database error recording grade: %w", err)
	}

	grade.Assessment = *assessment
	return s.toResponse(&grade), nil
}

func (s *gradeService) GetStudentGrades(studentID uint) ([]dto.GradeResponse, error) {
	grades, err := s.gradeRepo.FindPublishedByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentGrades: repository error")
		return nil, fmt.Errorf("error fetching grades for student %d: %w", studentID, err)
	}

	resp := make([]dto.GradeResponse, 0, len(grades))
	for i := range grades {
		resp = append(resp, *s.toResponse(&grades[i]))
	}
	return resp, nil
}

// GetPerformanceSummary aggregates a student's published grades, enrollment
// count and at-risk prediction count into one dashboard payload.
func (s *gradeService) GetPerformanceSummary(studentID uint) (*dto.PerformanceSummaryDTO, error) {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		return nil, fmt.Errorf("student not found with ID %d: %w", studentID, err)
	}

	grades, err := s.gradeRepo.FindPublishedByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching grades for student %d: %w", studentID, err)
	}

	summary := dto.PerformanceSummaryDTO{CompletedAssessments: len(grades)}
	if len(grades) > 0 {
		total := 0.0
		for i := range grades {
			total += grades[i].Percentage()
		}
		summary.AverageGrade = total / float64(len(grades))
	}

	const recentLimit = 10
	for i := range grades {
		if i >= recentLimit {
			break
		}
		summary.RecentGrades = append(summary.RecentGrades, *s.toResponse(&grades[i]))
	}

	enrollments, err := s.enrollmentRepo.FindByStudent(studentID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Msg("GetPerformanceSummary: failed to count enrollments")
	} else {
		for i := range enrollments {
			if enrollments[i].IsActive {
				summary.TotalCourses++
			}
		}
	}

	atRisk, err := s.predictionRepo.CountAtRiskByStudent(studentID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Msg("GetPerformanceSummary: failed to count at-risk predictions")
	} else {
		summary.AtRiskCourses = int(atRisk)
	}

	return &summary, nil
}

func (s *gradeService) toResponse(grade *model.Grade) *dto.GradeResponse {
	resp := dto.GradeResponse{
		ID:            grade.ID,
		StudentID:     grade.StudentID,
		AssessmentID:  grade.AssessmentID,
		Assessment:    grade.Assessment.Title,
		MarksObtained: grade.MarksObtained,
		TotalMarks:    grade.Assessment.TotalMarks,
		Percentage:    grade.Percentage(),
		LetterGrade:   LetterGrade(grade.Percentage()),
		Feedback:      grade.Feedback,
		GradedAt:      grade.GradedAt,
		IsPublished:   grade.IsPublished,
	}
	if grade.Assessment.Course.ID != 0 {
		resp.Course = grade.Assessment.Course.Name
	}
	return &resp
}

// LetterGrade converts a percentage to its letter grade.
func LetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 85:
		return "A"
	case percentage >= 80:
		return "A-"
	case percentage >= 75:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 65:
		return "B-"
	case percentage >= 60:
		return "C+"
	case percentage >= 55:
		return "C"
	case percentage >= 50:
		return "C-"
	default:
		return "F"
	}
}
