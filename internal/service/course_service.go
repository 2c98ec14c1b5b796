package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
)

type CourseService interface {
	CreateCourse(req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetAllCourses() ([]dto.CourseSummaryDTO, error)
	GetCourseDetails(courseID uint) (*dto.CourseResponse, error)
	CreateAssessment(courseID uint, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
}

type courseService struct {
	courseRepo     repository.CourseRepository
	assessmentRepo repository.AssessmentRepository
}

func NewCourseService(courseRepo repository.CourseRepository, assessmentRepo repository.AssessmentRepository) CourseService {
	return &courseService{courseRepo: courseRepo, assessmentRepo: assessmentRepo}
}

func (s *courseService) CreateCourse(req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("course end date %s is before start date %s", req.EndDate.Format("2006-01-02"), req.StartDate.Format("2006-01-02"))
	}

	var course model.Course
	if err := copier.Copy(&course, &req); err != nil {
		return nil, fmt.Errorf("error preparing course record: %w", err)
	}
	if course.MaxStudents <= 0 {
		course.MaxStudents = 30
	}
	course.IsActive = true

	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("code", req.Code).Msg("CreateCourse: database error")
		return nil, fmt.Errorf("database error creating course: %w", err)
	}

	var resp dto.CourseResponse
	if err := copier.Copy(&resp, &course); err != nil {
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	return &resp, nil
}

func (s *courseService) GetAllCourses() ([]dto.CourseSummaryDTO, error) {
	coursesWithCount, err := s.courseRepo.FindAllWithEnrolledCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllCourses: repository error")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	dtos := make([]dto.CourseSummaryDTO, 0, len(coursesWithCount))
	for _, cwc := range coursesWithCount {
		dtos = append(dtos, dto.CourseSummaryDTO{
			ID:              cwc.Course.ID,
			Code:            cwc.Course.Code,
			Name:            cwc.Course.Name,
			Credits:         cwc.Course.Credits,
			DifficultyLevel: cwc.Course.DifficultyLevel,
			InstructorName:  cwc.Course.InstructorName,
			MaxStudents:     cwc.Course.MaxStudents,
			EnrolledCount:   cwc.EnrolledCount,
			AvailableSlots:  cwc.Course.MaxStudents - cwc.EnrolledCount,
		})
	}
	return dtos, nil
}

func (s *courseService) GetCourseDetails(courseID uint) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.FindByIDWithAssessments(courseID)
	if err != nil {
		log.Warn().Err(err).Uint("courseID", courseID).Msg("GetCourseDetails: not found")
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}

	var resp dto.CourseResponse
	if err := copier.Copy(&resp, course); err != nil {
		return nil, fmt.Errorf("error preparing course details response: %w", err)
	}
	return &resp, nil
}

func (s *courseService) CreateAssessment(courseID uint, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}
	if req.TotalMarks <= 0 {
		return nil, fmt.Errorf("assessment total marks must be positive, got %.2f", req.TotalMarks)
	}

	var assessment model.Assessment
	if err := copier.Copy(&assessment, &req); err != nil {
		return nil, fmt.Errorf("error preparing assessment record: %w", err)
	}
	assessment.CourseID = courseID

	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("CreateAssessment: database error")
		return nil, fmt.Errorf("database error creating assessment: %w", err)
	}

	var resp dto.AssessmentResponse
	if err := copier.Copy(&resp, &assessment); err != nil {
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	return &resp, nil
}
