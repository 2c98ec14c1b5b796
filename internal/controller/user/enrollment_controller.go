package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
)

type EnrollmentController struct {
	enrollmentService service.EnrollmentService
}

func NewEnrollmentController(enrollmentService service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll godoc
// @Summary Enroll a student in a course
// @Description Creates an active enrollment when the course is open and has free capacity.
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param enroll_data body dto.EnrollRequest true "Student to enroll"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses/{course_id}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Enroll: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.enrollmentService.Enroll(req.StudentID, courseID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", req.StudentID).Uint("courseID", courseID).Msg("Enroll: rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to enroll", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Complete godoc
// @Summary Complete an enrollment
// @Description Closes an active enrollment with its final grade. Completed enrollments feed the training set.
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Param completion_data body dto.CompleteEnrollmentRequest true "Final grade"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /enrollments/{enrollment_id}/complete [post]
func (c *EnrollmentController) Complete(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollment_id")
	if !ok {
		return
	}
	var req dto.CompleteEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Complete: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.enrollmentService.Complete(enrollmentID, req.FinalGrade, req.Failed)
	if err != nil {
		log.Warn().Err(err).Uint("enrollmentID", enrollmentID).Msg("Complete: rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to complete enrollment", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Drop godoc
// @Summary Drop an enrollment
// @Tags Enrollments
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /enrollments/{enrollment_id}/drop [post]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollment_id")
	if !ok {
		return
	}
	resp, err := c.enrollmentService.Drop(enrollmentID)
	if err != nil {
		log.Warn().Err(err).Uint("enrollmentID", enrollmentID).Msg("Drop: rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to drop enrollment", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStudentEnrollments godoc
// @Summary Get a student's enrollments
// @Tags Enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} dto.EnrollmentResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{student_id}/enrollments [get]
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	enrollments, err := c.enrollmentService.GetStudentEnrollments(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentEnrollments: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch enrollments", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, enrollments)
}
