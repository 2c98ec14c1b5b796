package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	studentService    service.StudentService
	courseService     service.CourseService
	gradeService      service.GradeService
	attendanceService service.AttendanceService
	predictionService service.PredictionService
}

func NewAdminController(
	studentService service.StudentService,
	courseService service.CourseService,
	gradeService service.GradeService,
	attendanceService service.AttendanceService,
	predictionService service.PredictionService,
) *AdminController {
	return &AdminController{
		studentService:    studentService,
		courseService:     courseService,
		gradeService:      gradeService,
		attendanceService: attendanceService,
		predictionService: predictionService,
	}
}

// CreateStudent godoc
// @Summary (Admin) Register a new student
// @Tags Admin
// @Accept json
// @Produce json
// @Param student_data body dto.CreateStudentRequest true "Student profile data"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateStudent: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.studentService.CreateStudent(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateStudent: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create student", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllStudents godoc
// @Summary (Admin) List all students
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.StudentResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/students [get]
func (c *AdminController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllStudents: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch students", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CreateCourse godoc
// @Summary (Admin) Create a new course
// @Tags Admin
// @Accept json
// @Produce json
// @Param course_data body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateCourse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.courseService.CreateCourse(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateCourse: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create course", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateAssessment godoc
// @Summary (Admin) Add an assessment to a course
// @Tags Admin
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param assessment_data body dto.CreateAssessmentRequest true "Assessment data"
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/courses/{course_id}/assessments [post]
func (c *AdminController) CreateAssessment(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.courseService.CreateAssessment(courseID, req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Admin CreateAssessment: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create assessment", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// RecordGrade godoc
// @Summary (Admin) Record a grade for a student's assessment
// @Tags Admin
// @Accept json
// @Produce json
// @Param grade_data body dto.RecordGradeRequest true "Grade data"
// @Success 201 {object} dto.GradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/grades [post]
func (c *AdminController) RecordGrade(ctx *gin.Context) {
	var req dto.RecordGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin RecordGrade: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.gradeService.RecordGrade(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin RecordGrade: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to record grade", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// MarkAttendance godoc
// @Summary (Admin) Mark attendance for a student
// @Tags Admin
// @Accept json
// @Produce json
// @Param attendance_data body dto.MarkAttendanceRequest true "Attendance data"
// @Success 204 "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/attendance [post]
func (c *AdminController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin MarkAttendance: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.attendanceService.MarkAttendance(req); err != nil {
		log.Error().Err(err).Msg("Admin MarkAttendance: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to record attendance", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RefreshPredictions godoc
// @Summary (Admin) Refresh predictions for all active enrollments
// @Description Runs the prediction pipeline for every active enrollment. Pairs that cannot be predicted are skipped and counted.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.BatchPredictionSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/predictions/refresh [post]
func (c *AdminController) RefreshPredictions(ctx *gin.Context) {
	summary, err := c.predictionService.UpdateAllPredictions()
	if err != nil {
		log.Error().Err(err).Msg("Admin RefreshPredictions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to refresh predictions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetAtRiskPredictions godoc
// @Summary (Admin) List students currently flagged at risk
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.PredictionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/predictions/at-risk [get]
func (c *AdminController) GetAtRiskPredictions(ctx *gin.Context) {
	predictions, err := c.predictionService.GetAtRiskPredictions()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAtRiskPredictions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch at-risk predictions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, predictions)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
