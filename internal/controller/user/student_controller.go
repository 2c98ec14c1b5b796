package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService    service.StudentService
	gradeService      service.GradeService
	attendanceService service.AttendanceService
}

func NewStudentController(
	studentService service.StudentService,
	gradeService service.GradeService,
	attendanceService service.AttendanceService,
) *StudentController {
	return &StudentController{
		studentService:    studentService,
		gradeService:      gradeService,
		attendanceService: attendanceService,
	}
}

// GetStudent godoc
// @Summary Get a student profile
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	student, err := c.studentService.GetStudent(studentID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Student not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// GetStudentGrades godoc
// @Summary Get a student's published grades
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} dto.GradeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{student_id}/grades [get]
func (c *StudentController) GetStudentGrades(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	grades, err := c.gradeService.GetStudentGrades(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentGrades: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch grades", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, grades)
}

// GetPerformanceSummary godoc
// @Summary Get a student's performance dashboard
// @Description Aggregates average grade, recent grades, active courses and at-risk course count.
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.PerformanceSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{student_id}/performance [get]
func (c *StudentController) GetPerformanceSummary(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	summary, err := c.gradeService.GetPerformanceSummary(studentID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Msg("GetPerformanceSummary: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Failed to build performance summary", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetAttendanceSummary godoc
// @Summary Get a student's attendance summary for a course
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.AttendanceSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{student_id}/courses/{course_id}/attendance [get]
func (c *StudentController) GetAttendanceSummary(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	summary, err := c.attendanceService.GetCourseSummary(studentID, courseID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("GetAttendanceSummary: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch attendance summary", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
