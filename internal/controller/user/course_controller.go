package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(courseService service.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses godoc
// @Summary Get all courses
// @Description Lists every course with its enrolled count and available slots.
// @Tags Courses
// @Produce json
// @Success 200 {array} dto.CourseSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses()
	if err != nil {
		log.Error().Err(err).Msg("GetAllCourses: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch courses", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseDetails godoc
// @Summary Get course details
// @Description Returns one course with its assessments.
// @Tags Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourseDetails(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	course, err := c.courseService.GetCourseDetails(courseID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Course not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, course)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
