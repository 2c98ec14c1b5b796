package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
)

type PredictionController struct {
	predictionService service.PredictionService
}

func NewPredictionController(predictionService service.PredictionService) *PredictionController {
	return &PredictionController{predictionService: predictionService}
}

// GeneratePrediction godoc
// @Summary Generate a performance prediction
// @Description Runs the model for one student/course pair and stores the result. Returns 422 when no prediction can be produced, without touching any previously stored prediction.
// @Tags Predictions
// @Produce json
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{student_id}/courses/{course_id}/prediction [post]
func (c *PredictionController) GeneratePrediction(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}

	prediction, err := c.predictionService.PredictFor(studentID, courseID)
	if err != nil {
		if errors.Is(err, service.ErrPredictionUnavailable) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: "Could not generate prediction", Details: []string{err.Error()}})
			return
		}
		log.Error().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("GeneratePrediction: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate prediction", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, prediction)
}

// GetStudentPredictions godoc
// @Summary Get a student's stored predictions
// @Tags Predictions
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} dto.PredictionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{student_id}/predictions [get]
func (c *PredictionController) GetStudentPredictions(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	predictions, err := c.predictionService.GetStudentPredictions(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentPredictions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch predictions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, predictions)
}
