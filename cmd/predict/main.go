package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lshigami/Polaris/config"
	"github.com/lshigami/Polaris/database"
	"github.com/lshigami/Polaris/internal/logger"
	"github.com/lshigami/Polaris/internal/ml"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
)

// Offline prediction entry point. Refreshes stored predictions without going
// through the HTTP API.
func main() {
	all := flag.Bool("all", false, "refresh predictions for every active enrollment")
	atRisk := flag.Bool("at-risk", false, "list students currently flagged at risk")
	studentID := flag.Uint("student", 0, "student ID for a single prediction")
	courseID := flag.Uint("course", 0, "course ID for a single prediction")
	flag.Parse()

	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	extractor := ml.NewFeatureExtractor(studentRepo, courseRepo, enrollmentRepo, gradeRepo, attendanceRepo)
	store := ml.NewArtifactStore(cfg.ML.ModelDir)
	predictor := ml.NewPredictor(extractor, store)
	predictions := service.NewPredictionService(predictor, predictionRepo, enrollmentRepo)

	switch {
	case *all:
		summary, err := predictions.UpdateAllPredictions()
		if err != nil {
			log.Fatal().Err(err).Msg("Batch prediction failed")
		}
		fmt.Printf("Refreshed predictions: total=%d updated=%d skipped=%d\n", summary.Total, summary.Updated, summary.Skipped)

	case *atRisk:
		list, err := predictions.GetAtRiskPredictions()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to fetch at-risk predictions")
		}
		if len(list) == 0 {
			fmt.Println("No students currently flagged at risk.")
			return
		}
		for _, p := range list {
			fmt.Printf("student=%d course=%d predicted=%.2f factors=[%s]\n",
				p.StudentID, p.CourseID, p.PredictedGrade, strings.Join(p.RiskFactors, "; "))
		}

	case *studentID != 0 && *courseID != 0:
		resp, err := predictions.PredictFor(*studentID, *courseID)
		if err != nil {
			if errors.Is(err, service.ErrPredictionUnavailable) {
				fmt.Printf("Could not generate prediction: %v\n", err)
				os.Exit(1)
			}
			log.Fatal().Err(err).Msg("Prediction failed")
		}
		fmt.Printf("student=%d course=%d predicted=%.2f confidence=%.4f at_risk=%v version=%s\n",
			resp.StudentID, resp.CourseID, resp.PredictedGrade, resp.ConfidenceScore, resp.AtRisk, resp.ModelVersion)
		for _, rec := range resp.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}
