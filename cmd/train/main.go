package main

import (
	"fmt"
	"os"

	"github.com/lshigami/Polaris/config"
	"github.com/lshigami/Polaris/database"
	"github.com/lshigami/Polaris/internal/logger"
	"github.com/lshigami/Polaris/internal/ml"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
)

// Offline training entry point. Reads labeled enrollments from the database,
// fits the model and writes the artifact pair the API server loads lazily.
func main() {
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

	extractor := ml.NewFeatureExtractor(studentRepo, courseRepo, enrollmentRepo, gradeRepo, attendanceRepo)
	store := ml.NewArtifactStore(cfg.ML.ModelDir)
	trainer := ml.NewTrainer(extractor, enrollmentRepo, store, cfg.ML.VersionPrefix)

	report, err := trainer.Train()
	if err != nil {
		log.Fatal().Err(err).Msg("Training failed")
	}

	if report.Status == ml.TrainingStatusInsufficientData {
		fmt.Printf("Not enough training data: %d labeled enrollments (need %d). Existing artifacts untouched.\n",
			report.Samples, ml.MinTrainingSamples)
		os.Exit(1)
	}

	fmt.Printf("Model trained: version=%s samples=%d (train=%d test=%d) mse=%.4f r2=%.4f skipped=%d\n",
		report.ModelVersion, report.Samples, report.TrainSamples, report.TestSamples,
		report.MSE, report.R2, report.Skipped)
}
