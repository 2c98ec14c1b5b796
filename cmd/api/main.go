package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Polaris/config"
	"github.com/lshigami/Polaris/database"
	_ "github.com/lshigami/Polaris/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Polaris/internal/controller/admin"
	userctrl "github.com/lshigami/Polaris/internal/controller/user"
	"github.com/lshigami/Polaris/internal/logger"
	"github.com/lshigami/Polaris/internal/ml"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/lshigami/Polaris/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Student Performance API
// @version 1.0
// @description Student information platform with course management, grading, attendance tracking and ML-based performance prediction.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewStudentRepository,
			repository.NewCourseRepository,
			repository.NewEnrollmentRepository,
			repository.NewAssessmentRepository,
			repository.NewGradeRepository,
			repository.NewAttendanceRepository,
			repository.NewPredictionRepository,
		),

		// ML Pipeline Components
		fx.Provide(
			ml.NewFeatureExtractor,
			func(cfg *config.Config) *ml.ArtifactStore {
				return ml.NewArtifactStore(cfg.ML.ModelDir)
			},
			func(extractor *ml.FeatureExtractor, enrollmentRepo repository.EnrollmentRepository, store *ml.ArtifactStore, cfg *config.Config) *ml.Trainer {
				return ml.NewTrainer(extractor, enrollmentRepo, store, cfg.ML.VersionPrefix)
			},
			ml.NewPredictor,
		),

		// Services Layer
		fx.Provide(
			service.NewStudentService,
			service.NewCourseService,
			service.NewEnrollmentService,
			service.NewGradeService,
			service.NewAttendanceService,
			func(predictor *ml.Predictor, predictionRepo repository.PredictionRepository, enrollmentRepo repository.EnrollmentRepository) service.PredictionService {
				return service.NewPredictionService(predictor, predictionRepo, enrollmentRepo)
			},
			func(trainer *ml.Trainer, predictor *ml.Predictor) service.TrainingService {
				return service.NewTrainingService(trainer, predictor)
			},
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminController,
			userctrl.NewCourseController,
			userctrl.NewEnrollmentController,
			userctrl.NewStudentController,
			userctrl.NewPredictionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.AdminController,
	courseCtrl *userctrl.CourseController,
	enrollmentCtrl *userctrl.EnrollmentController,
	studentCtrl *userctrl.StudentController,
	predictionCtrl *userctrl.PredictionController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/students", adminCtrl.CreateStudent)
		adminAPIGroup.GET("/students", adminCtrl.GetAllStudents)
		adminAPIGroup.POST("/courses", adminCtrl.CreateCourse)
		adminAPIGroup.POST("/courses/:course_id/assessments", adminCtrl.CreateAssessment)
		adminAPIGroup.POST("/grades", adminCtrl.RecordGrade)
		adminAPIGroup.POST("/attendance", adminCtrl.MarkAttendance)
		adminAPIGroup.POST("/predictions/refresh", adminCtrl.RefreshPredictions)
		adminAPIGroup.GET("/predictions/at-risk", adminCtrl.GetAtRiskPredictions)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/courses", courseCtrl.GetAllCourses)
		userAPIGroup.GET("/courses/:course_id", courseCtrl.GetCourseDetails)
		userAPIGroup.POST("/courses/:course_id/enroll", enrollmentCtrl.Enroll)

		userAPIGroup.POST("/enrollments/:enrollment_id/complete", enrollmentCtrl.Complete)
		userAPIGroup.POST("/enrollments/:enrollment_id/drop", enrollmentCtrl.Drop)

		userAPIGroup.GET("/students/:student_id", studentCtrl.GetStudent)
		userAPIGroup.GET("/students/:student_id/enrollments", enrollmentCtrl.GetStudentEnrollments)
		userAPIGroup.GET("/students/:student_id/grades", studentCtrl.GetStudentGrades)
		userAPIGroup.GET("/students/:student_id/performance", studentCtrl.GetPerformanceSummary)
		userAPIGroup.GET("/students/:student_id/predictions", predictionCtrl.GetStudentPredictions)
		userAPIGroup.GET("/students/:student_id/courses/:course_id/attendance", studentCtrl.GetAttendanceSummary)
		userAPIGroup.POST("/students/:student_id/courses/:course_id/prediction", predictionCtrl.GeneratePrediction)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Student Performance API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.StudentProfile{},
		&model.Course{},
		&model.Enrollment{},
		&model.Assessment{},
		&model.Grade{},
		&model.AttendanceRecord{},
		&model.PerformancePrediction{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
