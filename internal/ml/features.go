package ml

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lshigami/Polaris/internal/model"
	"github.com/lshigami/Polaris/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FeatureVector is the fixed ten-field numeric summary of a (student, course)
// pair. Every field is always set; missing source data becomes 0, never NaN,
// so the scaler downstream never sees a hole. Keeping this a struct rather
// than a map makes schema drift between training and inference a compile
// error.
type FeatureVector struct {
	YearOfStudy              float64 `json:"year_of_study"`
	CurrentGPA               float64 `json:"current_gpa"`
	CourseDifficulty         float64 `json:"course_difficulty"`
	CourseCredits            float64 `json:"course_credits"`
	AvgHistoricalPerformance float64 `json:"avg_historical_performance"`
	TotalAssessmentsTaken    float64 `json:"total_assessments_taken"`
	CurrentCourseAvg         float64 `json:"current_course_avg"`
	AssessmentsCompleted     float64 `json:"assessments_completed"`
	AttendanceRate           float64 `json:"attendance_rate"`
	DaysEnrolled             float64 `json:"days_enrolled"`
}

// NumFeatures is the width of the feature vector. Changing the schema
// invalidates persisted artifacts; there is no migration.
const NumFeatures = 10

var featureNames = []string{
	"year_of_study",
	"current_gpa",
	"course_difficulty",
	"course_credits",
	"avg_historical_performance",
	"total_assessments_taken",
	"current_course_avg",
	"assessments_completed",
	"attendance_rate",
	"days_enrolled",
}

// FeatureNames returns the canonical feature order used for both training
// and inference.
func FeatureNames() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return names
}

// Values returns the vector in canonical feature order.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.YearOfStudy,
		f.CurrentGPA,
		f.CourseDifficulty,
		f.CourseCredits,
		f.AvgHistoricalPerformance,
		f.TotalAssessmentsTaken,
		f.CurrentCourseAvg,
		f.AssessmentsCompleted,
		f.AttendanceRate,
		f.DaysEnrolled,
	}
}

// FeatureExtractor builds feature vectors from enrollment, grade and
// attendance history. It is read-only and has no side effects.
type FeatureExtractor struct {
	studentRepo    repository.StudentRepository
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	gradeRepo      repository.GradeRepository
	attendanceRepo repository.AttendanceRepository
}

func NewFeatureExtractor(
	studentRepo repository.StudentRepository,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	gradeRepo repository.GradeRepository,
	attendanceRepo repository.AttendanceRepository,
) *FeatureExtractor {
	return &FeatureExtractor{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		gradeRepo:      gradeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Extract builds the feature vector for a (student, course) pair. A missing
// student, course or enrollment row yields ErrExtractionFailed so one bad
// pair never aborts a batch run.
func (e *FeatureExtractor) Extract(studentID, courseID uint) (FeatureVector, error) {
	student, err := e.studentRepo.FindByID(studentID)
	if err != nil {
		return FeatureVector{}, extractionFailure("student", studentID, err)
	}
	course, err := e.courseRepo.FindByID(courseID)
	if err != nil {
		return FeatureVector{}, extractionFailure("course", courseID, err)
	}
	enrollment, err := e.enrollmentRepo.FindByStudentAndCourse(studentID, courseID)
	if err != nil {
		return FeatureVector{}, extractionFailure("enrollment", studentID, err)
	}

	var features FeatureVector

	if year, err := strconv.Atoi(student.YearOfStudy); err == nil {
		features.YearOfStudy = float64(year)
	}
	if student.GPA != nil {
		features.CurrentGPA = *student.GPA
	}
	features.CourseDifficulty = difficultyScore(course.DifficultyLevel)
	features.CourseCredits = float64(course.Credits)

	// Historical performance: every grade outside this course, published or
	// not. The current course is excluded so its own grades cannot leak in.
	historical, err := e.gradeRepo.FindHistoricalByStudent(studentID, courseID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Msg("FeatureExtractor: failed to load historical grades, defaulting to 0")
	} else if len(historical) > 0 {
		features.AvgHistoricalPerformance = meanPercentage(historical)
		features.TotalAssessmentsTaken = float64(len(historical))
	}

	// Current course performance: published grades only.
	current, err := e.gradeRepo.FindPublishedByStudentAndCourse(studentID, courseID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("FeatureExtractor: failed to load current course grades, defaulting to 0")
	} else if len(current) > 0 {
		features.CurrentCourseAvg = meanPercentage(current)
		features.AssessmentsCompleted = float64(len(current))
	}

	// Attendance rate counts only "present" as attended. The attendance
	// summary feature elsewhere also counts "late"; that divergence is kept
	// on purpose since changing it would shift model behavior.
	records, err := e.attendanceRepo.FindByStudentAndCourse(studentID, courseID)
	if err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Uint("courseID", courseID).Msg("FeatureExtractor: failed to load attendance records, defaulting to 0")
	} else if len(records) > 0 {
		present := 0
		for _, rec := range records {
			if rec.Status == model.AttendanceStatusPresent {
				present++
			}
		}
		features.AttendanceRate = float64(present) / float64(len(records)) * 100
	}

	days := time.Since(enrollment.EnrollmentDate).Hours() / 24
	if days > 0 {
		features.DaysEnrolled = float64(int(days))
	}

	return features, nil
}

func extractionFailure(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Str("entity", entity).Uint("id", id).Msg("FeatureExtractor: required row missing")
	} else {
		log.Error().Err(err).Str("entity", entity).Uint("id", id).Msg("FeatureExtractor: lookup failed")
	}
	return fmt.Errorf("%w: %s %d: %v", ErrExtractionFailed, entity, id, err)
}

// meanPercentage averages grade percentages. Grades whose assessment has a
// non-positive total contribute 0 instead of dividing by zero.
func meanPercentage(grades []model.Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := 0.0
	for _, g := range grades {
		sum += g.Percentage()
	}
	return sum / float64(len(grades))
}

func difficultyScore(level string) float64 {
	switch level {
	case model.DifficultyBeginner:
		return 1
	case model.DifficultyIntermediate:
		return 2
	case model.DifficultyAdvanced:
		return 3
	default:
		return 2
	}
}
