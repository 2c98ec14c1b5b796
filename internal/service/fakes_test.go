package service

import (
	"github.com/lshigami/Polaris/internal/ml"
	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

// In-memory fakes shared by the service tests.

type fakeStudentRepo struct {
	students map[uint]model.StudentProfile
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uint]model.StudentProfile)}
}

func (f *fakeStudentRepo) Create(student *model.StudentProfile) error {
	if student.ID == 0 {
		student.ID = uint(len(f.students) + 1)
	}
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) FindByID(id uint) (*model.StudentProfile, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &student, nil
}

func (f *fakeStudentRepo) FindAll() ([]model.StudentProfile, error) {
	out := make([]model.StudentProfile, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

type fakeCourseRepo struct {
	courses map[uint]model.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uint]model.Course)}
}

func (f *fakeCourseRepo) Create(course *model.Course) error {
	if course.ID == 0 {
		course.ID = uint(len(f.courses) + 1)
	}
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &course, nil
}

func (f *fakeCourseRepo) FindByIDWithAssessments(id uint) (*model.Course, error) {
	return f.FindByID(id)
}

func (f *fakeCourseRepo) FindAllWithEnrolledCount() ([]struct {
	model.Course
	EnrolledCount int
}, error) {
	out := make([]struct {
		model.Course
		EnrolledCount int
	}, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, struct {
			model.Course
			EnrolledCount int
		}{Course: c})
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	enrollments []model.Enrollment
}

func (f *fakeEnrollmentRepo) Create(enrollment *model.Enrollment) error {
	enrollment.ID = uint(len(f.enrollments) + 1)
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeEnrollmentRepo) Update(enrollment *model.Enrollment) error {
	for i := range f.enrollments {
		if f.enrollments[i].ID == enrollment.ID {
			f.enrollments[i] = *enrollment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEnrollmentRepo) FindByID(id uint) (*model.Enrollment, error) {
	for i := range f.enrollments {
		if f.enrollments[i].ID == id {
			e := f.enrollments[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEnrollmentRepo) FindByStudentAndCourse(studentID, courseID uint) (*model.Enrollment, error) {
	for i := range f.enrollments {
		if f.enrollments[i].StudentID == studentID && f.enrollments[i].CourseID == courseID {
			e := f.enrollments[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEnrollmentRepo) FindByStudent(studentID uint) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) FindCompletedWithFinalGrade() ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if (e.Status == model.EnrollmentStatusCompleted || e.Status == model.EnrollmentStatusFailed) && e.FinalGrade != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) FindActiveEnrolled() ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.IsActive && e.Status == model.EnrollmentStatusEnrolled {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) CountActiveByCourse(courseID uint) (int64, error) {
	var n int64
	for _, e := range f.enrollments {
		if e.CourseID == courseID && e.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeAttendanceRepo struct {
	records []model.AttendanceRecord
}

func (f *fakeAttendanceRepo) Create(record *model.AttendanceRecord) error {
	record.ID = uint(len(f.records) + 1)
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAttendanceRepo) FindByStudentAndCourse(studentID, courseID uint) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, r := range f.records {
		if r.StudentID == studentID && r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakePredictionRepo struct {
	predictions map[[2]uint]model.PerformancePrediction
}

func newFakePredictionRepo() *fakePredictionRepo {
	return &fakePredictionRepo{predictions: make(map[[2]uint]model.PerformancePrediction)}
}

func (f *fakePredictionRepo) Upsert(prediction *model.PerformancePrediction) error {
	key := [2]uint{prediction.StudentID, prediction.CourseID}
	if existing, ok := f.predictions[key]; ok {
		prediction.ID = existing.ID
	} else {
		prediction.ID = uint(len(f.predictions) + 1)
	}
	f.predictions[key] = *prediction
	return nil
}

func (f *fakePredictionRepo) FindByStudentAndCourse(studentID, courseID uint) (*model.PerformancePrediction, error) {
	p, ok := f.predictions[[2]uint{studentID, courseID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakePredictionRepo) FindByStudent(studentID uint) ([]model.PerformancePrediction, error) {
	var out []model.PerformancePrediction
	for _, p := range f.predictions {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePredictionRepo) FindAtRisk() ([]model.PerformancePrediction, error) {
	var out []model.PerformancePrediction
	for _, p := range f.predictions {
		if p.AtRisk {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePredictionRepo) CountAtRiskByStudent(studentID uint) (int64, error) {
	var n int64
	for _, p := range f.predictions {
		if p.StudentID == studentID && p.AtRisk {
			n++
		}
	}
	return n, nil
}

// fakePredictor stands in for the ML predictor. Behavior per pair is set via
// results and errs.
type fakePredictor struct {
	results  map[[2]uint]*ml.PredictionResult
	errs     map[[2]uint]error
	reloaded int
}

func newFakePredictor() *fakePredictor {
	return &fakePredictor{
		results: make(map[[2]uint]*ml.PredictionResult),
		errs:    make(map[[2]uint]error),
	}
}

func (f *fakePredictor) Predict(studentID, courseID uint) (*ml.PredictionResult, error) {
	key := [2]uint{studentID, courseID}
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if result, ok := f.results[key]; ok {
		return result, nil
	}
	return nil, ml.ErrModelNotTrained
}

func (f *fakePredictor) Reload() error {
	f.reloaded++
	return nil
}
