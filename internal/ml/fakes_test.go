package ml

import (
	"time"

	"github.com/lshigami/Polaris/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the tests in this package.

type fakeStudentRepo struct {
	students map[uint]model.StudentProfile
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uint]model.StudentProfile)}
}

func (f *fakeStudentRepo) Create(student *model.StudentProfile) error {
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

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{}
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

type fakeGradeRepo struct {
	grades []model.Grade
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{}
}

func (f *fakeGradeRepo) Create(grade *model.Grade) error {
	grade.ID = uint(len(f.grades) + 1)
	f.grades = append(f.grades, *grade)
	return nil
}

func (f *fakeGradeRepo) Update(grade *model.Grade) error {
	for i := range f.grades {
		if f.grades[i].ID == grade.ID {
			f.grades[i] = *grade
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeGradeRepo) FindHistoricalByStudent(studentID, excludeCourseID uint) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range f.grades {
		if g.StudentID == studentID && g.Assessment.CourseID != excludeCourseID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGradeRepo) FindPublishedByStudentAndCourse(studentID, courseID uint) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range f.grades {
		if g.StudentID == studentID && g.Assessment.CourseID == courseID && g.IsPublished {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGradeRepo) FindPublishedByStudent(studentID uint) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range f.grades {
		if g.StudentID == studentID && g.IsPublished {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []model.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{}
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

// testWorld bundles the fakes behind one seeding surface.
type testWorld struct {
	students    *fakeStudentRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo
	grades      *fakeGradeRepo
	attendance  *fakeAttendanceRepo
}

func newTestWorld() *testWorld {
	return &testWorld{
		students:    newFakeStudentRepo(),
		courses:     newFakeCourseRepo(),
		enrollments: newFakeEnrollmentRepo(),
		grades:      newFakeGradeRepo(),
		attendance:  newFakeAttendanceRepo(),
	}
}

func (w *testWorld) extractor() *FeatureExtractor {
	return NewFeatureExtractor(w.students, w.courses, w.enrollments, w.grades, w.attendance)
}

func (w *testWorld) addStudent(id uint, year string, gpa float64) {
	w.students.students[id] = model.StudentProfile{
		ID:          id,
		StudentCode: "ST" + year,
		FullName:    "Test Student",
		YearOfStudy: year,
		GPA:         &gpa,
		IsActive:    true,
	}
}

func (w *testWorld) addCourse(id uint, difficulty string, credits int) {
	w.courses.courses[id] = model.Course{
		ID:              id,
		Code:            "C" + difficulty,
		Name:            "Test Course",
		Credits:         credits,
		DifficultyLevel: difficulty,
		MaxStudents:     30,
		IsActive:        true,
	}
}

func (w *testWorld) enroll(studentID, courseID uint, daysAgo int) {
	w.enrollments.enrollments = append(w.enrollments.enrollments, model.Enrollment{
		ID:             uint(len(w.enrollments.enrollments) + 1),
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().AddDate(0, 0, -daysAgo),
		Status:         model.EnrollmentStatusEnrolled,
		IsActive:       true,
	})
}

func (w *testWorld) complete(studentID, courseID uint, finalGrade float64, daysAgo int) {
	w.enrollments.enrollments = append(w.enrollments.enrollments, model.Enrollment{
		ID:             uint(len(w.enrollments.enrollments) + 1),
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().AddDate(0, 0, -daysAgo),
		Status:         model.EnrollmentStatusCompleted,
		FinalGrade:     &finalGrade,
	})
}

func (w *testWorld) addGrade(studentID, courseID uint, marks, total float64, published bool) {
	w.grades.grades = append(w.grades.grades, model.Grade{
		ID:            uint(len(w.grades.grades) + 1),
		StudentID:     studentID,
		AssessmentID:  uint(len(w.grades.grades) + 1),
		MarksObtained: marks,
		IsPublished:   published,
		Assessment: model.Assessment{
			CourseID:   courseID,
			TotalMarks: total,
		},
	})
}

func (w *testWorld) addAttendance(studentID, courseID uint, status string, daysAgo int) {
	w.attendance.records = append(w.attendance.records, model.AttendanceRecord{
		ID:        uint(len(w.attendance.records) + 1),
		StudentID: studentID,
		CourseID:  courseID,
		Date:      time.Now().AddDate(0, 0, -daysAgo),
		Status:    status,
	})
}
