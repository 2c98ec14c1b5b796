package dto

import "time"

type StudentResponse struct {
	ID            uint      `json:"id"`
	StudentCode   string    `json:"student_code"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	YearOfStudy   string    `json:"year_of_study"`
	Major         string    `json:"major,omitempty"`
	GPA           *float64  `json:"gpa,omitempty"`
	AdmissionDate time.Time `json:"admission_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type CourseResponse struct {
	ID              uint                 `json:"id"`
	Code            string               `json:"code"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Credits         int                  `json:"credits"`
	DifficultyLevel string               `json:"difficulty_level"`
	InstructorName  string               `json:"instructor_name,omitempty"`
	MaxStudents     int                  `json:"max_students"`
	StartDate       time.Time            `json:"start_date"`
	EndDate         time.Time            `json:"end_date"`
	IsActive        bool                 `json:"is_active"`
	Assessments     []AssessmentResponse `json:"assessments,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// CourseSummaryDTO is used for course listings.
type CourseSummaryDTO struct {
	ID              uint   `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Credits         int    `json:"credits"`
	DifficultyLevel string `json:"difficulty_level"`
	InstructorName  string `json:"instructor_name,omitempty"`
	MaxStudents     int    `json:"max_students"`
	EnrolledCount   int    `json:"enrolled_count"`
	AvailableSlots  int    `json:"available_slots"`
}

type EnrollmentResponse struct {
	ID             uint       `json:"id"`
	StudentID      uint       `json:"student_id"`
	CourseID       uint       `json:"course_id"`
	CourseCode     string     `json:"course_code,omitempty"`
	CourseName     string     `json:"course_name,omitempty"`
	EnrollmentDate time.Time  `json:"enrollment_date"`
	Status         string     `json:"status"`
	FinalGrade     *float64   `json:"final_grade,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

type AssessmentResponse struct {
	ID               uint      `json:"id"`
	CourseID         uint      `json:"course_id"`
	Title            string    `json:"title"`
	AssessmentType   string    `json:"assessment_type"`
	TotalMarks       float64   `json:"total_marks"`
	WeightPercentage float64   `json:"weight_percentage"`
	DueDate          time.Time `json:"due_date"`
	IsPublished      bool      `json:"is_published"`
}

type GradeResponse struct {
	ID            uint      `json:"id"`
	StudentID     uint      `json:"student_id"`
	AssessmentID  uint      `json:"assessment_id"`
	Assessment    string    `json:"assessment,omitempty"`
	Course        string    `json:"course,omitempty"`
	MarksObtained float64   `json:"marks_obtained"`
	TotalMarks    float64   `json:"total_marks"`
	Percentage    float64   `json:"percentage"`
	LetterGrade   string    `json:"letter_grade"`
	Feedback      string    `json:"feedback,omitempty"`
	GradedAt      time.Time `json:"graded_at"`
	IsPublished   bool      `json:"is_published"`
}

// AttendanceSummaryDTO aggregates a student's attendance in one course.
// AttendancePercentage counts late arrivals as attended, which is stricter
// counting than the prediction pipeline uses.
type AttendanceSummaryDTO struct {
	StudentID            uint    `json:"student_id"`
	CourseID             uint    `json:"course_id"`
	TotalClasses         int     `json:"total_classes"`
	ClassesAttended      int     `json:"classes_attended"`
	ClassesLate          int     `json:"classes_late"`
	ClassesAbsent        int     `json:"classes_absent"`
	ClassesExcused       int     `json:"classes_excused"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type PerformanceSummaryDTO struct {
	AverageGrade         float64         `json:"average_grade"`
	TotalCourses         int             `json:"total_courses"`
	CompletedAssessments int             `json:"completed_assessments"`
	AtRiskCourses        int             `json:"at_risk_courses"`
	RecentGrades         []GradeResponse `json:"recent_grades"`
}
