package dto

import "time"

type CreateStudentRequest struct {
	StudentCode   string    `json:"student_code" binding:"required"`
	FullName      string    `json:"full_name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	YearOfStudy   string    `json:"year_of_study" binding:"required,oneof=1 2 3 4 5"`
	Major         string    `json:"major"`
	GPA           *float64  `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	AdmissionDate time.Time `json:"admission_date"`
}

type CreateCourseRequest struct {
	Code            string    `json:"code" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	Credits         int       `json:"credits" binding:"required,min=1"`
	DifficultyLevel string    `json:"difficulty_level" binding:"required,oneof=beginner intermediate advanced"`
	InstructorName  string    `json:"instructor_name"`
	MaxStudents     int       `json:"max_students"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
}

type CreateAssessmentRequest struct {
	Title            string    `json:"title" binding:"required"`
	Description      string    `json:"description"`
	AssessmentType   string    `json:"assessment_type" binding:"required,oneof=quiz assignment midterm final project presentation"`
	TotalMarks       float64   `json:"total_marks" binding:"required,gt=0"`
	WeightPercentage float64   `json:"weight_percentage" binding:"gte=0,lte=100"`
	DueDate          time.Time `json:"due_date"`
	IsPublished      bool      `json:"is_published"`
}

type RecordGradeRequest struct {
	StudentID     uint    `json:"student_id" binding:"required"`
	AssessmentID  uint    `json:"assessment_id" binding:"required"`
	MarksObtained float64 `json:"marks_obtained" binding:"gte=0"`
	Feedback      string  `json:"feedback"`
	IsPublished   bool    `json:"is_published"`
}

type MarkAttendanceRequest struct {
	StudentID uint      `json:"student_id" binding:"required"`
	CourseID  uint      `json:"course_id" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=present absent late excused"`
	Notes     string    `json:"notes"`
}

type EnrollRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

type CompleteEnrollmentRequest struct {
	FinalGrade float64 `json:"final_grade" binding:"gte=0,lte=100"`
	Failed     bool    `json:"failed"`
}
