package model

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment lifecycle statuses.
const (
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
	EnrollmentStatusFailed    = "failed"
)

type Enrollment struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	StudentID      uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course"`
	Student        StudentProfile `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	CourseID       uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course"`
	Course         Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	EnrollmentDate time.Time      `json:"enrollment_date" gorm:"autoCreateTime"`
	Status         string         `json:"status" gorm:"default:'enrolled'"` // enrolled, completed, dropped, failed
	FinalGrade     *float64       `json:"final_grade,omitempty"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
