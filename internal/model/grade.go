package model

import (
	"time"

	"gorm.io/gorm"
)

type Grade struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	StudentID     uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_grade_student_assessment"`
	Student       StudentProfile `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	AssessmentID  uint           `json:"assessment_id" gorm:"not null;uniqueIndex:idx_grade_student_assessment"`
	Assessment    Assessment     `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	MarksObtained float64        `json:"marks_obtained" gorm:"not null"`
	Feedback      string         `json:"feedback,omitempty" gorm:"type:text"`
	GradedAt      time.Time      `json:"graded_at" gorm:"autoCreateTime"`
	IsPublished   bool           `json:"is_published" gorm:"default:false"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Percentage returns the grade as a percentage of the assessment's total
// marks. The Assessment association must be loaded. A non-positive total
// yields 0 so degenerate rows never divide by zero.
func (g Grade) Percentage() float64 {
	if g.Assessment.TotalMarks <= 0 {
		return 0
	}
	return g.MarksObtained / g.Assessment.TotalMarks * 100
}
