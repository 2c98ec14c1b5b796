package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty levels a course can have.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Course struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Code            string         `json:"code" gorm:"not null;uniqueIndex"` // "CS101"
	Name            string         `json:"name" gorm:"not null"`
	Description     string         `json:"description,omitempty" gorm:"type:text"`
	Credits         int            `json:"credits" gorm:"not null"`
	DifficultyLevel string         `json:"difficulty_level" gorm:"not null"` // beginner, intermediate, advanced
	InstructorName  string         `json:"instructor_name"`
	MaxStudents     int            `json:"max_students" gorm:"default:30"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	Enrollments     []Enrollment   `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
	Assessments     []Assessment   `json:"assessments,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
