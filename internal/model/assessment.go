package model

import (
	"time"

	"gorm.io/gorm"
)

type Assessment struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CourseID         uint           `json:"course_id" gorm:"not null;index"`
	Course           Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description,omitempty" gorm:"type:text"`
	AssessmentType   string         `json:"assessment_type" gorm:"not null"` // quiz, assignment, midterm, final, project, presentation
	TotalMarks       float64        `json:"total_marks" gorm:"not null"`
	WeightPercentage float64        `json:"weight_percentage"`
	DueDate          time.Time      `json:"due_date"`
	IsPublished      bool           `json:"is_published" gorm:"default:false"`
	Grades           []Grade        `json:"grades,omitempty" gorm:"foreignKey:AssessmentID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
