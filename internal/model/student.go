package model

import (
	"time"

	"gorm.io/gorm"
)

type StudentProfile struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	StudentCode   string         `json:"student_code" gorm:"not null;uniqueIndex"` // e.g. "ST2024001"
	FullName      string         `json:"full_name" gorm:"not null"`
	Email         string         `json:"email" gorm:"not null;uniqueIndex"`
	YearOfStudy   string         `json:"year_of_study" gorm:"not null"` // "1".."5"
	Major         string         `json:"major"`
	GPA           *float64       `json:"gpa,omitempty"`
	AdmissionDate time.Time      `json:"admission_date"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	Enrollments   []Enrollment   `json:"enrollments,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
