package model

import (
	"time"

	"gorm.io/gorm"
)

// Attendance statuses.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusExcused = "excused"
)

type AttendanceRecord struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	StudentID uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_student_course_date"`
	Student   StudentProfile `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	CourseID  uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_attendance_student_course_date"`
	Course    Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Date      time.Time      `json:"date" gorm:"not null;uniqueIndex:idx_attendance_student_course_date"`
	Status    string         `json:"status" gorm:"not null"` // present, absent, late, excused
	Notes     string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
