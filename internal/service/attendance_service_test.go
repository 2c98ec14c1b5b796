package service

import (
	"testing"
	"time"

	"github.com/lshigami/Polaris/internal/dto"
	"github.com/lshigami/Polaris/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAttendance(attendance *fakeAttendanceRepo, studentID, courseID uint, statuses ...string) {
	for i, status := range statuses {
		attendance.records = append(attendance.records, model.AttendanceRecord{
			ID:        uint(len(attendance.records) + 1),
			StudentID: studentID,
			CourseID:  courseID,
			Date:      time.Now().AddDate(0, 0, -i),
			Status:    status,
		})
	}
}

func TestGetCourseSummaryCountsLateAsAttended(t *testing.T) {
	students := newFakeStudentRepo()
	courses := newFakeCourseRepo()
	attendance := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendance, students, courses)

	// 6 present, 2 late, 2 absent: the summary treats late as attended, so
	// the percentage is 80, not the 60 the prediction feature would report.
	seedAttendance(attendance, 1, 10,
		"present", "present", "present", "present", "present", "present",
		"late", "late", "absent", "absent")

	summary, err := svc.GetCourseSummary(1, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalClasses)
	assert.Equal(t, 6, summary.ClassesAttended)
	assert.Equal(t, 2, summary.ClassesLate)
	assert.Equal(t, 2, summary.ClassesAbsent)
	assert.Equal(t, 80.0, summary.AttendancePercentage)
}

func TestGetCourseSummaryEmpty(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeStudentRepo(), newFakeCourseRepo())

	summary, err := svc.GetCourseSummary(1, 10)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalClasses)
	assert.Zero(t, summary.AttendancePercentage)
}

func TestMarkAttendanceRequiresExistingRows(t *testing.T) {
	students := newFakeStudentRepo()
	courses := newFakeCourseRepo()
	attendance := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendance, students, courses)

	req := dto.MarkAttendanceRequest{StudentID: 1, CourseID: 10, Date: time.Now(), Status: "present"}
	assert.Error(t, svc.MarkAttendance(req), "unknown student must be rejected")

	require.NoError(t, students.Create(&model.StudentProfile{ID: 1, StudentCode: "ST1", FullName: "A", Email: "a@x.io", YearOfStudy: "1"}))
	assert.Error(t, svc.MarkAttendance(req), "unknown course must be rejected")

	require.NoError(t, courses.Create(&model.Course{ID: 10, Code: "CS101", Name: "Intro", Credits: 3, DifficultyLevel: "beginner"}))
	require.NoError(t, svc.MarkAttendance(req))
	assert.Len(t, attendance.records, 1)
}
