package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"coursehub_backend/internals/features/lms/attendance/dto"
	"coursehub_backend/internals/features/lms/attendance/model"
	scheduleModel "coursehub_backend/internals/features/lms/class_schedules/model"
	courseModel "coursehub_backend/internals/features/lms/courses/model"
	locationModel "coursehub_backend/internals/features/lms/locations/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&locationModel.LocationModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseSessionModel{},
		&scheduleModel.ClassScheduleModel{},
		&model.AttendanceModel{},
	))
	return db
}

func newTestService(t *testing.T) *AttendanceService {
	t.Helper()
	return NewAttendanceService(setupTestDB(t), nil)
}

func createStudent(t *testing.T, db *gorm.DB, first, last, email string) string {
	t.Helper()
	u := userModel.UserModel{
		UserFirstName: first,
		UserLastName:  last,
		UserEmail:     email,
		UserPassword:  "x",
		UserRole:      "student",
	}
	require.NoError(t, db.Create(&u).Error)
	return u.UserID
}

func markReq(scheduleID, courseID, sessionID, studentID, status string) dto.MarkAttendanceRequest {
	return dto.MarkAttendanceRequest{
		AttendanceClassScheduleID: scheduleID,
		AttendanceCourseID:        courseID,
		AttendanceSessionID:       sessionID,
		AttendanceStudentID:       studentID,
		AttendanceStatus:          status,
	}
}

func countAttendance(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&n).Error)
	return n
}

/* ============================
   Mark / upsert
============================ */

func TestMarkUpsertReplacesExistingRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	studentID := createStudent(t, svc.DB, "Siti", "Rahma", "siti@example.com")
	instructorID := createStudent(t, svc.DB, "Budi", "Santoso", "budi@example.com")
	scheduleID := uuid.NewString()
	courseID := uuid.NewString()
	sessionID := uuid.NewString()

	first, created, err := svc.Mark(ctx, markReq(scheduleID, courseID, sessionID, studentID, "present"), instructorID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "present", first.AttendanceStatus)
	require.NotNil(t, first.Student)
	assert.Equal(t, "siti@example.com", first.Student.UserEmail)

	// mark ulang pasangan (schedule, student) yang sama dengan status berbeda
	notes := "sakit"
	req := markReq(scheduleID, courseID, sessionID, studentID, "absent")
	req.AttendanceNotes = &notes

	second, created, err := svc.Mark(ctx, req, instructorID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.AttendanceID, second.AttendanceID)
	assert.Equal(t, "absent", second.AttendanceStatus)
	require.NotNil(t, second.AttendanceNotes)
	assert.Equal(t, "sakit", *second.AttendanceNotes)
	assert.False(t, second.AttendanceMarkedAt.Before(first.AttendanceMarkedAt))

	// tetap satu record untuk pasangan itu
	assert.EqualValues(t, 1, countAttendance(t, svc.DB))
}

func TestMarkDifferentStudentsCreateSeparateRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	scheduleID := uuid.NewString()
	courseID := uuid.NewString()
	sessionID := uuid.NewString()
	marker := uuid.NewString()

	for i := 0; i < 3; i++ {
		_, created, err := svc.Mark(ctx, markReq(scheduleID, courseID, sessionID, uuid.NewString(), "present"), marker)
		require.NoError(t, err)
		assert.True(t, created)
	}
	assert.EqualValues(t, 3, countAttendance(t, svc.DB))
}

/* ============================
   BulkMark
============================ */

func TestBulkMarkCountsCreatedAndUpdated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	scheduleID := uuid.NewString()
	courseID := uuid.NewString()
	sessionID := uuid.NewString()
	marker := uuid.NewString()

	students := []dto.BulkMarkStudentEntry{
		{AttendanceStudentID: uuid.NewString(), AttendanceStatus: "present"},
		{AttendanceStudentID: uuid.NewString(), AttendanceStatus: "absent"},
		{AttendanceStudentID: uuid.NewString(), AttendanceStatus: "present"},
	}
	req := dto.BulkMarkAttendanceRequest{
		AttendanceClassScheduleID: scheduleID,
		AttendanceCourseID:        courseID,
		AttendanceSessionID:       sessionID,
		Students:                  students,
	}

	result, err := svc.BulkMark(ctx, req, marker)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Records, 3)

	// batch kedua: dua student lama + satu baru
	req.Students = []dto.BulkMarkStudentEntry{
		{AttendanceStudentID: students[0].AttendanceStudentID, AttendanceStatus: "absent"},
		{AttendanceStudentID: students[1].AttendanceStudentID, AttendanceStatus: "present"},
		{AttendanceStudentID: uuid.NewString(), AttendanceStatus: "present"},
	}
	result, err = svc.BulkMark(ctx, req, marker)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 3, result.Total)

	assert.EqualValues(t, 4, countAttendance(t, svc.DB))
}

func TestBulkMarkEmptyStudentListRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := dto.BulkMarkAttendanceRequest{
		AttendanceClassScheduleID: uuid.NewString(),
		AttendanceCourseID:        uuid.NewString(),
		AttendanceSessionID:       uuid.NewString(),
	}

	_, err := svc.BulkMark(ctx, req, uuid.NewString())
	assert.ErrorIs(t, err, ErrEmptyStudentList)
	assert.EqualValues(t, 0, countAttendance(t, svc.DB), "list kosong tidak boleh menulis apa pun")
}

/* ============================
   Stats engine
============================ */

func createCourseWithSession(t *testing.T, db *gorm.DB, blocks []courseModel.TimeBlock) (courseID, sessionID string) {
	t.Helper()
	course := courseModel.CourseModel{
		CourseTitle: "Go Fundamentals",
		CourseSlug:  "go-fundamentals-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(&course).Error)

	session := courseModel.CourseSessionModel{
		CourseSessionCourseID:   course.CourseID,
		CourseSessionName:       "Batch 1",
		CourseSessionTimeBlocks: datatypes.NewJSONSlice(blocks),
	}
	require.NoError(t, db.Create(&session).Error)
	return course.CourseID, session.CourseSessionID
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatsTimeBlockDayCounting(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	courseID, sessionID := createCourseWithSession(t, svc.DB, []courseModel.TimeBlock{
		{StartDate: day(2025, 1, 1), EndDate: day(2025, 1, 5)},
	})
	studentID := uuid.NewString()

	stats, err := svc.GetAttendanceStats(ctx, courseID, studentID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalClasses)
	assert.Equal(t, 0, stats.AttendancePercentage)

	// block satu hari (start == end) dihitung 1; block independen dijumlahkan
	courseID2, sessionID2 := createCourseWithSession(t, svc.DB, []courseModel.TimeBlock{
		{StartDate: day(2025, 2, 10), EndDate: day(2025, 2, 10)},
		{StartDate: day(2025, 2, 17), EndDate: day(2025, 2, 19)},
	})
	stats, err = svc.GetAttendanceStats(ctx, courseID2, studentID, sessionID2)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalClasses)
}

func TestStatsZeroTimeBlocks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	courseID, sessionID := createCourseWithSession(t, svc.DB, nil)

	stats, err := svc.GetAttendanceStats(ctx, courseID, uuid.NewString(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalClasses)
	assert.Equal(t, 0, stats.AttendancePercentage, "0 kelas tidak boleh membagi nol")
}

func TestStatsCountsAndPercentage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	courseID, sessionID := createCourseWithSession(t, svc.DB, []courseModel.TimeBlock{
		{StartDate: day(2025, 3, 3), EndDate: day(2025, 3, 7)}, // 5 kelas
	})
	studentID := uuid.NewString()
	marker := uuid.NewString()

	// 4 hadir + 1 absen, masing-masing occurrence kelas berbeda
	for i := 0; i < 4; i++ {
		_, _, err := svc.Mark(ctx, markReq(uuid.NewString(), courseID, sessionID, studentID, "present"), marker)
		require.NoError(t, err)
	}
	_, _, err := svc.Mark(ctx, markReq(uuid.NewString(), courseID, sessionID, studentID, "absent"), marker)
	require.NoError(t, err)

	stats, err := svc.GetAttendanceStats(ctx, courseID, studentID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalClasses)
	assert.EqualValues(t, 5, stats.MarkedCount)
	assert.EqualValues(t, 4, stats.PresentCount)
	assert.EqualValues(t, 1, stats.AbsentCount)
	assert.Equal(t, 80, stats.AttendancePercentage)
}

func TestStatsNotFoundErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetAttendanceStats(ctx, uuid.NewString(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, ErrCourseNotFound)

	courseID, _ := createCourseWithSession(t, svc.DB, nil)
	_, err = svc.GetAttendanceStats(ctx, courseID, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

/* ============================
   Pass/Fail engine
============================ */

// seedAttendanceRow menulis row langsung (bypass upsert) supaya bisa menyusun
// himpunan record historis untuk engine pass/fail.
func seedAttendanceRow(t *testing.T, db *gorm.DB, scheduleID, courseID, sessionID, studentID string, status model.AttendanceStatus, seq int) {
	t.Helper()
	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	row := model.AttendanceModel{
		AttendanceClassScheduleID: scheduleID,
		AttendanceCourseID:        courseID,
		AttendanceSessionID:       sessionID,
		AttendanceStudentID:       studentID,
		AttendanceMarkedBy:        uuid.NewString(),
		AttendanceStatus:          status,
		AttendanceMarkedAt:        base.Add(time.Duration(seq) * time.Minute),
		AttendanceCreatedAt:       base.Add(time.Duration(seq) * time.Minute),
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestPassFailZeroTolerance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	scheduleID := uuid.NewString()
	courseID := uuid.NewString()
	sessionID := uuid.NewString()

	failing := createStudent(t, svc.DB, "Andi", "Wijaya", "andi@example.com")
	passing := createStudent(t, svc.DB, "Rina", "Putri", "rina@example.com")

	seq := 0
	for i := 0; i < 19; i++ {
		seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, failing, model.AttendanceStatusPresent, seq)
		seq++
	}
	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, failing, model.AttendanceStatusAbsent, seq)
	seq++
	for i := 0; i < 20; i++ {
		seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, passing, model.AttendanceStatusPresent, seq)
		seq++
	}

	summary, err := svc.CheckPassFailStatus(ctx, scheduleID, courseID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.PassedStudents)
	assert.Equal(t, 1, summary.FailedStudents)

	byID := map[string]dto.PassFailStudentResult{}
	for _, r := range summary.Results {
		byID[r.StudentID] = r
	}

	// 19 hadir + 1 absen = FAIL (tidak ada ambang toleransi)
	assert.Equal(t, "FAIL", byID[failing].Result)
	assert.Equal(t, 20, byID[failing].TotalClasses)
	assert.Equal(t, 19, byID[failing].PresentCount)
	assert.Equal(t, 1, byID[failing].AbsentCount)

	assert.Equal(t, "PASS", byID[passing].Result)
	assert.Equal(t, 20, byID[passing].PresentCount)

	assert.Equal(t, "Andi Wijaya", byID[failing].StudentName)
	assert.False(t, byID[failing].CertificateIssued)
}

func TestPassFailPartitionOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	scheduleID := uuid.NewString()
	courseID := uuid.NewString()
	sessionID := uuid.NewString()

	// urutan kemunculan: A (FAIL), B (PASS), C (FAIL)
	studentA := createStudent(t, svc.DB, "A", "Satu", "a@example.com")
	studentB := createStudent(t, svc.DB, "B", "Dua", "b@example.com")
	studentC := createStudent(t, svc.DB, "C", "Tiga", "c@example.com")

	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, studentA, model.AttendanceStatusAbsent, 0)
	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, studentB, model.AttendanceStatusPresent, 1)
	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, studentC, model.AttendanceStatusAbsent, 2)

	summary, err := svc.CheckPassFailStatus(ctx, scheduleID, courseID, sessionID)
	require.NoError(t, err)
	require.Len(t, summary.Results, 3)

	// partisi stabil: B dulu (PASS), lalu A sebelum C (urutan kemunculan dipertahankan)
	assert.Equal(t, studentB, summary.Results[0].StudentID)
	assert.Equal(t, studentA, summary.Results[1].StudentID)
	assert.Equal(t, studentC, summary.Results[2].StudentID)
}

func TestPassFailStudentNameFallbacks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	scheduleID := uuid.NewString()
	courseID := uuid.NewString()
	sessionID := uuid.NewString()

	named := createStudent(t, svc.DB, "Dewi", "Lestari", "dewi@example.com")
	emailOnly := createStudent(t, svc.DB, "", "", "anon@example.com")
	ghost := uuid.NewString() // tidak ada row user

	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, named, model.AttendanceStatusPresent, 0)
	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, emailOnly, model.AttendanceStatusPresent, 1)
	seedAttendanceRow(t, svc.DB, scheduleID, courseID, sessionID, ghost, model.AttendanceStatusPresent, 2)

	summary, err := svc.CheckPassFailStatus(ctx, scheduleID, courseID, sessionID)
	require.NoError(t, err)
	require.Len(t, summary.Results, 3)

	assert.Equal(t, "Dewi Lestari", summary.Results[0].StudentName)
	assert.Equal(t, "anon@example.com", summary.Results[1].StudentName)
	assert.Equal(t, "Unknown Student", summary.Results[2].StudentName)
}

func TestPassFailNoRecords(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CheckPassFailStatus(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, ErrAttendanceNotFound)
}

/* ============================
   List, update, remove
============================ */

func TestFindPaginatedClampsLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	courseID := uuid.NewString()
	sessionID := uuid.NewString()
	marker := uuid.NewString()

	for i := 0; i < 60; i++ {
		_, _, err := svc.Mark(ctx, markReq(uuid.NewString(), courseID, sessionID, uuid.NewString(), "present"), marker)
		require.NoError(t, err)
	}

	rows, pagination, err := svc.FindPaginated(ctx, dto.AttendanceFilter{CourseID: courseID}, 1, 1000)
	require.NoError(t, err)
	assert.Len(t, rows, 50, "limit harus di-clamp ke 50")
	assert.Equal(t, 50, pagination.PerPage)
	assert.EqualValues(t, 60, pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)

	rows, pagination, err = svc.FindPaginated(ctx, dto.AttendanceFilter{CourseID: courseID}, 2, 1000)
	require.NoError(t, err)
	assert.Len(t, rows, 10)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestFindAllFiltersAndSort(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	courseID := uuid.NewString()
	otherCourse := uuid.NewString()
	sessionID := uuid.NewString()
	marker := uuid.NewString()

	_, _, err := svc.Mark(ctx, markReq(uuid.NewString(), courseID, sessionID, uuid.NewString(), "present"), marker)
	require.NoError(t, err)
	_, _, err = svc.Mark(ctx, markReq(uuid.NewString(), courseID, sessionID, uuid.NewString(), "absent"), marker)
	require.NoError(t, err)
	_, _, err = svc.Mark(ctx, markReq(uuid.NewString(), otherCourse, sessionID, uuid.NewString(), "present"), marker)
	require.NoError(t, err)

	rows, err := svc.FindAll(ctx, dto.AttendanceFilter{CourseID: courseID})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.FindAll(ctx, dto.AttendanceFilter{CourseID: courseID, Status: "absent"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "absent", rows[0].AttendanceStatus)

	// default sort: marked_at terbaru dulu
	all, err := svc.FindAll(ctx, dto.AttendanceFilter{})
	require.NoError(t, err)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].AttendanceMarkedAt.Before(all[i].AttendanceMarkedAt))
	}
}

func TestUpdatePartialAndMarkedAtRefresh(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, _, err := svc.Mark(ctx, markReq(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString(), "present"), uuid.NewString())
	require.NoError(t, err)

	// mundurkan marked_at supaya refresh terlihat
	old := time.Now().Add(-1 * time.Hour)
	require.NoError(t, svc.DB.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", rec.AttendanceID).
		Update("attendance_marked_at", old).Error)

	// update course_id saja → marked_at TIDAK berubah
	newCourse := uuid.NewString()
	updated, err := svc.Update(ctx, rec.AttendanceID, dto.UpdateAttendanceRequest{
		AttendanceCourseID: &newCourse,
	})
	require.NoError(t, err)
	assert.Equal(t, newCourse, updated.AttendanceCourseID)
	assert.WithinDuration(t, old, updated.AttendanceMarkedAt, 2*time.Second)

	// status dikirim (meski nilainya sama) → marked_at refresh
	same := "present"
	updated, err = svc.Update(ctx, rec.AttendanceID, dto.UpdateAttendanceRequest{
		AttendanceStatus: &same,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), updated.AttendanceMarkedAt, 5*time.Second)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(t)

	status := "absent"
	_, err := svc.Update(context.Background(), uuid.NewString(), dto.UpdateAttendanceRequest{
		AttendanceStatus: &status,
	})
	assert.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestRemoveTolerantDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, _, err := svc.Mark(ctx, markReq(uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString(), "present"), uuid.NewString())
	require.NoError(t, err)

	deleted, err := svc.Remove(ctx, rec.AttendanceID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// id yang sudah tidak ada bukan error, hanya false
	deleted, err = svc.Remove(ctx, rec.AttendanceID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
