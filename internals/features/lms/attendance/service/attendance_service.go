// internals/features/lms/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/attendance/dto"
	"coursehub_backend/internals/features/lms/attendance/model"
	courseModel "coursehub_backend/internals/features/lms/courses/model"
	userModel "coursehub_backend/internals/features/users/user/model"
	helper "coursehub_backend/internals/helpers"
	cache "coursehub_backend/internals/helpers/cache"
)

/* ============================
   Error taksonomi
============================ */

var (
	// InvalidArgument
	ErrEmptyStudentList = errors.New("students tidak boleh kosong")

	// NotFound
	ErrAttendanceNotFound = errors.New("attendance record tidak ditemukan")
	ErrCourseNotFound     = errors.New("course tidak ditemukan")
	ErrSessionNotFound    = errors.New("session tidak ditemukan di course")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50

	statsCacheTTL = 60 * time.Second
)

/* ============================
   Service
============================ */

type AttendanceService struct {
	DB    *gorm.DB
	Cache *cache.Cache

	// serialisasi check-then-write per (class_schedule_id, student_id)
	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex
}

func NewAttendanceService(db *gorm.DB, c *cache.Cache) *AttendanceService {
	return &AttendanceService{
		DB:       db,
		Cache:    c,
		keyLocks: make(map[string]*sync.Mutex),
	}
}

func (s *AttendanceService) lockPair(classScheduleID, studentID string) func() {
	key := classScheduleID + "|" + studentID
	s.mu.Lock()
	l, ok := s.keyLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.keyLocks[key] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func statsCacheKey(courseID, studentID, sessionID string) string {
	return fmt.Sprintf("attendance:stats:%s:%s:%s", courseID, studentID, sessionID)
}

/* ============================
   Mark (upsert by natural key)
============================ */

// Mark meng-upsert absensi berdasarkan (class_schedule_id, student_id):
// kalau sudah ada → overwrite course/session/status/notes/marked_by + refresh
// marked_at; kalau belum → create. Hasilnya dibaca ulang dengan referensi
// ter-populate. Return kedua = true bila record baru dibuat.
func (s *AttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest, markedBy string) (dto.AttendanceDTO, bool, error) {
	unlock := s.lockPair(req.AttendanceClassScheduleID, req.AttendanceStudentID)
	defer unlock()

	now := time.Now()
	created := false

	var existing model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_class_schedule_id = ? AND attendance_student_id = ?",
			req.AttendanceClassScheduleID, req.AttendanceStudentID).
		First(&existing).Error

	switch {
	case err == nil:
		existing.AttendanceCourseID = req.AttendanceCourseID
		existing.AttendanceSessionID = req.AttendanceSessionID
		existing.AttendanceStatus = model.AttendanceStatus(req.AttendanceStatus)
		existing.AttendanceNotes = req.AttendanceNotes
		existing.AttendanceMarkedBy = markedBy
		existing.AttendanceMarkedAt = now
		if err := s.DB.WithContext(ctx).Save(&existing).Error; err != nil {
			return dto.AttendanceDTO{}, false, err
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = model.AttendanceModel{
			AttendanceClassScheduleID: req.AttendanceClassScheduleID,
			AttendanceCourseID:        req.AttendanceCourseID,
			AttendanceSessionID:       req.AttendanceSessionID,
			AttendanceStudentID:       req.AttendanceStudentID,
			AttendanceMarkedBy:        markedBy,
			AttendanceStatus:          model.AttendanceStatus(req.AttendanceStatus),
			AttendanceNotes:           req.AttendanceNotes,
			AttendanceMarkedAt:        now,
		}
		if err := s.DB.WithContext(ctx).Create(&existing).Error; err != nil {
			return dto.AttendanceDTO{}, false, err
		}
		created = true

	default:
		return dto.AttendanceDTO{}, false, err
	}

	resolved, err := s.findResolvedByID(ctx, existing.AttendanceID)
	if err != nil {
		return dto.AttendanceDTO{}, false, err
	}

	s.Cache.Delete(ctx, statsCacheKey(req.AttendanceCourseID, req.AttendanceStudentID, req.AttendanceSessionID))

	return resolved, created, nil
}

/* ============================
   BulkMark
============================ */

// BulkMark menerapkan upsert Mark per entry secara sekuensial (bukan paralel,
// supaya existence-check + write antar student tidak saling balapan dalam satu
// batch). Gagal di tengah → abort; record yang sudah tertulis tetap tersimpan.
func (s *AttendanceService) BulkMark(ctx context.Context, req dto.BulkMarkAttendanceRequest, markedBy string) (dto.BulkMarkResultDTO, error) {
	if len(req.Students) == 0 {
		return dto.BulkMarkResultDTO{}, ErrEmptyStudentList
	}

	out := dto.BulkMarkResultDTO{
		Records: make([]dto.AttendanceDTO, 0, len(req.Students)),
	}

	for _, entry := range req.Students {
		rec, created, err := s.Mark(ctx, dto.MarkAttendanceRequest{
			AttendanceClassScheduleID: req.AttendanceClassScheduleID,
			AttendanceCourseID:        req.AttendanceCourseID,
			AttendanceSessionID:       req.AttendanceSessionID,
			AttendanceStudentID:       entry.AttendanceStudentID,
			AttendanceStatus:          entry.AttendanceStatus,
			AttendanceNotes:           entry.AttendanceNotes,
		}, markedBy)
		if err != nil {
			return dto.BulkMarkResultDTO{}, err
		}
		if created {
			out.Created++
		} else {
			out.Updated++
		}
		out.Records = append(out.Records, rec)
	}

	out.Total = len(req.Students)
	return out, nil
}

/* ============================
   Query (list & paginated)
============================ */

func (s *AttendanceService) filteredQuery(ctx context.Context, f dto.AttendanceFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&model.AttendanceModel{})
	if v := strings.TrimSpace(f.ClassScheduleID); v != "" {
		q = q.Where("attendance_class_schedule_id = ?", v)
	}
	if v := strings.TrimSpace(f.CourseID); v != "" {
		q = q.Where("attendance_course_id = ?", v)
	}
	if v := strings.TrimSpace(f.SessionID); v != "" {
		q = q.Where("attendance_session_id = ?", v)
	}
	if v := strings.TrimSpace(f.StudentID); v != "" {
		q = q.Where("attendance_student_id = ?", v)
	}
	if v := strings.TrimSpace(f.MarkedBy); v != "" {
		q = q.Where("attendance_marked_by = ?", v)
	}
	if v := strings.TrimSpace(f.Status); v != "" {
		q = q.Where("attendance_status = ?", v)
	}
	return q
}

func withResolvedRefs(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Student").
		Preload("Marker").
		Preload("Course").
		Preload("ClassSchedule")
}

// FindAll mengembalikan semua record yang lolos filter, marked_at terbaru dulu.
func (s *AttendanceService) FindAll(ctx context.Context, f dto.AttendanceFilter) ([]dto.AttendanceDTO, error) {
	var rows []model.AttendanceModel
	err := withResolvedRefs(s.filteredQuery(ctx, f)).
		Order("attendance_marked_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return dto.ToAttendanceDTOs(rows), nil
}

// FindPaginated: page 1-indexed, per_page di-clamp maksimum 50.
func (s *AttendanceService) FindPaginated(ctx context.Context, f dto.AttendanceFilter, page, perPage int) ([]dto.AttendanceDTO, helper.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	var total int64
	if err := s.filteredQuery(ctx, f).Count(&total).Error; err != nil {
		return nil, helper.Pagination{}, err
	}

	var rows []model.AttendanceModel
	err := withResolvedRefs(s.filteredQuery(ctx, f)).
		Order("attendance_marked_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, helper.Pagination{}, err
	}

	return dto.ToAttendanceDTOs(rows), helper.BuildPaginationFromPage(total, page, perPage), nil
}

/* ============================
   Update & Remove
============================ */

// Update mengubah hanya field non-nil. Kalau status atau notes ikut dikirim
// (meski nilainya sama), marked_at di-refresh.
func (s *AttendanceService) Update(ctx context.Context, id string, req dto.UpdateAttendanceRequest) (dto.AttendanceDTO, error) {
	var rec model.AttendanceModel
	if err := s.DB.WithContext(ctx).First(&rec, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AttendanceDTO{}, ErrAttendanceNotFound
		}
		return dto.AttendanceDTO{}, err
	}

	oldKey := statsCacheKey(rec.AttendanceCourseID, rec.AttendanceStudentID, rec.AttendanceSessionID)

	if req.AttendanceClassScheduleID != nil {
		rec.AttendanceClassScheduleID = *req.AttendanceClassScheduleID
	}
	if req.AttendanceCourseID != nil {
		rec.AttendanceCourseID = *req.AttendanceCourseID
	}
	if req.AttendanceSessionID != nil {
		rec.AttendanceSessionID = *req.AttendanceSessionID
	}
	if req.AttendanceStudentID != nil {
		rec.AttendanceStudentID = *req.AttendanceStudentID
	}
	if req.AttendanceStatus != nil {
		rec.AttendanceStatus = model.AttendanceStatus(*req.AttendanceStatus)
	}
	if req.AttendanceNotes != nil {
		rec.AttendanceNotes = req.AttendanceNotes
	}
	if req.AttendanceStatus != nil || req.AttendanceNotes != nil {
		rec.AttendanceMarkedAt = time.Now()
	}

	if err := s.DB.WithContext(ctx).Save(&rec).Error; err != nil {
		return dto.AttendanceDTO{}, err
	}

	s.Cache.Delete(ctx, oldKey,
		statsCacheKey(rec.AttendanceCourseID, rec.AttendanceStudentID, rec.AttendanceSessionID))

	return s.findResolvedByID(ctx, rec.AttendanceID)
}

// Remove: delete toleran — id yang tidak ada bukan error, return false.
func (s *AttendanceService) Remove(ctx context.Context, id string) (bool, error) {
	var rec model.AttendanceModel
	err := s.DB.WithContext(ctx).First(&rec, "attendance_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	res := s.DB.WithContext(ctx).Delete(&model.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}

	s.Cache.Delete(ctx, statsCacheKey(rec.AttendanceCourseID, rec.AttendanceStudentID, rec.AttendanceSessionID))
	return res.RowsAffected > 0, nil
}

/* ============================
   Statistik kehadiran
============================ */

// inclusiveDayCount menghitung jumlah hari kelas dalam satu time block:
// ceil((end - start) / 1 hari) + 1. Block dengan start == end dihitung 1.
func inclusiveDayCount(b courseModel.TimeBlock) int {
	days := int(math.Ceil(b.EndDate.Sub(b.StartDate).Hours() / 24.0))
	if days < 0 {
		days = 0
	}
	return days + 1
}

// GetAttendanceStats menghitung expected class count dari time block sesi dan
// membandingkannya dengan absensi yang tercatat. Block yang overlap dihitung
// dobel (limitasi yang diterima, bukan dikoreksi).
func (s *AttendanceService) GetAttendanceStats(ctx context.Context, courseID, studentID, sessionID string) (dto.AttendanceStatsDTO, error) {
	key := statsCacheKey(courseID, studentID, sessionID)
	var cached dto.AttendanceStatsDTO
	if err := s.Cache.GetJSON(ctx, key, &cached); err == nil {
		return cached, nil
	}

	var course courseModel.CourseModel
	err := s.DB.WithContext(ctx).
		Preload("Sessions").
		First(&course, "course_id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AttendanceStatsDTO{}, ErrCourseNotFound
	}
	if err != nil {
		return dto.AttendanceStatsDTO{}, err
	}

	var session *courseModel.CourseSessionModel
	for i := range course.Sessions {
		if course.Sessions[i].CourseSessionID == sessionID {
			session = &course.Sessions[i]
			break
		}
	}
	if session == nil {
		return dto.AttendanceStatsDTO{}, ErrSessionNotFound
	}

	totalClasses := 0
	for _, block := range session.CourseSessionTimeBlocks {
		totalClasses += inclusiveDayCount(block)
	}

	base := dto.AttendanceFilter{CourseID: courseID, StudentID: studentID, SessionID: sessionID}

	var marked, present, absent int64
	if err := s.filteredQuery(ctx, base).Count(&marked).Error; err != nil {
		return dto.AttendanceStatsDTO{}, err
	}
	presentFilter := base
	presentFilter.Status = string(model.AttendanceStatusPresent)
	if err := s.filteredQuery(ctx, presentFilter).Count(&present).Error; err != nil {
		return dto.AttendanceStatsDTO{}, err
	}
	absentFilter := base
	absentFilter.Status = string(model.AttendanceStatusAbsent)
	if err := s.filteredQuery(ctx, absentFilter).Count(&absent).Error; err != nil {
		return dto.AttendanceStatsDTO{}, err
	}

	// hindari pembagian nol: 0 kelas → 0%
	percentage := 0
	if totalClasses > 0 {
		percentage = int(math.Round(float64(present) / float64(totalClasses) * 100))
	}

	stats := dto.AttendanceStatsDTO{
		CourseID:             courseID,
		StudentID:            studentID,
		SessionID:            sessionID,
		TotalClasses:         totalClasses,
		MarkedCount:          marked,
		PresentCount:         present,
		AbsentCount:          absent,
		AttendancePercentage: percentage,
	}

	s.Cache.SetJSON(ctx, key, stats, statsCacheTTL)
	return stats, nil
}

/* ============================
   Pass/Fail engine
============================ */

// CheckPassFailStatus mengelompokkan absensi per student untuk satu triple
// (class_schedule, course, session) dan mengklasifikasikan PASS/FAIL dengan
// aturan zero-tolerance: satu saja absent → FAIL.
//
// total_classes per student = jumlah record absensi student itu (sengaja beda
// denominasi dengan GetAttendanceStats; perilaku upstream dipertahankan).
func (s *AttendanceService) CheckPassFailStatus(ctx context.Context, classScheduleID, courseID, sessionID string) (dto.PassFailSummaryDTO, error) {
	var rows []model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Where("attendance_class_schedule_id = ? AND attendance_course_id = ? AND attendance_session_id = ?",
			classScheduleID, courseID, sessionID).
		Order("attendance_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return dto.PassFailSummaryDTO{}, err
	}
	if len(rows) == 0 {
		return dto.PassFailSummaryDTO{}, ErrAttendanceNotFound
	}

	// group by student, urutan first-seen dipertahankan
	order := make([]string, 0)
	groups := make(map[string][]model.AttendanceModel)
	for _, r := range rows {
		if _, ok := groups[r.AttendanceStudentID]; !ok {
			order = append(order, r.AttendanceStudentID)
		}
		groups[r.AttendanceStudentID] = append(groups[r.AttendanceStudentID], r)
	}

	passed := make([]dto.PassFailStudentResult, 0, len(order))
	failed := make([]dto.PassFailStudentResult, 0, len(order))

	for _, studentID := range order {
		group := groups[studentID]

		present, absent := 0, 0
		for _, r := range group {
			switch r.AttendanceStatus {
			case model.AttendanceStatusPresent:
				present++
			case model.AttendanceStatusAbsent:
				absent++
			}
		}

		res := dto.PassFailStudentResult{
			StudentID:         studentID,
			StudentName:       resolveStudentName(group[0].Student),
			TotalClasses:      len(group),
			PresentCount:      present,
			AbsentCount:       absent,
			CertificateIssued: false, // penerbitan sertifikat di luar engine ini
		}
		if st := group[0].Student; st != nil {
			res.StudentEmail = st.UserEmail
		}

		if absent == 0 {
			res.Result = "PASS"
			passed = append(passed, res)
		} else {
			res.Result = "FAIL"
			failed = append(failed, res)
		}
	}

	// partisi stabil: semua PASS dulu, lalu FAIL, urutan dalam partisi tetap
	results := append(passed, failed...)

	return dto.PassFailSummaryDTO{
		ClassScheduleID: classScheduleID,
		CourseID:        courseID,
		SessionID:       sessionID,
		TotalStudents:   len(order),
		PassedStudents:  len(passed),
		FailedStudents:  len(failed),
		Results:         results,
	}, nil
}

func resolveStudentName(st *userModel.UserModel) string {
	if st != nil {
		first := strings.TrimSpace(st.UserFirstName)
		last := strings.TrimSpace(st.UserLastName)
		if first != "" && last != "" {
			return first + " " + last
		}
		if email := strings.TrimSpace(st.UserEmail); email != "" {
			return email
		}
	}
	return "Unknown Student"
}

/* ============================
   Internal
============================ */

func (s *AttendanceService) findResolvedByID(ctx context.Context, id string) (dto.AttendanceDTO, error) {
	var rec model.AttendanceModel
	err := withResolvedRefs(s.DB.WithContext(ctx)).
		First(&rec, "attendance_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AttendanceDTO{}, ErrAttendanceNotFound
	}
	if err != nil {
		return dto.AttendanceDTO{}, err
	}
	return dto.ToAttendanceDTO(rec), nil
}
