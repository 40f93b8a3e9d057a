package database

import (
	"log"

	paymentModel "coursehub_backend/internals/features/finance/payments/model"
	attendanceModel "coursehub_backend/internals/features/lms/attendance/model"
	blogModel "coursehub_backend/internals/features/lms/blogs/model"
	certificateModel "coursehub_backend/internals/features/lms/certificates/model"
	scheduleModel "coursehub_backend/internals/features/lms/class_schedules/model"
	corporateModel "coursehub_backend/internals/features/lms/corporate/model"
	courseModel "coursehub_backend/internals/features/lms/courses/model"
	enrollmentModel "coursehub_backend/internals/features/lms/enrollments/model"
	locationModel "coursehub_backend/internals/features/lms/locations/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan AutoMigrate untuk semua tabel aplikasi.
// Urutan mengikuti dependensi FK (parent dulu).
func MigrateAll() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&locationModel.LocationModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseSessionModel{},
		&scheduleModel.ClassScheduleModel{},
		&enrollmentModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&certificateModel.CertificateModel{},
		&corporateModel.CorporateRequestModel{},
		&blogModel.BlogModel{},
		&paymentModel.PaymentModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
