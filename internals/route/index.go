package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "coursehub_backend/internals/features/finance/payments/route"
	attendanceRoute "coursehub_backend/internals/features/lms/attendance/route"
	blogRoute "coursehub_backend/internals/features/lms/blogs/route"
	certificateRoute "coursehub_backend/internals/features/lms/certificates/route"
	scheduleRoute "coursehub_backend/internals/features/lms/class_schedules/route"
	corporateRoute "coursehub_backend/internals/features/lms/corporate/route"
	courseRoute "coursehub_backend/internals/features/lms/courses/route"
	enrollmentRoute "coursehub_backend/internals/features/lms/enrollments/route"
	locationRoute "coursehub_backend/internals/features/lms/locations/route"
	userRoute "coursehub_backend/internals/features/users/user/route"
	cache "coursehub_backend/internals/helpers/cache"
	"coursehub_backend/internals/middlewares/auth"
)

// SetupRoutes me-mount seluruh route aplikasi.
// /api/v1/... publik, /api/v1/a/... butuh access token.
func SetupRoutes(app *fiber.App, db *gorm.DB, c *cache.Cache) {
	BaseRoutes(app)

	api := app.Group("/api/v1")

	// ---------- publik ----------
	userRoute.AuthPublicRoutes(api, db)
	courseRoute.CoursePublicRoutes(api, db)
	scheduleRoute.ClassSchedulePublicRoutes(api, db)
	locationRoute.LocationPublicRoutes(api, db)
	blogRoute.BlogPublicRoutes(api, db)
	certificateRoute.CertificatePublicRoutes(api, db)
	corporateRoute.CorporatePublicRoutes(api, db)

	// ---------- private (JWT) ----------
	private := api.Group("/a", auth.AuthMiddleware())

	userRoute.UserPrivateRoutes(private, db)
	attendanceRoute.AllAttendanceRoutes(private, db, c)
	enrollmentRoute.AllEnrollmentRoutes(private, db)
	courseRoute.CourseAdminRoutes(private, db)
	scheduleRoute.ClassScheduleAdminRoutes(private, db)
	locationRoute.LocationAdminRoutes(private, db)
	blogRoute.BlogAdminRoutes(private, db)
	certificateRoute.CertificateAdminRoutes(private, db)
	corporateRoute.CorporateAdminRoutes(private, db)
	paymentRoute.AllPaymentRoutes(private, db)
}
