package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/certificates/controller"
)

// CertificatePublicRoutes: verifikasi nomor sertifikat terbuka untuk umum.
func CertificatePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)

	certificates := api.Group("/certificates")
	certificates.Get("/verify/:number", ctrl.VerifyCertificate)
}

func CertificateAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)

	certificates := api.Group("/certificates")
	certificates.Post("/", ctrl.IssueCertificate)
	certificates.Get("/student/:student_id", ctrl.GetCertificatesByStudent)
	certificates.Delete("/:id", ctrl.RevokeCertificate)
}
