package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/constants"
	userModel "coursehub_backend/internals/features/users/user/model"
)

// Run membuat data awal yang idempotent (aman dijalankan berulang).
func Run(db *gorm.DB) {
	seedAdminUser(db)
}

func seedAdminUser(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@coursehub.local")

	var exists int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&exists).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if exists > 0 {
		return
	}

	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "changeme-now")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserFirstName: "Course",
		UserLastName:  "Admin",
		UserEmail:     email,
		UserPassword:  string(hash),
		UserRole:      constants.RoleAdmin,
		UserIsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("✅ Admin awal dibuat: %s", email)
}
