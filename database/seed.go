package database

import (
	"log"

	"carbon_zero/config"
	"carbon_zero/constants"
	"carbon_zero/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedData creates the user types and, when ADMIN_EMAIL is set, an administrator.
func SeedData(db *gorm.DB, cfg config.App) {
	userTypes := []model.UserType{
		{ID: constants.USER_TYPE_ADMIN, Name: "admin"},
		{ID: constants.USER_TYPE_USER, Name: "user"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&userTypes).Error; err != nil {
		log.Println("failed to seed user types:", err)
	}

	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}
	admin := model.User{
		Email:          adminEmail,
		HashedPassword: string(bytes),
		Name:           "Admin",
		Lastname:       "Carbon Zero",
		MobilePhone:    "-",
		UserTypeId:     constants.USER_TYPE_ADMIN,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin:", admin.Email, "error:", err)
	}
}
