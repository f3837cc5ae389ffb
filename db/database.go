package db

import (
	"fmt"
	"log"

	"github.com/linskybing/crf-go/config"
	"github.com/linskybing/crf-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	Migrate()

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate applies the schema and seeds the static catalogs.
func Migrate() {
	if err := DB.AutoMigrate(
		&models.Department{},
		&models.Category{},
		&models.Factor{},
		&models.Role{},
		&models.User{},
		&models.ApplicationStatus{},
		&models.Crf{},
		&models.CrfStatusTimeline{},
		&models.CrfRemark{},
		&models.CrfAttachment{},
		&models.Notification{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	seedStatuses()
	seedRoles()
}

// seedStatuses keeps application_statuses aligned with the status catalog.
// The row ids are the workflow status codes and must stay stable.
func seedStatuses() {
	for _, code := range models.StatusCatalog() {
		status := models.ApplicationStatus{ID: uint(code), Status: code.Label()}
		if err := DB.Where(models.ApplicationStatus{ID: uint(code)}).
			FirstOrCreate(&status).Error; err != nil {
			log.Printf("Failed to seed status %d: %v", code, err)
		}
	}
}

func seedRoles() {
	roles := []string{
		models.RoleUser,
		models.RoleHOU,
		models.RoleITDAdmin,
		models.RoleITDPIC,
		models.RoleVendorAdmin,
		models.RoleVendorPIC,
		models.RoleTP,
	}
	for _, name := range roles {
		role := models.Role{Name: name}
		if err := DB.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			log.Printf("Failed to seed role %s: %v", name, err)
		}
	}
}
