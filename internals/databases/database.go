package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"namur_backend/internals/configs"

	adModel "namur_backend/internals/features/ads/ad/model"
	adLogModel "namur_backend/internals/features/ads/log/model"
	categoryModel "namur_backend/internals/features/catalog/category/model"
	enquiryModel "namur_backend/internals/features/catalog/enquiry/model"
	productModel "namur_backend/internals/features/catalog/product/model"
	subcategoryModel "namur_backend/internals/features/catalog/subcategory/model"
	cropCalendarModel "namur_backend/internals/features/lands/cropcalendar/model"
	cropPlanModel "namur_backend/internals/features/lands/cropplan/model"
	landModel "namur_backend/internals/features/lands/land/model"
	landMapModel "namur_backend/internals/features/lands/landmap/model"
	landProductModel "namur_backend/internals/features/lands/landproduct/model"
	newsModel "namur_backend/internals/features/news/news/model"
	notificationModel "namur_backend/internals/features/notifications/model"
	adminModel "namur_backend/internals/features/users/admin/model"
	subadminModel "namur_backend/internals/features/users/subadmin/model"
	userModel "namur_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_USER", "postgres"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_NAME", "namur"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] failed to connect to PostgreSQL: %v", err)
	}

	DB = db
	log.Println("[INFO] Connected to PostgreSQL")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] cannot access sql.DB for pool tuning: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate ensures every table exists. Safe to run at every start.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&adminModel.AdminModel{},
		&subadminModel.SubadminModel{},
		&categoryModel.CategoryModel{},
		&subcategoryModel.SubcategoryModel{},
		&productModel.ProductModel{},
		&enquiryModel.ProductEnquiryModel{},
		&adModel.AdModel{},
		&adLogModel.AdLogModel{},
		&landModel.LandModel{},
		&landProductModel.LandProductModel{},
		&cropPlanModel.CropPlanModel{},
		&cropCalendarModel.CropCalendarModel{},
		&landMapModel.LandMapModel{},
		&newsModel.NewsModel{},
		&newsModel.NewsLogModel{},
		&notificationModel.UserFcmTokenModel{},
		&notificationModel.NotificationLogModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Database schema ensured")
}
