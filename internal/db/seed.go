package db

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hws-kobayashi-ukyo/coffee/internal/models"
)

var sampleProducts = []models.Product{
	{Name: "エスプレッソ", Description: "濃厚で香り高いエスプレッソコーヒー", Price: 300, Category: "coffee", ImageURL: "/images/espresso.jpg", Stock: 50},
	{Name: "アメリカーノ", Description: "すっきりとした味わいのアメリカーノ", Price: 250, Category: "coffee", ImageURL: "/images/americano.jpg", Stock: 40},
	{Name: "カプチーノ", Description: "クリーミーな泡が特徴のカプチーノ", Price: 350, Category: "coffee", ImageURL: "/images/cappuccino.jpg", Stock: 35},
	{Name: "ラテ", Description: "まろやかなミルクとコーヒーのハーモニー", Price: 400, Category: "coffee", ImageURL: "/images/latte.jpg", Stock: 45},
	{Name: "コーヒー豆（ブラジル）", Description: "高品質なブラジル産コーヒー豆", Price: 1200, Category: "beans", ImageURL: "/images/brazil-beans.jpg", Stock: 20},
	{Name: "コーヒー豆（エチオピア）", Description: "フルーティーな香りのエチオピア産", Price: 1500, Category: "beans", ImageURL: "/images/ethiopia-beans.jpg", Stock: 15},
}

const (
	AdminEmail           = "admin@coffee.com"
	defaultAdminPassword = "admin123"
)

// Seed inserts demo catalog rows and the admin account. It is idempotent:
// products are only inserted while the table is empty, the admin only while
// no admin-flagged user exists, so running it on every start is safe.
func Seed(gdb *gorm.DB) error {

	var productCount int64
	if err := gdb.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("counting products: %w", err)
	}

	if productCount == 0 {
		products := make([]models.Product, len(sampleProducts))
		copy(products, sampleProducts)

		if err := gdb.Create(&products).Error; err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
	}

	var adminCount int64
	if err := gdb.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}

	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing admin password: %w", err)
		}

		admin := models.User{
			Email:        AdminEmail,
			PasswordHash: string(hash),
			Name:         "管理者",
			IsAdmin:      true,
		}

		if err := gdb.Create(&admin).Error; err != nil {
			return fmt.Errorf("seeding admin user: %w", err)
		}
	}

	return nil
}
