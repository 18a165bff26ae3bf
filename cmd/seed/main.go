// Seeds the database with an admin user, a test user, and the digital
// product catalog. Destructive: wipes users and products first.
package main

import (
	"log"

	"github.com/BakhatBug/Keto-Slim/config"
	"github.com/BakhatBug/Keto-Slim/models"
	"github.com/BakhatBug/Keto-Slim/utils"
)

func main() {
	config.LoadEnv()
	db := config.InitDB()

	log.Println("clearing existing users and products")
	if err := db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		log.Fatalf("clearing users: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		log.Fatalf("clearing products: %v", err)
	}

	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		log.Fatalf("hashing admin password: %v", err)
	}
	userHash, err := utils.HashPassword("user123")
	if err != nil {
		log.Fatalf("hashing user password: %v", err)
	}

	users := []models.User{
		{Email: "admin@ketoslim.com", PasswordHash: adminHash, Name: "Admin User", Roles: []string{models.RoleAdmin}},
		{Email: "user@test.com", PasswordHash: userHash, Name: "Test User", Roles: []string{models.RoleUser}},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("creating user %s: %v", users[i].Email, err)
		}
		log.Printf("created user %s", users[i].Email)
	}

	products := []models.Product{
		{
			SKU:         "MEAL-PLAN-7D",
			Name:        "7-Day Keto Meal Plan",
			Description: "Complete 7-day ketogenic meal plan with recipes, shopping list, and nutritional information. Perfect for beginners starting their keto journey.",
			Price:       29.99,
			Currency:    "USD",
			Features: []string{
				"7 days of complete meal plans",
				"Breakfast, lunch, dinner, and snacks",
				"Detailed shopping list",
				"Nutritional macros for each meal",
				"Easy-to-follow recipes",
				"Printable PDF format",
			},
			ImageURL: "https://images.unsplash.com/photo-1490645935967-10de6ba17061",
			Category: models.CategoryMealPlan,
			Stock:    9999, // digital product
			IsActive: true,
		},
		{
			SKU:         "MEAL-PLAN-30D",
			Name:        "30-Day Keto Transformation",
			Description: "Comprehensive 30-day meal plan designed to kickstart your weight loss journey. Includes weekly progress tracking and meal variations.",
			Price:       79.99,
			Currency:    "USD",
			Features: []string{
				"30 days of complete meal plans",
				"Weekly progress tracking sheets",
				"Meal variation options",
				"Macro calculator included",
				"Email support",
				"60+ delicious recipes",
			},
			ImageURL: "https://images.unsplash.com/photo-1498837167922-ddd27525d352",
			Category: models.CategoryMealPlan,
			Stock:    9999,
			IsActive: true,
		},
		{
			SKU:         "SUPP-ELECTRO",
			Name:        "Keto Electrolyte Complex",
			Description: "Balanced sodium, potassium, and magnesium formula to support hydration and energy during ketosis.",
			Price:       24.99,
			Currency:    "USD",
			Features: []string{
				"90 capsules, 30-day supply",
				"No added sugar",
				"Third-party tested",
			},
			ImageURL: "https://images.unsplash.com/photo-1556911220-bff31c812dba",
			Category: models.CategorySupplement,
			Stock:    250,
			IsActive: true,
		},
		{
			SKU:         "GUIDE-KETO-101",
			Name:        "Keto 101 Starter Guide",
			Description: "Everything you need to understand ketosis, macros, and how to stay on track through the first month.",
			Price:       14.99,
			Currency:    "USD",
			Features: []string{
				"80-page illustrated guide",
				"Restaurant ordering cheat sheet",
				"Printable PDF format",
			},
			ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			Category: models.CategoryGuide,
			Stock:    9999,
			IsActive: true,
		},
		{
			SKU:         "BUNDLE-COMPLETE",
			Name:        "Complete Keto Bundle",
			Description: "The 30-day plan, starter guide, and electrolyte complex together at a bundle discount.",
			Price:       99.99,
			Currency:    "USD",
			Features: []string{
				"30-Day Keto Transformation plan",
				"Keto 101 Starter Guide",
				"Keto Electrolyte Complex",
				"Save over 15% vs. buying separately",
			},
			ImageURL: "https://images.unsplash.com/photo-1466637574441-749b8f19452f",
			Category: models.CategoryBundle,
			Stock:    250,
			IsActive: true,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("creating product %s: %v", products[i].SKU, err)
		}
		log.Printf("created product %s", products[i].SKU)
	}

	log.Println("seed complete")
}
