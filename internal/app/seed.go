package app

import (
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
)

// Demo accounts created by seedIfEmpty. The passwords are for local
// development only.
const (
	DemoAdminEmail    = "admin@storefront.local"
	DemoAdminPassword = "admin1234"
	DemoUserEmail     = "demo@storefront.local"
	DemoUserPassword  = "demo1234"
)

// seedIfEmpty populates an empty database with demo users and a small
// catalog so the server is usable out of the box.
func (b *Backend) seedIfEmpty() error {
	var count int64
	if err := b.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := b.seedUsers(); err != nil {
		return err
	}
	return b.seedProducts()
}

func (b *Backend) seedUsers() error {
	users := []models.User{
		{Name: "Store Admin", Email: DemoAdminEmail, Password: DemoAdminPassword, Role: models.RoleAdmin},
		{Name: "Demo Customer", Email: DemoUserEmail, Password: DemoUserPassword, Role: models.RoleCustomer},
	}
	for i := range users {
		if err := b.Auth.RegisterUser(&users[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].Email, err)
		}
	}
	return nil
}

func (b *Backend) seedProducts() error {
	now := time.Now()
	saleStart := now.AddDate(0, 0, -7)
	saleEnd := now.AddDate(0, 0, 7)
	expiredStart := now.AddDate(0, -2, 0)
	expiredEnd := now.AddDate(0, -1, -10)

	products := []models.Product{
		{
			Name:          "Runner Classic",
			Description:   "Everyday wool runner with a merino upper.",
			OriginalPrice: 98,
			Images:        []string{"/images/runner-classic-1.jpg", "/images/runner-classic-2.jpg"},
			Colors:        []string{"natural black", "natural grey"},
			Sizes:         []int{260, 265, 270, 275, 280, 285, 290},
			Categories:    []string{"lifestyle"},
			Material:      "wool",
			Functions:     []string{"everyday", "walking"},
			Model:         "runner",
			Gender:        models.GenderMen,
			StockQuantity: 120,
			SalesCount:    4200,
			AverageRating: 4.6,
			CreatedAt:     now.AddDate(0, -6, 0),
		},
		{
			Name:          "Runner Classic W",
			Description:   "Everyday wool runner, women's fit.",
			OriginalPrice: 98,
			Images:        []string{"/images/runner-classic-w-1.jpg"},
			Colors:        []string{"natural white", "rose"},
			Sizes:         []int{260, 265, 270, 275, 280},
			Categories:    []string{"lifestyle"},
			Material:      "wool",
			Functions:     []string{"everyday", "walking"},
			Model:         "runner",
			Gender:        models.GenderWomen,
			StockQuantity: 90,
			SalesCount:    3800,
			AverageRating: 4.5,
			CreatedAt:     now.AddDate(0, -6, 0),
		},
		{
			Name:          "Dasher Tempo",
			Description:   "Lightweight trainer built for tempo runs.",
			OriginalPrice: 135,
			DiscountRate:  0.2,
			SaleStart:     &saleStart,
			SaleEnd:       &saleEnd,
			Images:        []string{"/images/dasher-tempo-1.jpg"},
			Colors:        []string{"blizzard", "thunder"},
			Sizes:         []int{265, 270, 275, 280, 285, 290, 295, 300},
			Categories:    []string{"performance"},
			Material:      "troo",
			Functions:     []string{"running"},
			Model:         "dasher",
			Gender:        models.GenderMen,
			StockQuantity: 60,
			SalesCount:    2100,
			AverageRating: 4.3,
			CreatedAt:     now.AddDate(0, -3, 0),
		},
		{
			Name:          "Dasher Tempo W",
			Description:   "Lightweight trainer built for tempo runs, women's fit.",
			OriginalPrice: 135,
			Images:        []string{"/images/dasher-tempo-w-1.jpg"},
			Colors:        []string{"blizzard"},
			Sizes:         []int{260, 265, 270, 275, 280},
			Categories:    []string{"performance"},
			Material:      "troo",
			Functions:     []string{"running"},
			Model:         "dasher",
			Gender:        models.GenderWomen,
			StockQuantity: 45,
			SalesCount:    1900,
			AverageRating: 4.4,
			CreatedAt:     now.AddDate(0, -3, 0),
		},
		{
			Name:          "Goorumi Slip-On",
			Description:   "Soft knit slip-on for lounging and short trips.",
			OriginalPrice: 85,
			DiscountRate:  0.3,
			SaleStart:     &expiredStart,
			SaleEnd:       &expiredEnd,
			Images:        []string{"/images/goorumi-1.jpg"},
			Colors:        []string{"oat", "charcoal"},
			Sizes:         []int{260, 270, 280, 290},
			Categories:    []string{"lifestyle"},
			Material:      "wool",
			Functions:     []string{"everyday"},
			Model:         "goorumi",
			Gender:        models.GenderUnisex,
			StockQuantity: 70,
			SalesCount:    900,
			AverageRating: 4.1,
			CreatedAt:     now.AddDate(0, -4, 0),
		},
		{
			Name:          "Trailer Grip",
			Description:   "Trail shoe with a lugged outsole for wet ground.",
			OriginalPrice: 148,
			Images:        []string{"/images/trailer-grip-1.jpg"},
			Colors:        []string{"moss", "obsidian"},
			Sizes:         []int{270, 275, 280, 285, 290, 295, 300, 305, 310},
			Categories:    []string{"outdoor"},
			Material:      "troo",
			Functions:     []string{"hiking", "running"},
			Model:         "trailer",
			Gender:        models.GenderMen,
			StockQuantity: 35,
			SalesCount:    1300,
			AverageRating: 4.7,
			CreatedAt:     now.AddDate(0, 0, -14),
		},
		{
			Name:          "Trailer Grip W",
			Description:   "Trail shoe with a lugged outsole, women's fit.",
			OriginalPrice: 148,
			Images:        []string{"/images/trailer-grip-w-1.jpg"},
			Colors:        []string{"moss"},
			Sizes:         []int{260, 265, 270, 275, 280, 285},
			Categories:    []string{"outdoor"},
			Material:      "troo",
			Functions:     []string{"hiking", "running"},
			Model:         "trailer",
			Gender:        models.GenderWomen,
			StockQuantity: 30,
			SalesCount:    1100,
			AverageRating: 4.6,
			CreatedAt:     now.AddDate(0, 0, -10),
		},
		{
			Name:          "Runner Lounge",
			Description:   "Brand new colourway of the classic runner.",
			OriginalPrice: 98,
			Images:        []string{"/images/runner-lounge-1.jpg"},
			Colors:        []string{"sand"},
			Sizes:         []int{260, 265, 270, 275, 280, 285, 290, 295},
			Categories:    []string{"lifestyle"},
			Material:      "wool",
			Functions:     []string{"everyday"},
			Model:         "runner",
			Gender:        models.GenderUnisex,
			StockQuantity: 80,
			SalesCount:    150,
			AverageRating: 4.0,
			CreatedAt:     now.AddDate(0, 0, -5),
		},
		{
			Name:          "Dasher Relay",
			Description:   "Daily trainer with extra heel cushioning.",
			OriginalPrice: 125,
			DiscountRate:  0.15,
			SaleStart:     &saleStart,
			SaleEnd:       &saleEnd,
			Images:        []string{"/images/dasher-relay-1.jpg"},
			Colors:        []string{"thunder", "blizzard"},
			Sizes:         []int{265, 270, 275, 280, 285, 290},
			Categories:    []string{"performance"},
			Material:      "troo",
			Functions:     []string{"running", "walking"},
			Model:         "dasher",
			Gender:        models.GenderWomen,
			StockQuantity: 55,
			SalesCount:    2600,
			AverageRating: 4.2,
			CreatedAt:     now.AddDate(0, -2, 0),
		},
	}

	for i := range products {
		if err := b.Products.CreateProduct(&products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		log.Printf("seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
	}
	return nil
}
