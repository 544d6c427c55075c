// Command seed loads the catalog data: the menu, the restaurant history
// timeline and the awards list. Running it against an already seeded
// database is a no-op.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"trattoria/cmd"
	"trattoria/internal/adapters/out/postgres/menurepo"
	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/menu"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&menurepo.TimelineEntryDTO{},
		&menurepo.AwardDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	ctx := context.Background()
	repo := menurepo.NewGormMenuRepository(gormDB)

	seeded, err := repo.IsSeeded(ctx)
	if err != nil {
		log.Fatalf("Error checking seed state: %v", err)
	}
	if seeded {
		log.Info("Database already seeded, nothing to do")
		return
	}

	if err = repo.SeedMenuItems(ctx, menuItems()); err != nil {
		log.Fatalf("Error seeding menu items: %v", err)
	}
	if err = repo.SeedTimeline(ctx, timelineEntries()); err != nil {
		log.Fatalf("Error seeding timeline: %v", err)
	}
	if err = repo.SeedAwards(ctx, awards()); err != nil {
		log.Fatalf("Error seeding awards: %v", err)
	}

	log.Info("Database seeded successfully")
}

func getConfigs() cmd.Config {
	return cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func menuItems() []menu.Item {
	now := time.Now().UTC()

	specs := []struct {
		name        string
		description string
		price       string
		category    string
		imageURL    string
	}{
		{"Margherita", "Classic tomato sauce, fresh mozzarella, basil", "12.00", "Pizzas", "/assets/margherita.png"},
		{"Pepperoni", "Tomato sauce, mozzarella, pepperoni", "14.00", "Pizzas", "/assets/pepperoni.png"},
		{"Quattro Formaggi", "Four cheese blend: mozzarella, parmesan, gorgonzola, fontina", "16.00", "Pizzas", "/assets/quattro.png"},
		{"Vegetarian", "Bell peppers, mushrooms, onions, olives, tomatoes", "15.00", "Pizzas", "/assets/vegetarian.png"},
		{"Meat Lovers", "Pepperoni, sausage, bacon, ham", "18.00", "Pizzas", "/assets/meat.png"},
		{"Bruschetta", "Toasted bread, tomatoes, garlic, basil", "8.00", "Appetizers", "/assets/bruschetta.png"},
		{"Garlic Bread", "Fresh baked with garlic butter", "6.00", "Appetizers", "/assets/garlic.png"},
		{"Mozzarella Sticks", "Crispy fried with marinara sauce", "9.00", "Appetizers", "/assets/mozzarella.png"},
		{"Caesar Salad", "Romaine, parmesan, croutons, Caesar dressing", "10.00", "Salads", "/assets/caesar.png"},
		{"Caprese Salad", "Fresh mozzarella, tomatoes, basil, balsamic", "12.00", "Salads", "/assets/caprese.png"},
		{"Tiramisu", "Classic Italian coffee-flavored dessert", "8.00", "Desserts", "/assets/tiramisu.png"},
		{"Cannoli", "Sicilian pastry with sweet ricotta filling", "7.00", "Desserts", "/assets/cannoli.png"},
		{"Italian Soda", "Flavored sparkling water", "4.00", "Beverages", "/assets/soda.png"},
		{"Coffee", "Espresso, Cappuccino, Latte", "4.00", "Beverages", "/assets/coffee.png"},
	}

	items := make([]menu.Item, len(specs))
	for i, spec := range specs {
		price, err := kernel.NewMoneyFromString(spec.price)
		if err != nil {
			log.Fatalf("Error parsing price for %s: %v", spec.name, err)
		}

		items[i] = menu.Item{
			ID:          kernel.NewUUID(),
			Name:        spec.name,
			Description: spec.description,
			Price:       price,
			Category:    spec.category,
			ImageURL:    spec.imageURL,
			Available:   true,
			CreatedAt:   now,
		}
	}

	return items
}

func timelineEntries() []menu.TimelineEntry {
	specs := []struct {
		year        string
		title       string
		description string
	}{
		{"1985", "Opening Day", "Jaanvi Bajaj opened the first location in Naples"},
		{"1995", "Expansion", "Opened second location due to popular demand"},
		{"2005", "International Growth", "First international location in Dubai"},
		{"2015", "30th Anniversary", "Celebrating three decades of excellence"},
		{"2020", "Digital Transformation", "Launched online ordering and delivery"},
		{"2025", "Today", "Serving thousands of happy customers across multiple locations"},
	}

	entries := make([]menu.TimelineEntry, len(specs))
	for i, spec := range specs {
		entries[i] = menu.TimelineEntry{
			ID:          kernel.NewUUID(),
			Year:        spec.year,
			Title:       spec.title,
			Description: spec.description,
			Position:    i + 1,
		}
	}

	return entries
}

func awards() []menu.Award {
	specs := []struct {
		year         string
		title        string
		organization string
	}{
		{"2024", "Michelin Bib Gourmand", "Michelin Guide"},
		{"2023", "Best Italian Restaurant Dubai", "Dubai Food Awards"},
		{"2023", "TripAdvisor Travelers' Choice", "TripAdvisor"},
		{"2022", "Best Pizza in UAE", "Middle East Food Excellence Awards"},
		{"2021", "Hospitality Excellence Award", "Dubai Tourism"},
	}

	result := make([]menu.Award, len(specs))
	for i, spec := range specs {
		result[i] = menu.Award{
			ID:           kernel.NewUUID(),
			Title:        spec.title,
			Organization: spec.organization,
			Year:         spec.year,
			Position:     i + 1,
		}
	}

	return result
}
