package main

import (
	"log"

	"packaging-catalog-be/internal/config"
	"packaging-catalog-be/internal/model"
	"packaging-catalog-be/pkg/database"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	log.Println("Starting database seed...")

	// Clear existing catalog data
	log.Println("Clearing existing data...")
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.Product{}).Error; err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}
	for _, m := range []interface{}{&model.Category{}, &model.Partner{}, &model.PriceList{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	// Categories
	log.Println("Creating categories...")
	categories := []*model.Category{
		{Name: "Картонная упаковка"},
		{Name: "Пластиковая упаковка"},
		{Name: "Бумажная упаковка"},
		{Name: "Термоусадочная пленка"},
		{Name: "Стрейч-пленка"},
	}
	for _, c := range categories {
		if err := db.Create(c).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", c.Name, err)
		}
	}
	log.Printf("Created %d categories", len(categories))

	// Products
	log.Println("Creating products...")
	products := []*model.Product{
		{
			SKU:             "BOX-001",
			Name:            "Гофрокороб 300x200x200 мм",
			Price:           45.5,
			Unit:            "шт",
			CategoryId:      categories[0].Id,
			Description:     "Трехслойный гофрокороб из бурого картона марки Т-22",
			Images:          datatypes.JSONSlice[string]{"/products/box-001.jpg"},
			WholesalePrice:  floatPtr(42.0),
			WholesaleAmount: intPtr(100),
			HeatProduct:     true,
		},
		{
			SKU:             "BOX-002",
			Name:            "Гофрокороб 400x300x300 мм",
			Price:           68.0,
			Unit:            "шт",
			CategoryId:      categories[0].Id,
			Description:     "Трехслойный гофрокороб из бурого картона марки Т-23",
			Images:          datatypes.JSONSlice[string]{"/products/box-002.jpg"},
			WholesalePrice:  floatPtr(63.0),
			WholesaleAmount: intPtr(100),
		},
		{
			SKU:             "BOX-003",
			Name:            "Гофрокороб 600x400x400 мм",
			Price:           125.0,
			Unit:            "шт",
			CategoryId:      categories[0].Id,
			Description:     "Пятислойный гофрокороб усиленный марки П-33",
			Images:          datatypes.JSONSlice[string]{"/products/box-003.jpg"},
			WholesalePrice:  floatPtr(115.0),
			WholesaleAmount: intPtr(50),
		},
		{
			SKU:             "CONT-001",
			Name:            "Пластиковый контейнер 500 мл",
			Price:           12.5,
			Unit:            "шт",
			CategoryId:      categories[1].Id,
			Description:     "Прозрачный пищевой контейнер с крышкой",
			Images:          datatypes.JSONSlice[string]{"/products/cont-001.jpg"},
			WholesalePrice:  floatPtr(11.0),
			WholesaleAmount: intPtr(500),
			HeatProduct:     true,
		},
		{
			SKU:             "CONT-002",
			Name:            "Пластиковый контейнер 1000 мл",
			Price:           18.0,
			Unit:            "шт",
			CategoryId:      categories[1].Id,
			Description:     "Прозрачный пищевой контейнер с крышкой",
			Images:          datatypes.JSONSlice[string]{"/products/cont-002.jpg"},
			WholesalePrice:  floatPtr(16.0),
			WholesaleAmount: intPtr(500),
		},
		{
			SKU:             "PKT-001",
			Name:            "Крафт-пакет с кручеными ручками",
			Price:           22.0,
			Unit:            "шт",
			CategoryId:      categories[2].Id,
			Description:     "Бумажный пакет из крафт-бумаги 240x140x280 мм",
			Images:          datatypes.JSONSlice[string]{"/products/pkt-001.jpg"},
			WholesalePrice:  floatPtr(19.5),
			WholesaleAmount: intPtr(300),
		},
		{
			SKU:         "FLM-001",
			Name:        "Термоусадочная пленка ПВХ 450 мм",
			Price:       1450.0,
			Unit:        "рулон",
			CategoryId:  categories[3].Id,
			Description: "Пленка термоусадочная ПВХ, ширина 450 мм, 15 мкм",
			Images:      datatypes.JSONSlice[string]{"/products/flm-001.jpg"},
		},
		{
			SKU:         "STR-001",
			Name:        "Стрейч-пленка 500 мм 20 мкм",
			Price:       890.0,
			Unit:        "рулон",
			CategoryId:  categories[4].Id,
			Description: "Упаковочная стрейч-пленка для ручной обмотки паллет",
			Images:      datatypes.JSONSlice[string]{"/products/str-001.jpg"},
			HeatProduct: true,
		},
	}
	for _, p := range products {
		if err := db.Create(p).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", p.SKU, err)
		}
	}
	log.Printf("Created %d products", len(products))

	// Partners
	log.Println("Creating partners...")
	partners := []*model.Partner{
		{Name: "Упак-Сервис", Description: "Поставщик гофрокартона"},
		{Name: "ПластТара", Description: "Производитель пластиковой тары"},
	}
	for _, p := range partners {
		if err := db.Create(p).Error; err != nil {
			log.Fatalf("Failed to create partner %q: %v", p.Name, err)
		}
	}
	log.Printf("Created %d partners", len(partners))

	log.Println("Seed completed successfully")
}
