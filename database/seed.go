package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
)

// Seed inserts the demo catalog and reviews when the tables are empty. Used
// for local development and staging environments.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Bouquet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	bouquets := []models.Bouquet{
		{
			Name:        "Утренний туман",
			Price:       4500,
			Category:    models.CategoryDate,
			Description: "Нежный и воздушный букет в пастельных тонах. Идеально подходит для первого свидания или трепетного признания в чувствах.",
			Composition: models.StringList{"Пионовидные розы", "Эустома", "Эвкалипт", "Маттиола"},
			Images:      models.StringList{"https://i.ibb.co/Jj5VdLF9/Gemini-Generated-Image-njjfq8njjfq8njjf.png"},
			Size:        "35 × 40 см",
			IsActive:    true,
		},
		{
			Name:        "Винтажная роза",
			Price:       5200,
			Category:    models.CategoryBirthday,
			Description: "Глубокие оттенки пыльной розы и бордо. Благородный выбор для подарка коллеге, маме или близкой подруге.",
			Composition: models.StringList{"Розы капучино", "Астранция", "Темная листва", "Георгины"},
			Images:      models.StringList{"https://i.ibb.co/kgQYbGKV/Gemini-Generated-Image-qpen7pqpen7pqpen.png"},
			Size:        "40 × 45 см",
			IsActive:    true,
		},
		{
			Name:        "Белоснежная мечта",
			Price:       6800,
			Category:    models.CategoryWedding,
			Description: "Классика в современном прочтении. Охапка белых цветов, символизирующих чистоту и начало новой истории.",
			Composition: models.StringList{"Белые пионы", "Гортензия", "Ранункулюсы", "Лентискус"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1523694576729-dc99e9c0f9b4?q=80&w=1200&auto=format&fit=crop"},
			Size:        "45 × 50 см",
			IsActive:    true,
		},
		{
			Name:        "Летний полдень",
			Price:       3200,
			Category:    models.CategoryJustBecause,
			Description: "Яркий и солнечный букет без повода. Просто чтобы порадовать близкого человека.",
			Composition: models.StringList{"Подсолнухи", "Ромашки", "Хризантемы"},
			Images:      models.StringList{"https://i.ibb.co/2Y5qKXYd/get-photo-php-2.jpg"},
			Size:        "30 × 35 см",
			IsActive:    true,
		},
	}
	if err := db.Create(&bouquets).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{
			Author:     "Анна",
			Text:       "Букет простоял почти две недели! Очень довольна, спасибо флористам.",
			Rating:     5,
			Date:       "12 мая 2025 г.",
			Highlight:  true,
			IsApproved: true,
		},
		{
			Author:     "Дмитрий",
			Text:       "Заказывал жене на годовщину, доставили точно в срок.",
			Rating:     5,
			Date:       "3 июня 2025 г.",
			IsApproved: true,
		},
	}
	if err := db.Create(&reviews).Error; err != nil {
		return err
	}

	logger.Info("Seeded demo catalog",
		zap.Int("bouquets", len(bouquets)),
		zap.Int("reviews", len(reviews)),
	)
	return nil
}
