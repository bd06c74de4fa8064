package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
)

// BouquetRepository defines the data access surface for the catalog.
type BouquetRepository interface {
	Create(ctx context.Context, bouquet *models.Bouquet) error
	FindAll(ctx context.Context, activeOnly bool) ([]models.Bouquet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Bouquet, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Bouquet, error)
	Update(ctx context.Context, bouquet *models.Bouquet) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// GormBouquetRepository implements BouquetRepository using GORM.
type GormBouquetRepository struct {
	db *gorm.DB
}

// NewGormBouquetRepository creates a new GormBouquetRepository.
func NewGormBouquetRepository(db *gorm.DB) BouquetRepository {
	return &GormBouquetRepository{db: db}
}

func (r *GormBouquetRepository) Create(ctx context.Context, bouquet *models.Bouquet) error {
	return r.db.WithContext(ctx).Create(bouquet).Error
}

// FindAll returns the catalog newest-first. With activeOnly it is the
// storefront view, otherwise the admin view.
func (r *GormBouquetRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.Bouquet, error) {
	var bouquets []models.Bouquet
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&bouquets).Error; err != nil {
		return nil, err
	}
	return bouquets, nil
}

func (r *GormBouquetRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Bouquet, error) {
	var bouquet models.Bouquet
	if err := r.db.WithContext(ctx).First(&bouquet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bouquet, nil
}

func (r *GormBouquetRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Bouquet, error) {
	var bouquets []models.Bouquet
	if len(ids) == 0 {
		return bouquets, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&bouquets).Error; err != nil {
		return nil, err
	}
	return bouquets, nil
}

func (r *GormBouquetRepository) Update(ctx context.Context, bouquet *models.Bouquet) error {
	return r.db.WithContext(ctx).Save(bouquet).Error
}

// Delete soft-deletes a bouquet. Order items keep their reference; catalog
// reads stop seeing it.
func (r *GormBouquetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Bouquet{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormBouquetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bouquet{}).Count(&count).Error
	return count, err
}
