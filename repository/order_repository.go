package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
)

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status models.OrderStatus // empty means all statuses
	From   *time.Time         // inclusive creation-time bounds
	To     *time.Time
}

// OrderRepository defines the data access surface for orders, including the
// read-only aggregations behind the analytics endpoints.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error

	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	SumRevenueSince(ctx context.Context, since time.Time) (int64, error)
	FindRevenueSince(ctx context.Context, since time.Time) ([]models.Order, error)
	TopSellingBouquets(ctx context.Context, limit int) ([]models.BouquetSales, error)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order together with its line items in one transaction.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindAll returns orders newest-first with items and their current bouquet
// data attached. A soft-deleted bouquet leaves item.Bouquet nil.
func (r *GormOrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.WithContext(ctx).
		Preload("Items.Bouquet").
		Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Bouquet").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus writes only the status column; TotalPrice and the items stay
// untouched no matter what the catalog looks like now.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// SumRevenueSince totals non-cancelled orders created at or after since.
func (r *GormOrderRepository) SumRevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("created_at >= ? AND status <> ?", since, models.OrderStatusCancelled).
		Scan(&sum).Error
	return sum, err
}

// FindRevenueSince returns the non-cancelled orders feeding the revenue
// series; only total_price and created_at are selected.
func (r *GormOrderRepository) FindRevenueSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("total_price", "created_at").
		Where("created_at >= ? AND status <> ?", since, models.OrderStatusCancelled).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// TopSellingBouquets groups order items by bouquet and sums quantities.
func (r *GormOrderRepository) TopSellingBouquets(ctx context.Context, limit int) ([]models.BouquetSales, error) {
	var rows []models.BouquetSales
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("bouquet_id, SUM(quantity) AS total_sold").
		Group("bouquet_id").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
