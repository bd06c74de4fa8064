package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
)

const (
	// MaxRevenueDays caps the revenue-series window.
	MaxRevenueDays     = 90
	defaultRevenueDays = 30
	defaultPopularSize = 5
)

// AnalyticsService computes the admin dashboard numbers on demand; there are
// no stored rollups.
type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, *ServiceError)
	Revenue(ctx context.Context, days int) ([]models.RevenuePoint, *ServiceError)
	PopularBouquets(ctx context.Context, limit int) ([]models.PopularBouquet, *ServiceError)
}

type analyticsServiceImpl struct {
	orders   repository.OrderRepository
	reviews  repository.ReviewRepository
	bouquets repository.BouquetRepository
	logger   *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	orders repository.OrderRepository,
	reviews repository.ReviewRepository,
	bouquets repository.BouquetRepository,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsServiceImpl{orders: orders, reviews: reviews, bouquets: bouquets, logger: logger}
}

func (s *analyticsServiceImpl) Summary(ctx context.Context) (*models.AnalyticsSummary, *ServiceError) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	ordersToday, err := s.orders.CountCreatedSince(ctx, today)
	if err != nil {
		return nil, s.fail("orders today", err)
	}
	monthRevenue, err := s.orders.SumRevenueSince(ctx, monthStart)
	if err != nil {
		return nil, s.fail("month revenue", err)
	}
	pendingReviews, err := s.reviews.CountPending(ctx)
	if err != nil {
		return nil, s.fail("pending reviews", err)
	}
	newOrders, err := s.orders.CountByStatus(ctx, models.OrderStatusNew)
	if err != nil {
		return nil, s.fail("new orders", err)
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, s.fail("total orders", err)
	}
	totalBouquets, err := s.bouquets.Count(ctx)
	if err != nil {
		return nil, s.fail("total bouquets", err)
	}

	return &models.AnalyticsSummary{
		OrdersToday:    ordersToday,
		MonthRevenue:   monthRevenue,
		PendingReviews: pendingReviews,
		NewOrders:      newOrders,
		TotalOrders:    totalOrders,
		TotalBouquets:  totalBouquets,
	}, nil
}

// Revenue returns exactly one point per calendar day for the requested
// window ending today, zero-filled and sorted ascending.
func (s *analyticsServiceImpl) Revenue(ctx context.Context, days int) ([]models.RevenuePoint, *ServiceError) {
	if days <= 0 {
		days = defaultRevenueDays
	}
	if days > MaxRevenueDays {
		days = MaxRevenueDays
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(days - 1))

	orders, err := s.orders.FindRevenueSince(ctx, start)
	if err != nil {
		return nil, s.fail("revenue series", err)
	}

	revenueByDay := make(map[string]int, days)
	for _, order := range orders {
		revenueByDay[order.CreatedAt.Format("2006-01-02")] += order.TotalPrice
	}

	points := make([]models.RevenuePoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		points = append(points, models.RevenuePoint{Date: day, Revenue: revenueByDay[day]})
	}
	return points, nil
}

// PopularBouquets reports the top sellers by quantity across all orders.
// Deleted bouquets stay in the ranking under a placeholder name.
func (s *analyticsServiceImpl) PopularBouquets(ctx context.Context, limit int) ([]models.PopularBouquet, *ServiceError) {
	if limit <= 0 {
		limit = defaultPopularSize
	}

	sales, err := s.orders.TopSellingBouquets(ctx, limit)
	if err != nil {
		return nil, s.fail("top sellers", err)
	}

	ids := make([]uuid.UUID, 0, len(sales))
	for _, row := range sales {
		ids = append(ids, row.BouquetID)
	}

	bouquets, err := s.bouquets.FindByIDs(ctx, ids)
	if err != nil {
		return nil, s.fail("top seller bouquets", err)
	}
	byID := make(map[uuid.UUID]models.Bouquet, len(bouquets))
	for _, b := range bouquets {
		byID[b.ID] = b
	}

	result := make([]models.PopularBouquet, 0, len(sales))
	for _, row := range sales {
		entry := models.PopularBouquet{
			BouquetID: row.BouquetID,
			Name:      "Неизвестный",
			TotalSold: row.TotalSold,
		}
		if b, ok := byID[row.BouquetID]; ok {
			entry.Name = b.Name
			if img := b.Images.First(); img != "" {
				entry.Image = &img
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *analyticsServiceImpl) fail(what string, err error) *ServiceError {
	s.logger.Error("Analytics query failed", zap.String("query", what), zap.Error(err))
	return errInternal()
}
