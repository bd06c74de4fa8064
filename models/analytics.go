package models

import "github.com/google/uuid"

// AnalyticsSummary is the admin dashboard headline block.
type AnalyticsSummary struct {
	OrdersToday    int64 `json:"ordersToday"`
	MonthRevenue   int64 `json:"monthRevenue"`
	PendingReviews int64 `json:"pendingReviews"`
	NewOrders      int64 `json:"newOrders"`
	TotalOrders    int64 `json:"totalOrders"`
	TotalBouquets  int64 `json:"totalBouquets"`
}

// RevenuePoint is one calendar day of the revenue series.
type RevenuePoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Revenue int    `json:"revenue"`
}

// PopularBouquet is one row of the top-sellers report. Name and Image are
// the bouquet's current values, or a placeholder when it has been deleted.
type PopularBouquet struct {
	BouquetID uuid.UUID `json:"bouquetId"`
	Name      string    `json:"name"`
	TotalSold int       `json:"totalSold"`
	Image     *string   `json:"image"`
}

// BouquetSales is the raw group-by row behind PopularBouquet.
type BouquetSales struct {
	BouquetID uuid.UUID `json:"bouquetId"`
	TotalSold int       `json:"totalSold"`
}
