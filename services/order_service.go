package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
)

// OrderService owns checkout and the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	List(ctx context.Context, status, from, to string) ([]models.Order, *ServiceError)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	orders   repository.OrderRepository
	bouquets repository.BouquetRepository
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repository.OrderRepository, bouquets repository.BouquetRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{orders: orders, bouquets: bouquets, logger: logger}
}

// Create prices every item against the current catalog exactly once and
// snapshots the result into the order. Later catalog price changes must
// never alter this order's totals.
func (s *orderServiceImpl) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.BouquetID)
	}

	bouquets, err := s.bouquets.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to resolve bouquets for order", zap.Error(err))
		return nil, errInternal()
	}

	byID := make(map[uuid.UUID]models.Bouquet, len(bouquets))
	for _, b := range bouquets {
		byID[b.ID] = b
	}

	totalPrice := 0
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		bouquet, ok := byID[item.BouquetID]
		if !ok {
			return nil, errNotFound("Букет не найден")
		}

		totalPrice += bouquet.Price * item.Quantity
		items = append(items, models.OrderItem{
			BouquetID:    item.BouquetID,
			Quantity:     item.Quantity,
			PriceAtOrder: bouquet.Price,
		})
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		Comment:         req.Comment,
		Status:          models.OrderStatusNew,
		TotalPrice:      totalPrice,
		Items:           items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, errInternal()
	}

	s.logger.Info("Order created",
		zap.String("id", order.ID.String()),
		zap.Int("total_price", order.TotalPrice),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

func (s *orderServiceImpl) List(ctx context.Context, status, from, to string) ([]models.Order, *ServiceError) {
	filter := repository.OrderFilter{}

	if status != "" && status != "all" {
		st := models.OrderStatus(status)
		if !st.Valid() {
			return nil, errBadRequest("Недопустимый статус")
		}
		filter.Status = st
	}

	if from != "" {
		t, _, err := parseTimeBound(from)
		if err != nil {
			return nil, errBadRequest("Неверный формат даты")
		}
		filter.From = &t
	}
	if to != "" {
		t, dateOnly, err := parseTimeBound(to)
		if err != nil {
			return nil, errBadRequest("Неверный формат даты")
		}
		if dateOnly {
			// A bare date as the upper bound covers that whole day.
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &t
	}

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, errInternal()
	}
	return orders, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Заказ не найден")
		}
		s.logger.Error("Failed to fetch order", zap.Error(err))
		return nil, errInternal()
	}
	return order, nil
}

// UpdateStatus accepts any of the five recognized statuses as the target and
// rejects everything else without touching the row.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, *ServiceError) {
	target := models.OrderStatus(status)
	if !target.Valid() {
		return nil, errBadRequest("Недопустимый статус")
	}

	if err := s.orders.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Заказ не найден")
		}
		s.logger.Error("Failed to update order status", zap.Error(err))
		return nil, errInternal()
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch order after status update", zap.Error(err))
		return nil, errInternal()
	}

	s.logger.Info("Order status updated",
		zap.String("id", id.String()),
		zap.String("status", status),
	)
	return order, nil
}

// parseTimeBound accepts a bare date (2006-01-02) or an RFC3339 timestamp.
func parseTimeBound(value string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, true, nil
	}
	if t, err = time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, err
}
