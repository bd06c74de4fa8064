package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
	"github.com/florett/florett-backend/services"
)

func newOrderService(orders *mockOrderRepo, bouquets *mockBouquetRepo) services.OrderService {
	return services.NewOrderService(orders, bouquets, zap.NewNop())
}

func validOrderRequest(items ...models.OrderItemRequest) *models.CreateOrderRequest {
	return &models.CreateOrderRequest{
		CustomerName:    "Мария",
		CustomerPhone:   "+7 900 000-00-00",
		DeliveryAddress: "ул. Ленина, 1",
		DeliveryDate:    "2026-09-01",
		DeliveryTime:    "12:00-14:00",
		Items:           items,
	}
}

func TestOrderService_Create_SnapshotsPrices(t *testing.T) {
	b1 := models.Bouquet{ID: uuid.New(), Name: "Утренний туман", Price: 4500}
	b2 := models.Bouquet{ID: uuid.New(), Name: "Летний полдень", Price: 3200}

	var persisted *models.Order
	orders := &mockOrderRepo{
		createFn: func(_ context.Context, o *models.Order) error {
			persisted = o
			return nil
		},
	}
	svc := newOrderService(orders, catalogOf(b1, b2))

	order, svcErr := svc.Create(context.Background(), validOrderRequest(
		models.OrderItemRequest{BouquetID: b1.ID, Quantity: 2},
		models.OrderItemRequest{BouquetID: b2.ID, Quantity: 1},
	))

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, 2*4500+3200, order.TotalPrice)

	assert.NotNil(t, persisted)
	assert.Len(t, persisted.Items, 2)
	assert.Equal(t, 4500, persisted.Items[0].PriceAtOrder)
	assert.Equal(t, 3200, persisted.Items[1].PriceAtOrder)

	// The invariant: total equals the sum of snapshotted line prices.
	sum := 0
	for _, item := range persisted.Items {
		sum += item.PriceAtOrder * item.Quantity
	}
	assert.Equal(t, persisted.TotalPrice, sum)
}

func TestOrderService_Create_UnknownBouquet(t *testing.T) {
	known := models.Bouquet{ID: uuid.New(), Price: 4500}
	orders := &mockOrderRepo{}
	svc := newOrderService(orders, catalogOf(known))

	_, svcErr := svc.Create(context.Background(), validOrderRequest(
		models.OrderItemRequest{BouquetID: known.ID, Quantity: 1},
		models.OrderItemRequest{BouquetID: uuid.New(), Quantity: 1},
	))

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "Букет не найден", svcErr.Message)
}

func TestOrderService_UpdateStatus_InvalidTarget(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newOrderService(orders, &mockBouquetRepo{})

	_, svcErr := svc.UpdateStatus(context.Background(), uuid.New(), "shipped")

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Недопустимый статус", svcErr.Message)
	// The repository must not be touched on a rejected transition.
	assert.Equal(t, 0, orders.updateStatusCalls)
}

func TestOrderService_UpdateStatus_AllRecognizedTargets(t *testing.T) {
	id := uuid.New()
	orders := &mockOrderRepo{
		updateStatusFn: func(_ context.Context, _ uuid.UUID, _ models.OrderStatus) error {
			return nil
		},
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: id}, nil
		},
	}
	svc := newOrderService(orders, &mockBouquetRepo{})

	for _, status := range []string{"new", "confirmed", "in_progress", "delivered", "cancelled"} {
		_, svcErr := svc.UpdateStatus(context.Background(), id, status)
		assert.Nil(t, svcErr, status)
	}
	assert.Equal(t, 5, orders.updateStatusCalls)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	orders := &mockOrderRepo{
		updateStatusFn: func(_ context.Context, _ uuid.UUID, _ models.OrderStatus) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := newOrderService(orders, &mockBouquetRepo{})

	_, svcErr := svc.UpdateStatus(context.Background(), uuid.New(), "confirmed")

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestOrderService_List_FilterParsing(t *testing.T) {
	var captured repository.OrderFilter
	orders := &mockOrderRepo{
		findAllFn: func(_ context.Context, filter repository.OrderFilter) ([]models.Order, error) {
			captured = filter
			return nil, nil
		},
	}
	svc := newOrderService(orders, &mockBouquetRepo{})

	_, svcErr := svc.List(context.Background(), "confirmed", "2026-08-01", "2026-08-31")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusConfirmed, captured.Status)
	if assert.NotNil(t, captured.From) && assert.NotNil(t, captured.To) {
		assert.True(t, captured.From.Before(*captured.To))
		// A bare date upper bound covers the entire day.
		assert.Equal(t, 31, captured.To.Day())
		assert.Equal(t, 23, captured.To.Hour())
	}
}

func TestOrderService_List_AllStatusMeansNoFilter(t *testing.T) {
	var captured repository.OrderFilter
	orders := &mockOrderRepo{
		findAllFn: func(_ context.Context, filter repository.OrderFilter) ([]models.Order, error) {
			captured = filter
			return nil, nil
		},
	}
	svc := newOrderService(orders, &mockBouquetRepo{})

	_, svcErr := svc.List(context.Background(), "all", "", "")
	assert.Nil(t, svcErr)
	assert.Empty(t, captured.Status)
	assert.Nil(t, captured.From)
	assert.Nil(t, captured.To)
}

func TestOrderService_List_InvalidStatus(t *testing.T) {
	svc := newOrderService(&mockOrderRepo{}, &mockBouquetRepo{})

	_, svcErr := svc.List(context.Background(), "bogus", "", "")
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}
