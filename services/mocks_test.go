package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
)

// Hand-rolled mocks for the repository interfaces, shared across the
// service tests in this package. Unset functions fall back to benign zero
// behavior so each test only wires what it cares about.

type mockBouquetRepo struct {
	createFn    func(ctx context.Context, b *models.Bouquet) error
	findAllFn   func(ctx context.Context, activeOnly bool) ([]models.Bouquet, error)
	findByIDFn  func(ctx context.Context, id uuid.UUID) (*models.Bouquet, error)
	findByIDsFn func(ctx context.Context, ids []uuid.UUID) ([]models.Bouquet, error)
	updateFn    func(ctx context.Context, b *models.Bouquet) error
	deleteFn    func(ctx context.Context, id uuid.UUID) error
	countFn     func(ctx context.Context) (int64, error)
}

func (m *mockBouquetRepo) Create(ctx context.Context, b *models.Bouquet) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, b)
}

func (m *mockBouquetRepo) FindAll(ctx context.Context, activeOnly bool) ([]models.Bouquet, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, activeOnly)
}

func (m *mockBouquetRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Bouquet, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockBouquetRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Bouquet, error) {
	if m.findByIDsFn == nil {
		return nil, nil
	}
	return m.findByIDsFn(ctx, ids)
}

func (m *mockBouquetRepo) Update(ctx context.Context, b *models.Bouquet) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, b)
}

func (m *mockBouquetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockBouquetRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx)
}

// catalogOf is a convenience for the common "these bouquets exist" setup.
func catalogOf(bouquets ...models.Bouquet) *mockBouquetRepo {
	return &mockBouquetRepo{
		findByIDsFn: func(_ context.Context, ids []uuid.UUID) ([]models.Bouquet, error) {
			var found []models.Bouquet
			for _, b := range bouquets {
				for _, id := range ids {
					if b.ID == id {
						found = append(found, b)
						break
					}
				}
			}
			return found, nil
		},
	}
}

type mockOrderRepo struct {
	createFn            func(ctx context.Context, o *models.Order) error
	findAllFn           func(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error)
	findByIDFn          func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	updateStatusFn      func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	countFn             func(ctx context.Context) (int64, error)
	countSinceFn        func(ctx context.Context, since time.Time) (int64, error)
	countByStatusFn     func(ctx context.Context, status models.OrderStatus) (int64, error)
	sumRevenueSinceFn   func(ctx context.Context, since time.Time) (int64, error)
	findRevenueSinceFn  func(ctx context.Context, since time.Time) ([]models.Order, error)
	topSellingFn        func(ctx context.Context, limit int) ([]models.BouquetSales, error)
	updateStatusCalls   int
	lastRequestedStatus models.OrderStatus
}

func (m *mockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, o)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	m.updateStatusCalls++
	m.lastRequestedStatus = status
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockOrderRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx)
}

func (m *mockOrderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.countSinceFn == nil {
		return 0, nil
	}
	return m.countSinceFn(ctx, since)
}

func (m *mockOrderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	if m.countByStatusFn == nil {
		return 0, nil
	}
	return m.countByStatusFn(ctx, status)
}

func (m *mockOrderRepo) SumRevenueSince(ctx context.Context, since time.Time) (int64, error) {
	if m.sumRevenueSinceFn == nil {
		return 0, nil
	}
	return m.sumRevenueSinceFn(ctx, since)
}

func (m *mockOrderRepo) FindRevenueSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	if m.findRevenueSinceFn == nil {
		return nil, nil
	}
	return m.findRevenueSinceFn(ctx, since)
}

func (m *mockOrderRepo) TopSellingBouquets(ctx context.Context, limit int) ([]models.BouquetSales, error) {
	if m.topSellingFn == nil {
		return nil, nil
	}
	return m.topSellingFn(ctx, limit)
}

type mockReviewRepo struct {
	createFn       func(ctx context.Context, r *models.Review) error
	findAllFn      func(ctx context.Context, approvedOnly bool) ([]models.Review, error)
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*models.Review, error)
	updateFn       func(ctx context.Context, r *models.Review) error
	setApprovalFn  func(ctx context.Context, id uuid.UUID, approved bool) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	countPendingFn func(ctx context.Context) (int64, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, r *models.Review) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, r)
}

func (m *mockReviewRepo) FindAll(ctx context.Context, approvedOnly bool) ([]models.Review, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, approvedOnly)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockReviewRepo) Update(ctx context.Context, r *models.Review) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, r)
}

func (m *mockReviewRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	if m.setApprovalFn == nil {
		return nil
	}
	return m.setApprovalFn(ctx, id, approved)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockReviewRepo) CountPending(ctx context.Context) (int64, error) {
	if m.countPendingFn == nil {
		return 0, nil
	}
	return m.countPendingFn(ctx)
}
