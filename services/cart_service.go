package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
)

// CartService is the injectable session cart. Every mutation persists
// through the CartStore; prices are always resolved against the current
// catalog at read time, never stored in the cart itself.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*models.CartView, *ServiceError)
	Add(ctx context.Context, sessionID string, bouquetID uuid.UUID) (*models.CartView, *ServiceError)
	SetQuantity(ctx context.Context, sessionID string, bouquetID uuid.UUID, quantity int) (*models.CartView, *ServiceError)
	Remove(ctx context.Context, sessionID string, bouquetID uuid.UUID) (*models.CartView, *ServiceError)
	Clear(ctx context.Context, sessionID string) *ServiceError
}

type cartServiceImpl struct {
	store    repository.CartStore
	bouquets repository.BouquetRepository
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(store repository.CartStore, bouquets repository.BouquetRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{store: store, bouquets: bouquets, logger: logger}
}

func (s *cartServiceImpl) Get(ctx context.Context, sessionID string) (*models.CartView, *ServiceError) {
	cart, svcErr := s.load(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.view(ctx, cart)
}

// Add increments the quantity of an existing line or appends a new one with
// quantity 1. At most one line per bouquet.
func (s *cartServiceImpl) Add(ctx context.Context, sessionID string, bouquetID uuid.UUID) (*models.CartView, *ServiceError) {
	cart, svcErr := s.load(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].BouquetID == bouquetID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{BouquetID: bouquetID, Quantity: 1})
	}

	return s.save(ctx, cart)
}

// SetQuantity overwrites a line's quantity; zero or less removes the line.
func (s *cartServiceImpl) SetQuantity(ctx context.Context, sessionID string, bouquetID uuid.UUID, quantity int) (*models.CartView, *ServiceError) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, bouquetID)
	}

	cart, svcErr := s.load(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	for i := range cart.Items {
		if cart.Items[i].BouquetID == bouquetID {
			cart.Items[i].Quantity = quantity
			return s.save(ctx, cart)
		}
	}
	return nil, errNotFound("Товар не найден в корзине")
}

func (s *cartServiceImpl) Remove(ctx context.Context, sessionID string, bouquetID uuid.UUID) (*models.CartView, *ServiceError) {
	cart, svcErr := s.load(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.BouquetID != bouquetID {
			items = append(items, item)
		}
	}
	cart.Items = items

	return s.save(ctx, cart)
}

func (s *cartServiceImpl) Clear(ctx context.Context, sessionID string) *ServiceError {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return errInternal()
	}
	return nil
}

func (s *cartServiceImpl) load(ctx context.Context, sessionID string) (*models.Cart, *ServiceError) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, errInternal()
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	return cart, nil
}

func (s *cartServiceImpl) save(ctx context.Context, cart *models.Cart) (*models.CartView, *ServiceError) {
	if err := s.store.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, errInternal()
	}
	return s.view(ctx, cart)
}

// view prices the cart against the live catalog. Lines whose bouquet no
// longer exists are skipped and contribute 0 to the total, but their
// quantities still count toward ItemCount.
func (s *cartServiceImpl) view(ctx context.Context, cart *models.Cart) (*models.CartView, *ServiceError) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	itemCount := 0
	for _, item := range cart.Items {
		ids = append(ids, item.BouquetID)
		itemCount += item.Quantity
	}

	bouquets, err := s.bouquets.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to price cart", zap.Error(err))
		return nil, errInternal()
	}
	byID := make(map[uuid.UUID]models.Bouquet, len(bouquets))
	for _, b := range bouquets {
		byID[b.ID] = b
	}

	view := &models.CartView{
		SessionID: cart.SessionID,
		Items:     []models.PricedCartItem{},
		ItemCount: itemCount,
	}
	for _, item := range cart.Items {
		bouquet, ok := byID[item.BouquetID]
		if !ok {
			continue
		}
		subtotal := bouquet.Price * item.Quantity
		view.Items = append(view.Items, models.PricedCartItem{
			BouquetID: item.BouquetID,
			Name:      bouquet.Name,
			Image:     bouquet.Images.First(),
			Price:     bouquet.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		view.Total += subtotal
	}
	return view, nil
}
