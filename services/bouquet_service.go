package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
)

// BouquetService is the catalog business logic.
type BouquetService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Bouquet, *ServiceError)
	Get(ctx context.Context, id uuid.UUID) (*models.Bouquet, *ServiceError)
	Create(ctx context.Context, req *models.BouquetRequest) (*models.Bouquet, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *models.BouquetRequest) (*models.Bouquet, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type bouquetServiceImpl struct {
	repo   repository.BouquetRepository
	logger *zap.Logger
}

// NewBouquetService creates a new BouquetService.
func NewBouquetService(repo repository.BouquetRepository, logger *zap.Logger) BouquetService {
	return &bouquetServiceImpl{repo: repo, logger: logger}
}

func (s *bouquetServiceImpl) List(ctx context.Context, activeOnly bool) ([]models.Bouquet, *ServiceError) {
	bouquets, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("Failed to list bouquets", zap.Error(err))
		return nil, errInternal()
	}
	return bouquets, nil
}

func (s *bouquetServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Bouquet, *ServiceError) {
	bouquet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Букет не найден")
		}
		s.logger.Error("Failed to fetch bouquet", zap.Error(err))
		return nil, errInternal()
	}
	return bouquet, nil
}

func (s *bouquetServiceImpl) Create(ctx context.Context, req *models.BouquetRequest) (*models.Bouquet, *ServiceError) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	bouquet := &models.Bouquet{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Composition: models.StringList(req.Composition),
		Images:      models.StringList(req.Images),
		Size:        req.Size,
		IsActive:    isActive,
	}

	if err := s.repo.Create(ctx, bouquet); err != nil {
		s.logger.Error("Failed to create bouquet", zap.Error(err))
		return nil, errInternal()
	}

	s.logger.Info("Bouquet created",
		zap.String("id", bouquet.ID.String()),
		zap.String("name", bouquet.Name),
	)
	return bouquet, nil
}

func (s *bouquetServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.BouquetRequest) (*models.Bouquet, *ServiceError) {
	bouquet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Букет не найден")
		}
		s.logger.Error("Failed to fetch bouquet for update", zap.Error(err))
		return nil, errInternal()
	}

	bouquet.Name = req.Name
	bouquet.Price = req.Price
	bouquet.Category = req.Category
	bouquet.Description = req.Description
	bouquet.Composition = models.StringList(req.Composition)
	bouquet.Images = models.StringList(req.Images)
	bouquet.Size = req.Size
	if req.IsActive != nil {
		bouquet.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, bouquet); err != nil {
		s.logger.Error("Failed to update bouquet", zap.Error(err))
		return nil, errInternal()
	}
	return bouquet, nil
}

func (s *bouquetServiceImpl) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Букет не найден")
		}
		s.logger.Error("Failed to delete bouquet", zap.Error(err))
		return errInternal()
	}

	s.logger.Info("Bouquet deleted", zap.String("id", id.String()))
	return nil
}
