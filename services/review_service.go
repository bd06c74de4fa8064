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

// ReviewService owns review submission and moderation.
type ReviewService interface {
	List(ctx context.Context, approvedOnly bool) ([]models.Review, *ServiceError)
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, *ServiceError)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateReviewRequest) (*models.Review, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type reviewServiceImpl struct {
	repo   repository.ReviewRepository
	logger *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ReviewRepository, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{repo: repo, logger: logger}
}

func (s *reviewServiceImpl) List(ctx context.Context, approvedOnly bool) ([]models.Review, *ServiceError) {
	reviews, err := s.repo.FindAll(ctx, approvedOnly)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, errInternal()
	}
	return reviews, nil
}

// Create stores a public submission: unapproved, rating clamped into [1,5],
// display date formatted once at creation time.
func (s *reviewServiceImpl) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, *ServiceError) {
	review := &models.Review{
		Author:     req.Author,
		Text:       req.Text,
		Rating:     models.ClampRating(req.Rating),
		Date:       models.FormatReviewDate(time.Now()),
		IsApproved: false,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, errInternal()
	}

	s.logger.Info("Review submitted", zap.String("id", review.ID.String()))
	return review, nil
}

func (s *reviewServiceImpl) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, *ServiceError) {
	if err := s.repo.SetApproval(ctx, id, approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Отзыв не найден")
		}
		s.logger.Error("Failed to set review approval", zap.Error(err))
		return nil, errInternal()
	}

	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch review after approval change", zap.Error(err))
		return nil, errInternal()
	}

	s.logger.Info("Review moderated",
		zap.String("id", id.String()),
		zap.Bool("approved", approved),
	)
	return review, nil
}

func (s *reviewServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateReviewRequest) (*models.Review, *ServiceError) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Отзыв не найден")
		}
		s.logger.Error("Failed to fetch review for update", zap.Error(err))
		return nil, errInternal()
	}

	review.Author = req.Author
	review.Text = req.Text
	review.Rating = models.ClampRating(req.Rating)
	if req.Date != "" {
		review.Date = req.Date
	}
	review.Highlight = req.Highlight
	review.IsApproved = req.IsApproved

	if err := s.repo.Update(ctx, review); err != nil {
		s.logger.Error("Failed to update review", zap.Error(err))
		return nil, errInternal()
	}
	return review, nil
}

func (s *reviewServiceImpl) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Отзыв не найден")
		}
		s.logger.Error("Failed to delete review", zap.Error(err))
		return errInternal()
	}

	s.logger.Info("Review deleted", zap.String("id", id.String()))
	return nil
}
