package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/dto"
	"fleur-api/logger"
	"fleur-api/models"
	"fleur-api/repositories"
)

type ReviewService struct {
	reviews  *repositories.ReviewRepository
	products *repositories.ProductRepository
	users    *repositories.UserRepository
}

func NewReviewService(reviews *repositories.ReviewRepository, products *repositories.ProductRepository, users *repositories.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

// Create stores the review and refreshes the product's aggregate rating.
func (s *ReviewService) Create(ctx context.Context, userID string, req dto.ReviewCreateRequestDTO) (*dto.ReviewDTO, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		UserID:    userID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}

	if err := s.refreshProductStats(ctx, req.ProductID); err != nil {
		logger.ErrorWithFields("failed to refresh product rating", logger.Fields{
			"product_id": req.ProductID,
			"error":      err.Error(),
		})
	}

	d := dto.NewReviewDTO(*review)
	return &d, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]dto.ReviewDTO, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID, 50)
	if err != nil {
		return nil, err
	}
	return dto.NewReviewDTOs(reviews), nil
}

func (s *ReviewService) refreshProductStats(ctx context.Context, productID string) error {
	avg, err := s.reviews.AverageByProduct(ctx, productID)
	if err != nil {
		return err
	}
	count, err := s.reviews.CountByProduct(ctx, productID)
	if err != nil {
		return err
	}
	rounded := math.Round(avg*10) / 10
	return s.products.IncrementReviewStats(ctx, productID, rounded, int(count))
}
