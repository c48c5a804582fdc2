package services

import (
	"context"

	"fleur-api/dto"
	"fleur-api/repositories"
)

type WishlistService struct {
	wishlists *repositories.WishlistRepository
	products  *repositories.ProductRepository
}

func NewWishlistService(wishlists *repositories.WishlistRepository, products *repositories.ProductRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

func (s *WishlistService) Get(ctx context.Context, userID string) (*dto.WishlistDTO, error) {
	wishlist, err := s.wishlists.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]dto.ProductDTO, 0, len(wishlist.ProductIDs))
	for _, id := range wishlist.ProductIDs {
		p, err := s.products.FindByID(ctx, id)
		if err != nil {
			continue
		}
		products = append(products, dto.NewProductDTO(*p))
	}
	return &dto.WishlistDTO{Products: products}, nil
}

func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return ErrProductNotFound
	}
	return s.wishlists.Add(ctx, userID, productID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	return s.wishlists.Remove(ctx, userID, productID)
}
