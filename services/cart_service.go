package services

import (
	"context"
	"math"

	"fleur-api/dto"
	"fleur-api/models"
	"fleur-api/repositories"
)

// CartService manages per-user carts and enriches cart lines with catalog
// data.
type CartService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService(carts *repositories.CartRepository, products *repositories.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the cart with product details and the running total. Lines
// whose product has left the catalog are silently skipped.
func (s *CartService) Get(ctx context.Context, userID string) (*dto.CartDTO, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CartItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		items = append(items, dto.CartItemDTO{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  item.Quantity,
			Size:      product.Size,
		})
	}
	return &dto.CartDTO{Items: items, Total: cartTotal(items)}, nil
}

// cartTotal sums line prices and rounds to two decimals once at the end,
// so per-line rounding drift cannot accumulate.
func cartTotal(items []dto.CartItemDTO) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// Add increments the quantity when the product is already in the cart.
func (s *CartService) Add(ctx context.Context, userID string, req dto.CartItemRequestDTO) error {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return ErrProductNotFound
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity += req.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{ProductID: req.ProductID, Quantity: req.Quantity})
	}
	return s.carts.SaveItems(ctx, userID, cart.Items)
}

// Update sets a line's quantity; zero or less removes the line.
func (s *CartService) Update(ctx context.Context, userID, productID string, quantity int) error {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == productID {
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	return s.carts.SaveItems(ctx, userID, items)
}

func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	return s.Update(ctx, userID, productID, 0)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}
