package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/dto"
	"fleur-api/repositories"
)

// ProductService handles catalog browsing and DTO mapping.
type ProductService struct {
	products *repositories.ProductRepository
	reviews  *repositories.ReviewRepository
}

func NewProductService(products *repositories.ProductRepository, reviews *repositories.ReviewRepository) *ProductService {
	return &ProductService{products: products, reviews: reviews}
}

// ListInput mirrors the browse query parameters.
type ListInput struct {
	Category    string
	ScentFamily string
	MinPrice    *float64
	MaxPrice    *float64
	Sort        string
}

func (s *ProductService) List(ctx context.Context, in ListInput) ([]dto.ProductDTO, error) {
	products, err := s.products.List(ctx, repositories.ProductFilter{
		Category:    in.Category,
		ScentFamily: in.ScentFamily,
		MinPrice:    in.MinPrice,
		MaxPrice:    in.MaxPrice,
		Sort:        in.Sort,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProductDTOs(products), nil
}

// FeaturedDTO groups the storefront landing page shelves.
type FeaturedDTO struct {
	Bestsellers []dto.ProductDTO `json:"bestsellers"`
	NewArrivals []dto.ProductDTO `json:"new_arrivals"`
	TopRated    []dto.ProductDTO `json:"top_rated"`
}

func (s *ProductService) Featured(ctx context.Context) (*FeaturedDTO, error) {
	bestsellers, err := s.products.List(ctx, repositories.ProductFilter{Bestseller: true, Limit: 4})
	if err != nil {
		return nil, err
	}
	newArrivals, err := s.products.List(ctx, repositories.ProductFilter{New: true, Limit: 4})
	if err != nil {
		return nil, err
	}
	topRated, err := s.products.List(ctx, repositories.ProductFilter{Sort: "rating", Limit: 4})
	if err != nil {
		return nil, err
	}
	return &FeaturedDTO{
		Bestsellers: dto.NewProductDTOs(bestsellers),
		NewArrivals: dto.NewProductDTOs(newArrivals),
		TopRated:    dto.NewProductDTOs(topRated),
	}, nil
}

// ProductDetailDTO is a product with its recent reviews inlined.
type ProductDetailDTO struct {
	dto.ProductDTO
	Reviews []dto.ReviewDTO `json:"reviews"`
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductDetailDTO, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.ListByProduct(ctx, product.ID, 20)
	if err != nil {
		return nil, err
	}
	return &ProductDetailDTO{
		ProductDTO: dto.NewProductDTO(*product),
		Reviews:    dto.NewReviewDTOs(reviews),
	}, nil
}

// CategoriesDTO lists the browse facets.
type CategoriesDTO struct {
	Categories    []string `json:"categories"`
	ScentFamilies []string `json:"scent_families"`
}

func (s *ProductService) Categories(ctx context.Context) (*CategoriesDTO, error) {
	categories, err := s.products.DistinctStrings(ctx, "category")
	if err != nil {
		return nil, err
	}
	families, err := s.products.DistinctStrings(ctx, "scent_family")
	if err != nil {
		return nil, err
	}
	return &CategoriesDTO{Categories: categories, ScentFamilies: families}, nil
}
