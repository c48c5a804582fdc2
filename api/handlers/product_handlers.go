package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleur-api/services"
)

// ListProductsHandler godoc
// @Summary      Browse the catalog
// @Tags         products
// @Produce      json
// @Param        category      query     string  false  "category filter"
// @Param        scent_family  query     string  false  "scent family filter"
// @Param        min_price     query     number  false  "minimum price"
// @Param        max_price     query     number  false  "maximum price"
// @Param        sort          query     string  false  "newest | price_low | price_high | rating"
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /products [get]
func ListProductsHandler(productSvc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.ListInput{
			Category:    c.Query("category"),
			ScentFamily: c.Query("scent_family"),
			Sort:        c.DefaultQuery("sort", "newest"),
		}
		if raw := c.Query("min_price"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				in.MinPrice = &v
			}
		}
		if raw := c.Query("max_price"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				in.MaxPrice = &v
			}
		}

		products, err := productSvc.List(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// FeaturedProductsHandler godoc
// @Summary      Landing page shelves
// @Description  Bestsellers, new arrivals, and top rated products, four each.
// @Tags         products
// @Produce      json
// @Success      200  {object}  services.FeaturedDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /products/featured [get]
func FeaturedProductsHandler(productSvc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured, err := productSvc.Featured(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, featured)
	}
}

// ProductBySlugHandler godoc
// @Summary      Product detail with recent reviews
// @Tags         products
// @Produce      json
// @Param        slug  path      string  true  "product slug"
// @Success      200   {object}  services.ProductDetailDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /products/{slug} [get]
func ProductBySlugHandler(productSvc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := productSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// CategoriesHandler godoc
// @Summary      Distinct categories and scent families
// @Tags         products
// @Produce      json
// @Success      200  {object}  services.CategoriesDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /categories [get]
func CategoriesHandler(productSvc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := productSvc.Categories(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
