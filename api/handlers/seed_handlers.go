package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/repositories"
	"fleur-api/seed"
)

// SeedHandler godoc
// @Summary      Seed the product catalog
// @Description  Inserts the launch catalog when the collection is empty; otherwise a no-op.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /seed [post]
func SeedHandler(products *repositories.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, err := products.Count(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if existing > 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Data already seeded", "products_count": existing})
			return
		}

		count, err := seed.EnsureSeeded(c.Request.Context(), products)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Data seeded successfully", "products_count": count})
	}
}
