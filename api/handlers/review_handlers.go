package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// CreateReviewHandler godoc
// @Summary      Review a product
// @Description  One review per user per product. The product's rating and review count refresh on success.
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ReviewCreateRequestDTO  true  "review"
// @Success      200   {object}  dto.ReviewDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /reviews [post]
func CreateReviewHandler(reviewSvc *services.ReviewService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.ReviewCreateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		review, err := reviewSvc.Create(c.Request.Context(), userID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// ListReviewsHandler godoc
// @Summary      Reviews for a product, newest first
// @Tags         reviews
// @Produce      json
// @Param        product_id  path      string  true  "product id"
// @Success      200         {array}   dto.ReviewDTO
// @Failure      500         {object}  dto.ErrorResponseDTO
// @Router       /reviews/{product_id} [get]
func ListReviewsHandler(reviewSvc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := reviewSvc.ListByProduct(c.Request.Context(), c.Param("product_id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
