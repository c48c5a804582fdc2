package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// GetWishlistHandler godoc
// @Summary      Saved products
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.WishlistDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /wishlist [get]
func GetWishlistHandler(wishlistSvc *services.WishlistService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		wishlist, err := wishlistSvc.Get(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, wishlist)
	}
}

// AddToWishlistHandler godoc
// @Summary      Save a product
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        product_id  path      string  true  "product id"
// @Success      200         {object}  dto.MessageResponseDTO
// @Failure      401         {object}  dto.ErrorResponseDTO
// @Failure      404         {object}  dto.ErrorResponseDTO
// @Router       /wishlist/add/{product_id} [post]
func AddToWishlistHandler(wishlistSvc *services.WishlistService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		if err := wishlistSvc.Add(c.Request.Context(), userID, c.Param("product_id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Added to wishlist"})
	}
}

// RemoveFromWishlistHandler godoc
// @Summary      Remove a saved product
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        product_id  path      string  true  "product id"
// @Success      200         {object}  dto.MessageResponseDTO
// @Failure      401         {object}  dto.ErrorResponseDTO
// @Router       /wishlist/remove/{product_id} [delete]
func RemoveFromWishlistHandler(wishlistSvc *services.WishlistService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		if err := wishlistSvc.Remove(c.Request.Context(), userID, c.Param("product_id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Removed from wishlist"})
	}
}
