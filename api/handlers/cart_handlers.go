package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// GetCartHandler godoc
// @Summary      Current cart with totals
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.CartDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /cart [get]
func GetCartHandler(cartSvc *services.CartService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		cart, err := cartSvc.Get(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddToCartHandler godoc
// @Summary      Add an item to the cart
// @Description  Adding a product already in the cart increments its quantity.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CartItemRequestDTO  true  "cart line"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /cart/add [post]
func AddToCartHandler(cartSvc *services.CartService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.CartItemRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		if err := cartSvc.Add(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Item added to cart"})
	}
}

// UpdateCartHandler godoc
// @Summary      Set a cart line quantity
// @Description  A quantity of zero or less removes the line.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CartUpdateRequestDTO  true  "cart line"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /cart/update [put]
func UpdateCartHandler(cartSvc *services.CartService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.CartUpdateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		if err := cartSvc.Update(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Cart updated"})
	}
}

// RemoveFromCartHandler godoc
// @Summary      Remove a cart line
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Param        product_id  path      string  true  "product id"
// @Success      200         {object}  dto.MessageResponseDTO
// @Failure      401         {object}  dto.ErrorResponseDTO
// @Router       /cart/remove/{product_id} [delete]
func RemoveFromCartHandler(cartSvc *services.CartService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		if err := cartSvc.Remove(c.Request.Context(), userID, c.Param("product_id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Item removed from cart"})
	}
}

// ClearCartHandler godoc
// @Summary      Empty the cart
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /cart/clear [delete]
func ClearCartHandler(cartSvc *services.CartService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		if err := cartSvc.Clear(c.Request.Context(), userID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Cart cleared"})
	}
}
