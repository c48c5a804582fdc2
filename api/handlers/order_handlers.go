package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// CreateOrderHandler godoc
// @Summary      Place an order
// @Description  The total is recomputed from the catalog server-side.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrderCreateRequestDTO  true  "order"
// @Success      200   {object}  dto.OrderDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /orders [post]
func CreateOrderHandler(orderSvc *services.OrderService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.OrderCreateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		order, err := orderSvc.Create(c.Request.Context(), userID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// ListOrdersHandler godoc
// @Summary      Order history, newest first
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   dto.OrderDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /orders [get]
func ListOrdersHandler(orderSvc *services.OrderService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		orders, err := orderSvc.ListByUser(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderHandler godoc
// @Summary      One order, owner only
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "order id"
// @Success      200       {object}  dto.OrderDTO
// @Failure      401       {object}  dto.ErrorResponseDTO
// @Failure      404       {object}  dto.ErrorResponseDTO
// @Router       /orders/{order_id} [get]
func GetOrderHandler(orderSvc *services.OrderService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		order, err := orderSvc.Get(c.Request.Context(), userID, c.Param("order_id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
