package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// StripeCheckoutHandler godoc
// @Summary      Start a hosted Stripe checkout
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CheckoutRequestDTO  true  "checkout items"
// @Success      200   {object}  dto.CheckoutSessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /checkout/stripe [post]
func StripeCheckoutHandler(checkoutSvc *services.CheckoutService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.CheckoutRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		session, err := checkoutSvc.StartStripe(c.Request.Context(), userID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// CheckoutStatusHandler godoc
// @Summary      Poll a Stripe session
// @Description  The first paid observation confirms the order and clears the cart.
// @Tags         checkout
// @Security     BearerAuth
// @Produce      json
// @Param        session_id  path      string  true  "stripe session id"
// @Success      200         {object}  dto.CheckoutStatusDTO
// @Failure      401         {object}  dto.ErrorResponseDTO
// @Failure      404         {object}  dto.ErrorResponseDTO
// @Failure      503         {object}  dto.ErrorResponseDTO
// @Router       /checkout/status/{session_id} [get]
func CheckoutStatusHandler(checkoutSvc *services.CheckoutService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireUserID(c, jwt); !ok {
			return
		}

		status, err := checkoutSvc.StripeStatus(c.Request.Context(), c.Param("session_id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

// RazorpayOrderHandler godoc
// @Summary      Create a Razorpay order
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CheckoutRequestDTO  true  "checkout items"
// @Success      200   {object}  dto.RazorpayOrderDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /checkout/razorpay [post]
func RazorpayOrderHandler(checkoutSvc *services.CheckoutService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.CheckoutRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		order, err := checkoutSvc.CreateRazorpayOrder(c.Request.Context(), userID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// RazorpayVerifyHandler godoc
// @Summary      Verify a Razorpay payment
// @Description  Validates the provider signature and confirms the order once.
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RazorpayVerifyRequestDTO  true  "payment confirmation"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /checkout/razorpay/verify [post]
func RazorpayVerifyHandler(checkoutSvc *services.CheckoutService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireUserID(c, jwt); !ok {
			return
		}

		var req dto.RazorpayVerifyRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		if err := checkoutSvc.VerifyRazorpay(c.Request.Context(), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Payment verified"})
	}
}

// StripeWebhookHandler godoc
// @Summary      Process a Stripe webhook event
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /webhook/stripe [post]
func StripeWebhookHandler(checkoutSvc *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "error"})
			return
		}
		signature := c.GetHeader("Stripe-Signature")

		if err := checkoutSvc.HandleStripeWebhook(c.Request.Context(), payload, signature); err != nil {
			if err == services.ErrPaymentsDisabled {
				respondServiceError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "processed"})
	}
}
