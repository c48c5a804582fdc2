package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// RegisterHandler godoc
// @Summary      Register a new account
// @Description  Creates a user, provisions an empty cart, and returns a signed token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequestDTO  true  "registration"
// @Success      200   {object}  dto.AuthResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /auth/register [post]
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := authSvc.Register(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequestDTO  true  "credentials"
// @Success      200   {object}  dto.AuthResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := authSvc.Login(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// MeHandler godoc
// @Summary      Current user profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /auth/me [get]
func MeHandler(authSvc *services.AuthService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c, jwt)
		if !ok {
			return
		}

		user, err := authSvc.Me(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
