package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
)

// requireUserID parses the Authorization header on endpoints that demand a
// logged-in user. On failure it writes a 401 response and returns false.
func requireUserID(c *gin.Context, jwt *auth.JWTManager) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "missing_authorization_header"})
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_authorization_header"})
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "empty_token"})
		return "", false
	}

	userID, err := jwt.Parse(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_token"})
		return "", false
	}
	return userID, true
}

// optionalUserID is for endpoints open to guests. A missing header yields
// an empty user id; a present but invalid token still fails with 401.
func optionalUserID(c *gin.Context, jwt *auth.JWTManager) (string, bool) {
	if c.GetHeader("Authorization") == "" {
		return "", true
	}
	return requireUserID(c, jwt)
}
