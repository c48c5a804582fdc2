package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/auth"
	"fleur-api/dto"
	"fleur-api/services"
)

// ChatHandler godoc
// @Summary      Ask the fragrance assistant
// @Description  Open to guests. A missing session_id starts a fresh conversation; the reply degrades to a friendly fallback when the model is unavailable.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequestDTO  true  "chat message"
// @Success      200   {object}  dto.ChatResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /ai/chat [post]
func ChatHandler(aiSvc *services.AIService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := optionalUserID(c, jwt)
		if !ok {
			return
		}

		var req dto.ChatRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := aiSvc.Chat(c.Request.Context(), userID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ScentFinderHandler godoc
// @Summary      Quiz-based scent recommendations
// @Description  Takes the four quiz answers and always returns exactly three catalog products.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ScentFinderRequestDTO  true  "quiz answers"
// @Success      200   {object}  dto.ScentFinderResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /ai/scent-finder [post]
func ScentFinderHandler(aiSvc *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ScentFinderRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := aiSvc.ScentFinder(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// IdentifyPerfumeHandler godoc
// @Summary      Identify a perfume from a photo
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ImageAnalysisRequestDTO  true  "image reference"
// @Success      200   {object}  dto.ImageAnalysisResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /ai/identify-perfume [post]
func IdentifyPerfumeHandler(aiSvc *services.AIService, jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := optionalUserID(c, jwt); !ok {
			return
		}

		var req dto.ImageAnalysisRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, err := aiSvc.IdentifyPerfume(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
