package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleur-api/dto"
	"fleur-api/services"
)

// NewsletterSubscribeHandler godoc
// @Summary      Subscribe to the newsletter
// @Description  Subscribing twice is harmless and reports the existing subscription.
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.NewsletterSubscribeRequestDTO  true  "email"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /newsletter/subscribe [post]
func NewsletterSubscribeHandler(marketingSvc *services.MarketingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NewsletterSubscribeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		message, err := marketingSvc.Subscribe(c.Request.Context(), req.Email)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: message})
	}
}

// ContactHandler godoc
// @Summary      Submit a contact form
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContactRequestDTO  true  "contact form"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /contact [post]
func ContactHandler(marketingSvc *services.MarketingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		if err := marketingSvc.SubmitContact(c.Request.Context(), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Thank you for contacting us. We'll get back to you soon!"})
	}
}

// GiftingInquiryHandler godoc
// @Summary      Submit a corporate gifting inquiry
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GiftingInquiryRequestDTO  true  "inquiry"
// @Success      200   {object}  dto.GiftingInquiryResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /corporate-gifting/inquiry [post]
func GiftingInquiryHandler(marketingSvc *services.MarketingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GiftingInquiryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		inquiryID, err := marketingSvc.SubmitGiftingInquiry(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.GiftingInquiryResponseDTO{
			Message:   "Thank you for your inquiry. Our team will contact you within 24 hours.",
			InquiryID: inquiryID,
		})
	}
}

// CorporateGiftingHandler godoc
// @Summary      Corporate gifting packages and benefits
// @Tags         content
// @Produce      json
// @Success      200  {object}  services.CorporateGifting
// @Router       /corporate-gifting [get]
func CorporateGiftingHandler(contentSvc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contentSvc.CorporateGifting())
	}
}

// PortfolioHandler godoc
// @Summary      Hospitality client portfolio
// @Tags         content
// @Produce      json
// @Success      200  {array}  services.PortfolioClient
// @Router       /portfolio [get]
func PortfolioHandler(contentSvc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contentSvc.Portfolio())
	}
}

// TestimonialsHandler godoc
// @Summary      Customer testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}  services.Testimonial
// @Router       /testimonials [get]
func TestimonialsHandler(contentSvc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contentSvc.Testimonials())
	}
}

// BrandStoryHandler godoc
// @Summary      Brand story and values
// @Tags         content
// @Produce      json
// @Success      200  {object}  services.BrandStory
// @Router       /brand-story [get]
func BrandStoryHandler(contentSvc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contentSvc.BrandStory())
	}
}

// SustainabilityHandler godoc
// @Summary      Sustainability initiatives and certifications
// @Tags         content
// @Produce      json
// @Success      200  {object}  services.Sustainability
// @Router       /sustainability [get]
func SustainabilityHandler(contentSvc *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, contentSvc.Sustainability())
	}
}
