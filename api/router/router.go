package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleur-api/api/handlers"
	"fleur-api/auth"
	"fleur-api/db"
	"fleur-api/middleware"
	"fleur-api/repositories"
	"fleur-api/services"

	_ "fleur-api/docs"
)

// Deps carries the wired services into the router. main builds these once
// and the router only attaches handlers to paths.
type Deps struct {
	JWT         *auth.JWTManager
	Auth        *services.AuthService
	Products    *services.ProductService
	Cart        *services.CartService
	Wishlist    *services.WishlistService
	Orders      *services.OrderService
	Reviews     *services.ReviewService
	Marketing   *services.MarketingService
	Content     *services.ContentService
	Checkout    *services.CheckoutService
	AI          *services.AIService
	ProductRepo *repositories.ProductRepository
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Fleur Fragrances API", "version": "1.0"})
		})

		api.POST("/auth/register", handlers.RegisterHandler(d.Auth))
		api.POST("/auth/login", handlers.LoginHandler(d.Auth))
		api.GET("/auth/me", handlers.MeHandler(d.Auth, d.JWT))

		api.GET("/products", handlers.ListProductsHandler(d.Products))
		api.GET("/products/featured", handlers.FeaturedProductsHandler(d.Products))
		api.GET("/products/:slug", handlers.ProductBySlugHandler(d.Products))
		api.GET("/categories", handlers.CategoriesHandler(d.Products))

		api.GET("/cart", handlers.GetCartHandler(d.Cart, d.JWT))
		api.POST("/cart/add", handlers.AddToCartHandler(d.Cart, d.JWT))
		api.PUT("/cart/update", handlers.UpdateCartHandler(d.Cart, d.JWT))
		api.DELETE("/cart/remove/:product_id", handlers.RemoveFromCartHandler(d.Cart, d.JWT))
		api.DELETE("/cart/clear", handlers.ClearCartHandler(d.Cart, d.JWT))

		api.GET("/wishlist", handlers.GetWishlistHandler(d.Wishlist, d.JWT))
		api.POST("/wishlist/add/:product_id", handlers.AddToWishlistHandler(d.Wishlist, d.JWT))
		api.DELETE("/wishlist/remove/:product_id", handlers.RemoveFromWishlistHandler(d.Wishlist, d.JWT))

		api.POST("/orders", handlers.CreateOrderHandler(d.Orders, d.JWT))
		api.GET("/orders", handlers.ListOrdersHandler(d.Orders, d.JWT))
		api.GET("/orders/:order_id", handlers.GetOrderHandler(d.Orders, d.JWT))

		api.POST("/checkout/stripe", handlers.StripeCheckoutHandler(d.Checkout, d.JWT))
		api.GET("/checkout/status/:session_id", handlers.CheckoutStatusHandler(d.Checkout, d.JWT))
		api.POST("/checkout/razorpay", handlers.RazorpayOrderHandler(d.Checkout, d.JWT))
		api.POST("/checkout/razorpay/verify", handlers.RazorpayVerifyHandler(d.Checkout, d.JWT))
		api.POST("/webhook/stripe", handlers.StripeWebhookHandler(d.Checkout))

		api.POST("/reviews", handlers.CreateReviewHandler(d.Reviews, d.JWT))
		api.GET("/reviews/:product_id", handlers.ListReviewsHandler(d.Reviews))

		api.POST("/ai/chat", handlers.ChatHandler(d.AI, d.JWT))
		api.POST("/ai/scent-finder", handlers.ScentFinderHandler(d.AI))
		api.POST("/ai/identify-perfume", handlers.IdentifyPerfumeHandler(d.AI, d.JWT))

		api.POST("/newsletter/subscribe", handlers.NewsletterSubscribeHandler(d.Marketing))
		api.POST("/contact", handlers.ContactHandler(d.Marketing))
		api.POST("/corporate-gifting/inquiry", handlers.GiftingInquiryHandler(d.Marketing))

		api.GET("/corporate-gifting", handlers.CorporateGiftingHandler(d.Content))
		api.GET("/portfolio", handlers.PortfolioHandler(d.Content))
		api.GET("/testimonials", handlers.TestimonialsHandler(d.Content))
		api.GET("/brand-story", handlers.BrandStoryHandler(d.Content))
		api.GET("/sustainability", handlers.SustainabilityHandler(d.Content))

		api.POST("/seed", handlers.SeedHandler(d.ProductRepo))
	}

	return r
}
