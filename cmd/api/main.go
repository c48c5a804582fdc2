package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"

	"fleur-api/ai/completion"
	"fleur-api/ai/conversation"
	"fleur-api/ai/recommend"
	"fleur-api/api/router"
	"fleur-api/auth"
	"fleur-api/config"
	"fleur-api/db"
	"fleur-api/kafka"
	"fleur-api/logger"
	"fleur-api/repositories"
	"fleur-api/seed"
	"fleur-api/services"
)

// @title           Fleur Fragrances API
// @version         1.0
// @description     Storefront and AI recommendation API for Fleur Fragrances
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatalf("mongo init: %v", err)
	}
	database := db.Database()

	productRepo := repositories.NewProductRepository(database)
	userRepo := repositories.NewUserRepository(database)
	cartRepo := repositories.NewCartRepository(database)
	wishlistRepo := repositories.NewWishlistRepository(database)
	orderRepo := repositories.NewOrderRepository(database)
	reviewRepo := repositories.NewReviewRepository(database)
	newsletterRepo := repositories.NewNewsletterRepository(database)
	contactRepo := repositories.NewContactRepository(database)
	giftingRepo := repositories.NewGiftingRepository(database)
	chatSessionRepo := repositories.NewChatSessionRepository(database)
	aiLogRepo := repositories.NewAILogRepository(database)
	paymentRepo := repositories.NewPaymentRepository(database)

	if _, err := seed.EnsureSeeded(ctx, productRepo); err != nil {
		logger.Log.Errorf("catalog seeding failed: %v", err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatalf("jwt init: %v", err)
	}

	producer, err := kafka.NewFromEnv()
	if err != nil {
		log.Fatalf("kafka init: %v", err)
	}
	defer producer.Close()

	var completer completion.Completer = completion.Disabled()
	var analyzer completion.ImageAnalyzer = completion.DisabledAnalyzer()
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gateway := completion.NewGateway(apiKey, cfg.GeminiModel,
			completion.WithTimeout(time.Duration(cfg.AI.RequestTimeoutSec)*time.Second),
			completion.WithRecorder(aiLogRepo),
		)
		completer, analyzer = gateway, gateway
	} else {
		logger.Log.Warn("GEMINI_API_KEY not set, AI features degraded")
	}

	catalogSvc := services.NewCatalogAdapter(productRepo)
	chatManager := conversation.NewManager(completer, chatSessionRepo, catalogSvc, cfg.AI.MaxTranscriptTurns)
	engine := recommend.NewEngine(completer, catalogSvc, cfg.AI.FuzzyMatchRatio)

	// Payment providers ship as interfaces; deployments without provider
	// credentials run with payments disabled.
	var stripeProvider services.StripeProvider
	var razorpayProvider services.RazorpayProvider

	deps := router.Deps{
		JWT:         jwtManager,
		Auth:        services.NewAuthService(userRepo, cartRepo, jwtManager),
		Products:    services.NewProductService(productRepo, reviewRepo),
		Cart:        services.NewCartService(cartRepo, productRepo),
		Wishlist:    services.NewWishlistService(wishlistRepo, productRepo),
		Orders:      services.NewOrderService(orderRepo, productRepo, cartRepo, producer),
		Reviews:     services.NewReviewService(reviewRepo, productRepo, userRepo),
		Marketing:   services.NewMarketingService(newsletterRepo, contactRepo, giftingRepo, producer),
		Content:     services.NewContentService(),
		Checkout:    services.NewCheckoutService(paymentRepo, orderRepo, productRepo, cartRepo, producer, stripeProvider, razorpayProvider, os.Getenv("RAZORPAY_KEY_SECRET")),
		AI:          services.NewAIService(chatManager, engine, analyzer, producer),
		ProductRepo: productRepo,
	}

	engineHandler := router.New(deps)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      corsWrapper.Handler(engineHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("shutdown: %v", err)
	}
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
