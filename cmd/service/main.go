package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/config"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/auth"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/cache"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/database"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/logger"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/payment"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/producer"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/repository"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/token"
	transport "github.com/HamzaHajMtir1/Elite-Shop/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	var rdb *cache.RedisClient
	if cfg.Redis.Enabled {
		var err error
		rdb, err = cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	// Event bus is optional (nil disables publishing)
	var events service.EventBus
	if len(cfg.Kafka.Brokers) > 0 {
		kp := producer.NewOrderEventsProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		events = kp
	}

	var payments service.PaymentProvider
	if cfg.Stripe.SecretKey != "" {
		payments = payment.NewStripeProvider(cfg.Stripe.SecretKey)
	}

	authenticator := auth.NewClient(cfg.Auth.URL)
	verifier := token.NewHSVerifier(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	countTTL := time.Duration(cfg.Redis.TTLSeconds) * time.Second
	svcs := transport.Services{
		Catalog:  service.NewCatalogService(repos),
		Cart:     service.NewCartService(repos, rdb, countTTL),
		Checkout: service.NewCheckoutService(repos, payments, events, rdb, log),
		Orders:   service.NewOrderService(repos, events),
		Identity: service.NewIdentityService(repos, rdb),
		Auth:     authenticator,
	}

	r := transport.Router(svcs, verifier, log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting storefront HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down storefront HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("Storefront HTTP server stopped gracefully")
}
