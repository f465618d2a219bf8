package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"petrocalc/config"
	httpLayer "petrocalc/http"
	"petrocalc/repository"
	"petrocalc/service"
)

func init() {
	if _, err := os.Stat("/.dockerenv"); os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Fatalf("error loading .env file: %v\n", err)
		}
	}
	log.SetPrefix("[petrocalc] ")
}

func main() {
	cfg := config.FromEnv()

	var cache repository.CacheRepository
	switch cfg.CacheDriver {
	case config.CacheRedis:
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("Warning: redis at %s unreachable: %v", cfg.RedisAddr, err)
		}
		cancel()
		cache = redisCache
	case config.CacheMemory:
		cache = repository.NewMemoryCache(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	calculationService := service.NewCalculationService(service.DefaultRegistry(), cache, cfg.CacheTTL)
	calculationHandler := httpLayer.NewCalculationHandler(calculationService)

	gpaHandler := httpLayer.NewGPAHandler(service.NewGPAService())

	accountService := service.NewAccountService(cfg.AccountServiceURL, cfg.AccountServiceTimeout)
	if !accountService.Enabled() {
		log.Println("ACCOUNT_SERVICE_URL not set, account endpoints will answer 503")
	}
	accountHandler := httpLayer.NewAccountHandler(accountService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Calculations: calculationHandler,
		GPA:          gpaHandler,
		Account:      accountHandler,
	}, rateLimiter, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
