package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/savoria/storefront/internal/adapter/handler"
	"github.com/savoria/storefront/internal/adapter/storage"
	"github.com/savoria/storefront/internal/config"
	"github.com/savoria/storefront/internal/core/admin"
	"github.com/savoria/storefront/internal/core/auth"
	"github.com/savoria/storefront/internal/core/cart"
	"github.com/savoria/storefront/internal/core/catalog"
	"github.com/savoria/storefront/internal/core/checkout"
	"github.com/savoria/storefront/internal/core/orders"
	"github.com/savoria/storefront/internal/port"
)

// stdLogger adapts the standard log package to port.Logger.
type stdLogger struct{}

func (stdLogger) Debug(msg string, fields map[string]interface{}) { log.Printf("DEBUG %s %v", msg, fields) }
func (stdLogger) Info(msg string, fields map[string]interface{})  { log.Printf("INFO %s %v", msg, fields) }
func (stdLogger) Error(msg string, fields map[string]interface{}) { log.Printf("ERROR %s %v", msg, fields) }

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, cleanup, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer cleanup()

	logger := stdLogger{}

	// Build the stores over the shared key-value storage.
	cat := catalog.Default()

	cartStore := cart.NewStore(kv)
	cartStore.SetLogger(logger)

	authStore := auth.NewStore(kv, cfg.Latency.Login.Std())
	authStore.SetLogger(logger)

	adminStore := admin.NewStore(kv, cfg.Latency.AdminFetch.Std())
	adminStore.SetLogger(logger)

	history := orders.NewHistory(kv)
	history.SetLogger(logger)

	pricing := checkout.Pricing{
		DeliveryFee:      cfg.Pricing.DeliveryFee,
		FreeDeliveryOver: cfg.Pricing.FreeDeliveryOver,
		TaxRate:          cfg.Pricing.TaxRate,
		EstimatedReadyIn: cfg.Pricing.EstimatedReadyIn.Std(),
	}
	flow := checkout.NewFlow(cartStore, history, checkout.AlwaysApprove{}, pricing, cfg.Latency.Submission.Std())
	flow.SetLogger(logger)

	// Rehydrate persisted state before serving.
	if err := cartStore.LoadFromStorage(ctx); err != nil {
		log.Printf("cart hydration failed: %v", err)
	}
	if err := authStore.LoadFromStorage(ctx); err != nil {
		log.Printf("auth hydration failed: %v", err)
	}
	if err := adminStore.LoadFromStorage(ctx); err != nil {
		log.Printf("admin hydration failed: %v", err)
	}

	httpHandler := handler.NewHTTPHandler(cat, cartStore, authStore, adminStore, flow, history)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpHandler.Router(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")
}

// openStorage picks the key-value backend named in the config. The returned
// cleanup closes any underlying connection.
func openStorage(ctx context.Context, cfg config.Storage) (port.KeyValueStore, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		log.Println("connected to redis")
		return storage.NewRedisStore(rdb), func() { rdb.Close() }, nil

	case config.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Println("connected to mysql")
		return storage.NewMySQLStore(db), func() { db.Close() }, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
