package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Hasna17806/ZYRA-sub000/internal/auth"
	"github.com/Hasna17806/ZYRA-sub000/internal/config"
	"github.com/Hasna17806/ZYRA-sub000/internal/httpx"
	kafkax "github.com/Hasna17806/ZYRA-sub000/internal/kafka"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/postgres"
	"github.com/Hasna17806/ZYRA-sub000/internal/redisx"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
	"github.com/Hasna17806/ZYRA-sub000/internal/storefront"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closeStore()
	log.Printf("storage driver: %s", cfg.StorageDriver)

	api := restapi.New(cfg.CatalogBaseURL)

	var opts []storefront.Option
	if cfg.HashPasswords {
		opts = append(opts, storefront.WithAuthOptions(auth.WithHashedPasswords()))
	}

	// Kafka is optional; without brokers orders are only kept in storage.
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024)
		prod.Start(ctx)
		opts = append(opts, storefront.WithNotifier(&orders.KafkaNotifier{Producer: prod, Service: cfg.ServiceName}))
	}

	open := func(ctx context.Context, deviceID string) (*storefront.Storefront, error) {
		view := storage.WithPrefix(store, fmt.Sprintf(redisx.KeyDevicePrefix, deviceID))
		return storefront.New(ctx, view, api, opts...)
	}

	router := httpx.NewRouter()
	h := &httpx.Handler{Sessions: httpx.NewSessions(open, api, cfg.SessionIdleTTL)}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close() // flush pending order events
		cancel()
		prod.WaitClosed()
	}
}

// openStorage returns the store selected by STORAGE_DRIVER and a func that
// releases it.
func openStorage(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return storage.NewMemory(), func() {}, nil
	case config.DriverRedis:
		rdb, err := redisx.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(rdb), func() { _ = rdb.Close() }, nil
	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, cfg.PostgresDSN, cfg.ServiceName)
		if err != nil {
			return nil, nil, err
		}
		return &storage.Postgres{DB: pool}, pool.Close, nil
	case config.DriverSQLite:
		s, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
