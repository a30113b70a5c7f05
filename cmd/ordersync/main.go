package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Hasna17806/ZYRA-sub000/internal/config"
	kafkax "github.com/Hasna17806/ZYRA-sub000/internal/kafka"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/ordersync"
	"github.com/Hasna17806/ZYRA-sub000/internal/redisx"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := redisx.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	svc := &ordersync.Service{API: restapi.New(cfg.CatalogBaseURL), Redis: rdb}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.OrderSyncGroup, orders.TopicOrderPlaced, cfg.OrderSyncWorkers)

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("ordersync started: group=%s topic=%s workers=%d", cfg.OrderSyncGroup, orders.TopicOrderPlaced, cfg.OrderSyncWorkers)
		if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
		log.Println("shutting down consumer...")
	case <-ctx.Done():
	}
	cancel()
	<-done
}
