package main

import (
	"context"
	"log"

	"github.com/junguanghe/cafe-rater/config"
	httpapi "github.com/junguanghe/cafe-rater/internal/api/http"
	"github.com/junguanghe/cafe-rater/internal/service"
	"github.com/junguanghe/cafe-rater/internal/storage"
)

type repositories interface {
	service.CafeRepository
	service.ReviewRepository
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var repo repositories
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Println("Warning: using in-memory store, data is lost on restart")
		repo = storage.NewMemoryStore()
	default:
		client, db := config.MustInitMongo(ctx, cfg.MongoURI, cfg.DatabaseName())
		defer client.Disconnect(ctx)

		mongoRepo := storage.NewMongoRepository(db)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal("Failed to ensure indexes:", err)
		}
		log.Printf("Connected to MongoDB database %q", db.Name())
		repo = mongoRepo
	}

	var cache service.StatsCache
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
	}

	var publisher service.EventPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	qr := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}
	cafeSvc := service.NewCafeService(repo, repo, qr, cache, publisher)
	reviewSvc := service.NewReviewService(repo, repo, cache, publisher)
	statsSvc := service.NewStatsService(repo, repo, cache)

	handler := httpapi.NewHandler(cafeSvc, reviewSvc, statsSvc)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler, cfg.PublicDir))
}
