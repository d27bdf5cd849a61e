package storage

import "github.com/junguanghe/cafe-rater/internal/service"

var (
	_ service.CafeRepository   = (*MongoRepository)(nil)
	_ service.ReviewRepository = (*MongoRepository)(nil)
	_ service.CafeRepository   = (*MemoryStore)(nil)
	_ service.ReviewRepository = (*MemoryStore)(nil)
	_ service.StatsCache       = (*RedisCache)(nil)
	_ service.EventPublisher   = (*KafkaPublisher)(nil)
)
