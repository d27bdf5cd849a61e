package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	defaultDatabase = "cafe_rater"
)

type Config struct {
	Port          string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	CacheTTL      time.Duration
	KafkaBroker   string
	KafkaTopic    string
	PublicDir     string
	BaseURL       string
}

// Load reads the environment, after merging an optional .env file from the
// working directory.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	port := getEnv("PORT", "3000")
	return Config{
		Port:          port,
		StoreDriver:   getEnv("STORE_DRIVER", DriverMongo),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CacheTTL:      getDuration("CACHE_TTL", time.Minute),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "cafe-reviews"),
		PublicDir:     getEnv("PUBLIC_DIR", "./public"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:"+port),
	}
}

// DatabaseName picks MONGO_DATABASE, then the database named in the URI,
// then the default.
func (c Config) DatabaseName() string {
	if c.MongoDatabase != "" {
		return c.MongoDatabase
	}
	if cs, err := connstring.ParseAndValidate(c.MongoURI); err == nil && cs.Database != "" {
		return cs.Database
	}
	return defaultDatabase
}

func MustInitMongo(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database) {
	if uri == "" {
		log.Fatal("MONGO_URI is required for the mongo store driver")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	return client, client.Database(database)
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
