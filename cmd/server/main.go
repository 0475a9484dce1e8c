package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"pix-checkout/internal/controllers/http"
	"pix-checkout/internal/infra"
	mmysql "pix-checkout/internal/infra/mysql"
	"pix-checkout/internal/infra/rabbitmq"
	mysqlrepo "pix-checkout/internal/repository/mysql"
	"pix-checkout/internal/services"
)

const pollInterval = 3 * time.Second

func main() {
	nestURL := os.Getenv("NEST_API_URL")
	if nestURL == "" {
		log.Fatal("NEST_API_URL is required")
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	gateway := infra.NewPixClient(nestURL, 10*time.Second)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewCheckoutService(gateway, repo, publisher, pollInterval)
	defer s.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	s.SetRedisClient(redisClient)

	handler := http.NewHandler(s)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting pix checkout service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
