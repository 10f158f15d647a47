package main

import (
	"log"
	"os"
	"time"

	"kitchary/config"
	httpapi "kitchary/internal/api/http"
	"kitchary/internal/service"
	"kitchary/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repository := storage.NewPostgresRepository(db)
	sessions := storage.NewRedisSessionStore(rdb, 24*time.Hour)

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, order events disabled")
	}

	auth := service.NewAuthService(repository, sessions)
	menu := service.NewMenuService(repository)
	orders := service.NewOrderService(repository, repository, repository, publisher)
	dashboard := service.NewDashboardService(repository)

	handler := httpapi.NewHandler(auth, menu, orders, dashboard, getEnv("MEDIA_ROOT", "./media"))
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+getEnv("PORT", "8080"), router)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
