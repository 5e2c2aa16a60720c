package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "tableread/docs"
	"tableread/internal/cache"
	"tableread/internal/config"
	"tableread/internal/repository"
	"tableread/internal/service"
	"tableread/internal/transport/rest"
	"tableread/internal/transport/ws"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title tableread API
// @version 1.0
// @description Poker-table personality questionnaire backend
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey ReviewerToken
// @in header
// @name Authorization
// @securityDefinitions.apikey ParticipantToken
// @in header
// @name Authorization
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	tally := cache.NewTallyCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	resultSvc := service.NewResultService(resultRepo, tally)
	sessionSvc := service.NewSessionService(sessionRepo, sessionCache, authSvc, resultSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		ResultService:  resultSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Reviewer auth: username=%s", os.Getenv("REVIEWER_USERNAME"))
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/catalog")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/sessions/{id}/question/current")
		log.Println("  POST /v1/sessions/{id}/answers")
		log.Println("  POST /v1/sessions/{id}/questions/{questionId}/skip")
		log.Println("  POST /v1/sessions/{id}/complete")
		log.Println("  GET  /v1/sessions")
		log.Println("  GET  /v1/results/{sessionId}")
		log.Println("  GET  /v1/results/{sessionId}/export")
		log.Println("  GET  /v1/stats/personas")
		log.Println("  WS   /v1/ws/review")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
