// campaigns/main.go
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
	campaignapi "github.com/questforge/profile-services/campaigns/api"
	"github.com/questforge/profile-services/shared/api"
	"github.com/questforge/profile-services/shared/campaign"
	"github.com/questforge/profile-services/shared/config"
	redisu "github.com/questforge/profile-services/shared/redis"
	"github.com/questforge/profile-services/shared/registry"
)

func main() {
	// --- 1. Load Configuration ---
	_ = godotenv.Load() // Optional .env for local development
	cfg, err := config.LoadCampaignServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to Redis (service registry) ---
	redisClient, err := redisu.NewRedisClusterClient(cfg.RedisAddrs, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis Cluster: %v", err)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Printf("ERROR: Failed to close Redis client: %v", err)
		}
	}()

	// --- 3. Initialize API Handlers ---
	// The static source stands in for the production campaign backend.
	campaignAPIHandlers := campaignapi.NewCampaignAPIHandlers(campaign.NewStaticSource())

	// --- 4. Initialize and Start Service Registrar ---
	registrar := registry.NewServiceRegistrar(redisClient, "campaign-service", &cfg.CommonConfig)
	registrar.Start()
	defer registrar.Stop()

	// --- 5. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	campaignAPIHandlers.RegisterRoutes(baseServer.Router)

	// --- 6. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 7. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down campaign service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Campaign service gracefully stopped.")
}
