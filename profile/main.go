// profile/main.go
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
	profileapi "github.com/questforge/profile-services/profile/api"
	"github.com/questforge/profile-services/profile/cache"
	"github.com/questforge/profile-services/profile/campaignclient"
	"github.com/questforge/profile-services/profile/service"
	"github.com/questforge/profile-services/profile/store"
	"github.com/questforge/profile-services/shared/api"
	"github.com/questforge/profile-services/shared/campaign"
	"github.com/questforge/profile-services/shared/config"
	mongodbu "github.com/questforge/profile-services/shared/mongodb"
	redisu "github.com/questforge/profile-services/shared/redis"
	"github.com/questforge/profile-services/shared/registry"
)

func main() {
	// --- 1. Load Configuration ---
	_ = godotenv.Load() // Optional .env for local development
	cfg, err := config.LoadProfileServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("ERROR: Failed to disconnect from MongoDB: %v", err)
		}
	}()

	// --- 3. Connect to Redis ---
	redisClient, err := redisu.NewRedisClusterClient(cfg.RedisAddrs, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis Cluster: %v", err)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Printf("ERROR: Failed to close Redis client: %v", err)
		}
	}()

	// --- 4. Initialize Data Store ---
	playersCollection := mongoClient.Collection(cfg.MongoDBPlayersCollection)
	playerStore := store.NewPlayerStore(playersCollection)

	// --- 5. Ensure Initial Data Exists ---
	if cfg.SeedSampleData {
		if err := playerStore.EnsureSamplePlayerExists(context.Background()); err != nil {
			log.Fatalf("Failed to seed sample player profile: %v", err)
		}
	}

	// --- 6. Initialize Campaign Source ---
	// An empty CAMPAIGN_SERVICE_URL selects the built-in static definitions;
	// otherwise active campaigns come from the campaign service over HTTP,
	// cached in Redis between requests.
	var source campaign.Source
	if cfg.CampaignServiceURL == "" {
		log.Println("INFO: Using in-process static campaign source.")
		source = campaign.NewStaticSource()
	} else {
		log.Printf("INFO: Using campaign service at %s.", cfg.CampaignServiceURL)
		source = campaignclient.NewClient(cfg.CampaignServiceURL, nil)
	}
	source = cache.NewCachedSource(source, redisClient, cfg.CampaignCacheTTL)

	// --- 7. Initialize Business Logic Service ---
	profileService := service.NewProfileService(playerStore, source)

	// --- 8. Initialize API Handlers ---
	profileAPIHandlers := profileapi.NewProfileAPIHandlers(profileService)

	// --- 9. Initialize and Start Service Registrar ---
	registrar := registry.NewServiceRegistrar(redisClient, "profile-service", &cfg.CommonConfig)
	registrar.Start()
	defer registrar.Stop()

	// --- 10. Setup HTTP Server and Register Routes ---
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default())
	profileAPIHandlers.RegisterRoutes(baseServer.Router)

	// --- 11. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 12. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down profile service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Profile service gracefully stopped.")
}
