// shared/config/config.go
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// CommonConfig holds configuration fields that are shared across services.
type CommonConfig struct {
	RedisAddrs              []string      // Redis server addresses (e.g., "redis-cluster:6379")
	RedisPassword           string        // Redis password for authentication
	HeartbeatInterval       time.Duration // How often to send a heartbeat to the registry (e.g., 5s)
	HeartbeatTTL            time.Duration // How long an instance is considered alive without a heartbeat (e.g., 15s)
	RegistryCleanupInterval time.Duration // How often the registry actively cleans stale entries (e.g., 30s)
	ServiceIP               string        // The IP address this service advertises for registration (Kubernetes Pod IP)
	ServicePort             int           // The port this service listens on, used for registration
}

// ProfileServiceConfig holds configuration specific to the profile-service.
type ProfileServiceConfig struct {
	CommonConfig                            // Embed CommonConfig
	ListenAddr               string         // Address for the HTTP server (e.g., ":8081")
	MongoDBConnStr           string         // MongoDB connection string
	MongoDBDatabase          string         // MongoDB database name (e.g., "profiles")
	MongoDBPlayersCollection string         // MongoDB collection for players (e.g., "players")
	CampaignServiceURL       string         // URL of the campaign service; empty selects the in-process static source
	CampaignCacheTTL         time.Duration  // How long fetched campaign definitions stay cached in Redis
	SeedSampleData           bool           // Whether to seed the sample player profile on startup
}

// CampaignServiceConfig holds configuration specific to the campaign-service.
type CampaignServiceConfig struct {
	CommonConfig        // Embed CommonConfig
	ListenAddr   string // Address for the HTTP server (e.g., ":8083")
}

// LoadCommonConfig loads common configuration from environment variables.
func LoadCommonConfig() (CommonConfig, error) {
	cfg := CommonConfig{}
	var err error

	// Redis Addresses
	redisAddrsStr := os.Getenv("REDIS_ADDRS")
	if redisAddrsStr == "" {
		cfg.RedisAddrs = []string{"redis-cluster:6379"}
	} else {
		for _, addr := range strings.Split(redisAddrsStr, ",") {
			cfg.RedisAddrs = append(cfg.RedisAddrs, strings.TrimSpace(addr))
		}
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.HeartbeatInterval, err = getDuration("SERVICE_HEARTBEAT_INTERVAL", 5*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.HeartbeatTTL, err = getDuration("SERVICE_HEARTBEAT_TTL", 15*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.RegistryCleanupInterval, err = getDuration("SERVICE_REGISTRY_CLEANUP_INTERVAL", 30*time.Second)
	if err != nil {
		return cfg, err
	}

	// Service IP (for registration, from Kubernetes Pod IP)
	cfg.ServiceIP = os.Getenv("POD_IP") // Injected by Kubernetes
	if cfg.ServiceIP == "" {
		// Fallback for local development outside K8s or if not injected
		cfg.ServiceIP = "0.0.0.0"
	}

	return cfg, nil
}

// LoadProfileServiceConfig loads configuration for the profile-service.
func LoadProfileServiceConfig() (*ProfileServiceConfig, error) {
	common, err := LoadCommonConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load common config for profile-service: %w", err)
	}

	cfg := &ProfileServiceConfig{
		CommonConfig:             common,
		ListenAddr:               os.Getenv("PROFILE_SERVICE_LISTEN_ADDR"),
		MongoDBConnStr:           os.Getenv("MONGODB_CONN_STR"),
		MongoDBDatabase:          os.Getenv("MONGODB_DATABASE"),
		MongoDBPlayersCollection: os.Getenv("MONGODB_PLAYERS_COLLECTION"),
		CampaignServiceURL:       os.Getenv("CAMPAIGN_SERVICE_URL"),
	}

	// Apply defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8081"
	}
	if cfg.MongoDBConnStr == "" {
		cfg.MongoDBConnStr = "mongodb://mongodb-service:27017"
	}
	if cfg.MongoDBDatabase == "" {
		cfg.MongoDBDatabase = "profiles"
	}
	if cfg.MongoDBPlayersCollection == "" {
		cfg.MongoDBPlayersCollection = "players"
	}

	cfg.CampaignCacheTTL, err = getDuration("CAMPAIGN_CACHE_TTL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.SeedSampleData, err = getBool("PROFILE_SEED_SAMPLE_DATA", false)
	if err != nil {
		return nil, err
	}

	// Extract ServicePort from ListenAddr
	cfg.ServicePort, err = extractPort(cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to extract port from PROFILE_SERVICE_LISTEN_ADDR '%s': %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

// LoadCampaignServiceConfig loads configuration for the campaign-service.
func LoadCampaignServiceConfig() (*CampaignServiceConfig, error) {
	common, err := LoadCommonConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load common config for campaign-service: %w", err)
	}

	cfg := &CampaignServiceConfig{
		CommonConfig: common,
		ListenAddr:   os.Getenv("CAMPAIGN_SERVICE_LISTEN_ADDR"),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8083"
	}

	cfg.ServicePort, err = extractPort(cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to extract port from CAMPAIGN_SERVICE_LISTEN_ADDR '%s': %w", cfg.ListenAddr, err)
	}

	return cfg, nil
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// Helper function to parse bool from environment variable
func getBool(envKey string, defaultVal bool) (bool, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, fmt.Errorf("invalid boolean format for %s: %w", envKey, err)
	}
	return b, nil
}

// extractPort extracts the numeric port from a listen address (e.g., ":8081" -> 8081, "0.0.0.0:8081" -> 8081)
func extractPort(listenAddr string) (int, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		// If SplitHostPort fails, check if ListenAddr is just a port (e.g., ":8081")
		if strings.HasPrefix(listenAddr, ":") {
			portStr = strings.TrimPrefix(listenAddr, ":")
		} else {
			return 0, fmt.Errorf("invalid ListenAddr format for port extraction: %w", err)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number '%s': %w", portStr, err)
	}
	return port, nil
}
