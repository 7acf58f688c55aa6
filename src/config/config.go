package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	ListenAddr  string
	Env         string
	DatabaseURL string
	Engine      EngineConfig
}

// EngineConfig is the construction-time configuration of the settlement
// engine: who deployed it, where fees go, the genesis token supply and the
// fixed swap rate.
type EngineConfig struct {
	DeployerAccount    string
	FeeAccount         string
	FeePercent         int64
	InitialSupply      decimal.Decimal
	MarketplaceAccount string
	PoolAccount        string
	SwapRate           decimal.Decimal
	RegistryRef        string
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() *Config {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	listenAddr := getEnv("LISTEN_ADDR", ":8080")
	env := getEnv("ENV", "dev")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" && env != "local" {
		log.Fatal("[FATAL] DATABASE_URL is required (set ENV=local for the in-memory store)")
	}

	feePercent, err := strconv.ParseInt(getEnv("FEE_PERCENT", "1"), 10, 64)
	if err != nil || feePercent < 0 || feePercent > 100 {
		log.Fatalf("[FATAL] FEE_PERCENT must be an integer in [0,100]: %v", err)
	}

	initialSupply, err := decimal.NewFromString(getEnv("INITIAL_SUPPLY", "100000"))
	if err != nil {
		log.Fatalf("[FATAL] Invalid INITIAL_SUPPLY: %v", err)
	}

	swapRate, err := decimal.NewFromString(getEnv("SWAP_RATE", "100"))
	if err != nil {
		log.Fatalf("[FATAL] Invalid SWAP_RATE: %v", err)
	}

	deployer := getEnv("DEPLOYER_ACCOUNT", "deployer")

	return &Config{
		ListenAddr:  listenAddr,
		Env:         env,
		DatabaseURL: databaseURL,
		Engine: EngineConfig{
			DeployerAccount:    deployer,
			FeeAccount:         getEnv("FEE_ACCOUNT", deployer),
			FeePercent:         feePercent,
			InitialSupply:      initialSupply,
			MarketplaceAccount: getEnv("MARKETPLACE_ACCOUNT", "marketplace"),
			PoolAccount:        getEnv("POOL_ACCOUNT", "swap-pool"),
			SwapRate:           swapRate,
			RegistryRef:        getEnv("ASSET_REGISTRY_REF", "main"),
		},
	}
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
