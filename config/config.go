package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSearchURL is the South Carolina search the scraper was built around:
// price <= 250k, beds >= 2, sqft >= 1250, list view.
const DefaultSearchURL = "https://www.zillow.com/sc/?searchQueryState=%7B%22pagination%22%3A%7B%7D%2C%22isMapVisible%22%3Atrue%2C%22mapBounds%22%3A%7B%22west%22%3A-85.244241453125%2C%22east%22%3A-76.608987546875%2C%22south%22%3A31.040569203933313%2C%22north%22%3A36.16170585540743%7D%2C%22regionSelection%22%3A%5B%7B%22regionId%22%3A51%2C%22regionType%22%3A2%7D%5D%2C%22filterState%22%3A%7B%22sort%22%3A%7B%22value%22%3A%22globalrelevanceex%22%7D%2C%22ah%22%3A%7B%22value%22%3Atrue%7D%2C%22price%22%3A%7B%22max%22%3A250000%7D%2C%22mp%22%3A%7B%22max%22%3A1174%7D%2C%22beds%22%3A%7B%22min%22%3A2%7D%2C%22manu%22%3A%7B%22value%22%3Afalse%7D%2C%22con%22%3A%7B%22value%22%3Afalse%7D%2C%22apco%22%3A%7B%22value%22%3Afalse%7D%2C%22apa%22%3A%7B%22value%22%3Afalse%7D%2C%22land%22%3A%7B%22value%22%3Afalse%7D%2C%22sqft%22%3A%7B%22min%22%3A1250%7D%2C%22hoa%22%3A%7B%22max%22%3A50%7D%2C%22ac%22%3A%7B%22value%22%3Atrue%7D%7D%2C%22isListVisible%22%3Atrue%2C%22mapZoom%22%3A7%2C%22usersSearchTerm%22%3A%22SC%22%7D"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SearchURL string
	ChromeBin string
	Headless  bool

	MaxScrolls        int
	ScrollIncrement   int
	ScrollPauseMs     int
	PageLoadTimeoutMs int
	RunTimeoutMs      int
	MaxRetries        int

	MinBeds  int
	MinSqft  int
	MaxPrice int

	OutputFormat string
	Debug        bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SearchURL: getEnv("ZILLOW_URL", DefaultSearchURL),
		ChromeBin: getEnv("CHROME_BIN", ""),
		Headless:  getEnvBool("HEADLESS", true),

		MaxScrolls:        getEnvInt("MAX_SCROLLS", 20),
		ScrollIncrement:   getEnvInt("SCROLL_INCREMENT", 500),
		ScrollPauseMs:     getEnvInt("SCROLL_PAUSE_MS", 3000),
		PageLoadTimeoutMs: getEnvInt("PAGE_LOAD_TIMEOUT_MS", 30000),
		RunTimeoutMs:      getEnvInt("RUN_TIMEOUT_MS", 300000),
		MaxRetries:        getEnvInt("MAX_RETRIES", 3),

		MinBeds:  getEnvInt("MIN_BEDS", 2),
		MinSqft:  getEnvInt("MIN_SQFT", 1250),
		MaxPrice: getEnvInt("MAX_PRICE", 0),

		OutputFormat: strings.ToLower(getEnv("OUTPUT_FORMAT", "table")),
		Debug:        getEnvBool("DEBUG", false),
	}
}

// Validate rejects settings the scraper cannot run with.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		val  int
	}{
		{"MAX_SCROLLS", c.MaxScrolls},
		{"SCROLL_INCREMENT", c.ScrollIncrement},
		{"SCROLL_PAUSE_MS", c.ScrollPauseMs},
		{"PAGE_LOAD_TIMEOUT_MS", c.PageLoadTimeoutMs},
		{"RUN_TIMEOUT_MS", c.RunTimeoutMs},
		{"MAX_RETRIES", c.MaxRetries},
		{"MIN_BEDS", c.MinBeds},
		{"MIN_SQFT", c.MinSqft},
		{"MAX_PRICE", c.MaxPrice},
	}
	for _, ch := range checks {
		if ch.val < 0 {
			return fmt.Errorf("config: %s must not be negative, got %d", ch.name, ch.val)
		}
	}
	positive := []struct {
		name string
		val  int
	}{
		{"SCROLL_PAUSE_MS", c.ScrollPauseMs},
		{"PAGE_LOAD_TIMEOUT_MS", c.PageLoadTimeoutMs},
		{"RUN_TIMEOUT_MS", c.RunTimeoutMs},
	}
	for _, ch := range positive {
		if ch.val == 0 {
			return fmt.Errorf("config: %s must be greater than zero", ch.name)
		}
	}
	if c.SearchURL == "" {
		return fmt.Errorf("config: ZILLOW_URL must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
		log.Printf("[config] Invalid int for %s=%q, using default %d", key, val, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
		log.Printf("[config] Invalid bool for %s=%q, using default %t", key, val, fallback)
	}
	return fallback
}
