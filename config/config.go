package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// HTTP server defaults
const HTTP_ADDR = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Room service defaults
const ROOM_API_BASE = "http://localhost:3000"
const ROOM_API_TIMEOUT_SECONDS = 10
const ROOM_API_BREAKER_FAILURES = 5
const ROOM_API_BREAKER_OPEN_SECONDS = 30

// Redis defaults
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Draft selections expire after a day of inactivity.
const DRAFT_TTL_MINUTES = 60 * 24

// Grid defaults, in minutes
const GRID_INTERVAL_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const ROOM_RESOURCE = "room.json"
const USER_TIME_RESPONSE_RESOURCE = "user_time_response.json"
const SOLUTION_RESPONSE_RESOURCE = "solution_response.json"
const HEATMAP_RESPONSE_RESOURCE = "heatmap_response.json"

// Config holds the values that may be overridden from the environment.
type Config struct {
	Env             string
	HTTPAddr        string
	RoomAPIBase     string
	RoomAPITimeout  time.Duration
	BreakerFailures uint32
	BreakerOpen     time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	DraftTTL        time.Duration
	GridInterval    int
}

// Default returns the configuration built from the constants above.
func Default() Config {
	return Config{
		Env:             "prod",
		HTTPAddr:        HTTP_ADDR,
		RoomAPIBase:     ROOM_API_BASE,
		RoomAPITimeout:  ROOM_API_TIMEOUT_SECONDS * time.Second,
		BreakerFailures: ROOM_API_BREAKER_FAILURES,
		BreakerOpen:     ROOM_API_BREAKER_OPEN_SECONDS * time.Second,
		RedisAddr:       REDIS_DB_ADDRESS,
		RedisPassword:   REDIS_DB_PASSWORD,
		RedisDB:         REDIS_DB,
		DraftTTL:        DRAFT_TTL_MINUTES * time.Minute,
		GridInterval:    GRID_INTERVAL_MINUTES,
	}
}

// Load reads an optional .env file and applies MEETGRID_* overrides on top
// of the defaults. All invalid keys are reported together.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	var invalid []string

	if v := env("MEETGRID_ENV"); v != "" {
		cfg.Env = v
	}
	if v := env("MEETGRID_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := env("MEETGRID_ROOM_API_BASE"); v != "" {
		cfg.RoomAPIBase = strings.TrimRight(v, "/")
	}
	if v := env("MEETGRID_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, "MEETGRID_HTTP_TIMEOUT")
		} else {
			cfg.RoomAPITimeout = d
		}
	}
	if v := env("MEETGRID_BREAKER_FAILURES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			invalid = append(invalid, "MEETGRID_BREAKER_FAILURES")
		} else {
			cfg.BreakerFailures = uint32(n)
		}
	}
	if v := env("MEETGRID_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v, ok := os.LookupEnv("MEETGRID_REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	if v := env("MEETGRID_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			invalid = append(invalid, "MEETGRID_REDIS_DB")
		} else {
			cfg.RedisDB = n
		}
	}
	if v := env("MEETGRID_DRAFT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, "MEETGRID_DRAFT_TTL")
		} else {
			cfg.DraftTTL = d
		}
	}
	if v := env("MEETGRID_GRID_INTERVAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || 60%n != 0 {
			invalid = append(invalid, "MEETGRID_GRID_INTERVAL")
		} else {
			cfg.GridInterval = n
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// IsProd reports whether the real room service should be used.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath resolves a fixture file under the resources directory.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
