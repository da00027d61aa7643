package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/balcao-bank/balcao/internal/account"
)

const (
	defaultAppName        = "Balcao"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultBranchCode     = "0001"
	defaultShutdownDelay  = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
)

// Config captures application runtime configuration loaded from environment
// variables. DatabaseURL and RedisURL are optional: without them the ledger
// runs fully in memory and idempotency enforcement is disabled.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration

	// Ledger policy
	BranchCode       string
	WithdrawalLimit  int64 // centavos, per withdrawal on checking accounts
	DailyWithdrawals int
	WithdrawalsReset account.ResetPolicy
}

// Load reads configuration values from the environment and populates a
// Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:          getEnv("APP_NAME", defaultAppName),
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		Port:             getEnv("PORT", defaultPort),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		ShutdownPeriod:   defaultShutdownDelay,
		IdempotencyTTL:   defaultIdempotencyTTL,
		BranchCode:       getEnv("BRANCH_CODE", defaultBranchCode),
		WithdrawalLimit:  account.DefaultWithdrawalLimit,
		DailyWithdrawals: account.DefaultDailyWithdrawals,
		WithdrawalsReset: account.ResetNever,
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv("IDEMPOTENCY_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid IDEMPOTENCY_TTL: %w", err)
		}
		cfg.IdempotencyTTL = d
	}

	if v := os.Getenv("WITHDRAW_LIMIT"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("invalid WITHDRAW_LIMIT: %q", v)
		}
		cfg.WithdrawalLimit = limit
	}

	if v := os.Getenv("DAILY_WITHDRAWALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid DAILY_WITHDRAWALS: %q", v)
		}
		cfg.DailyWithdrawals = n
	}

	switch v := strings.ToLower(os.Getenv("WITHDRAWALS_RESET")); v {
	case "", string(account.ResetNever):
		cfg.WithdrawalsReset = account.ResetNever
	case string(account.ResetCalendarDay):
		cfg.WithdrawalsReset = account.ResetCalendarDay
	default:
		return Config{}, fmt.Errorf("invalid WITHDRAWALS_RESET: %q (want never or daily)", v)
	}

	return cfg, nil
}

// CheckingPolicy builds the withdrawal policy applied to new checking accounts.
func (c Config) CheckingPolicy() account.CheckingPolicy {
	return account.CheckingPolicy{
		WithdrawalLimit:  c.WithdrawalLimit,
		DailyWithdrawals: c.DailyWithdrawals,
		Reset:            c.WithdrawalsReset,
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
