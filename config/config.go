package config

import (
    "log"
    "os"
    "strconv"
)

type Config struct {
    DatabaseURL   string
    JWTSecret     string
    EncryptionKey string
    AdminCode     string
    Port          string
    Environment   string
    ReferralBase  string

    // Ledger policy knobs
    GSTRate       float64
    UTRMinLength  int
    UTRNumeric    bool
    AccrualHour   int
    AccrualMinute int
}

func Load() *Config {
    return &Config{
        DatabaseURL:   getEnv("DATABASE_URL", "investpro.db"),
        JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
        EncryptionKey: getEnv("ENCRYPTION_KEY", "InvestPro2025SecureKey1234567890"),
        AdminCode:     getEnv("ADMIN_CODE", "INVESTPRO_ADMIN_2025"),
        Port:          getEnv("PORT", "8080"),
        Environment:   getEnv("ENVIRONMENT", "development"),
        ReferralBase:  getEnv("REFERRAL_BASE_URL", "https://investpro.example.com/referral"),
        GSTRate:       getEnvFloat("GST_RATE", 0.18),
        UTRMinLength:  getEnvInt("UTR_MIN_LENGTH", 5),
        UTRNumeric:    getEnvBool("UTR_NUMERIC", false),
        AccrualHour:   getEnvInt("ACCRUAL_HOUR", 0),
        AccrualMinute: getEnvInt("ACCRUAL_MINUTE", 5),
    }
}

func getEnv(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
    if value := os.Getenv(key); value != "" {
        if f, err := strconv.ParseFloat(value, 64); err == nil {
            return f
        }
        log.Printf("WARNING: invalid float for %s, using default %v", key, defaultValue)
    }
    return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if n, err := strconv.Atoi(value); err == nil {
            return n
        }
        log.Printf("WARNING: invalid integer for %s, using default %v", key, defaultValue)
    }
    return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
    if value := os.Getenv(key); value != "" {
        if b, err := strconv.ParseBool(value); err == nil {
            return b
        }
        log.Printf("WARNING: invalid boolean for %s, using default %v", key, defaultValue)
    }
    return defaultValue
}

func ValidateConfig(cfg *Config) {
    if len(cfg.EncryptionKey) != 32 {
        log.Fatalf("ENCRYPTION_KEY must be exactly 32 characters, got %d", len(cfg.EncryptionKey))
    }
    if len(cfg.JWTSecret) < 32 {
        log.Printf("WARNING: JWT_SECRET should be at least 32 characters for security")
    }
    if cfg.GSTRate < 0 || cfg.GSTRate >= 1 {
        log.Fatalf("GST_RATE must be in [0, 1), got %v", cfg.GSTRate)
    }
    if cfg.UTRMinLength < 1 {
        log.Fatalf("UTR_MIN_LENGTH must be positive, got %d", cfg.UTRMinLength)
    }
    if cfg.AccrualHour < 0 || cfg.AccrualHour > 23 || cfg.AccrualMinute < 0 || cfg.AccrualMinute > 59 {
        log.Fatalf("invalid accrual schedule %02d:%02d", cfg.AccrualHour, cfg.AccrualMinute)
    }
    if cfg.Environment == "production" && cfg.AdminCode == "INVESTPRO_ADMIN_2025" {
        log.Printf("WARNING: Change ADMIN_CODE in production environment")
    }
}
