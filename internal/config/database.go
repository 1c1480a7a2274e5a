package config

import (
	"fmt"
	"time"

	"hypehouse-backend/internal/infrastructure/database"
)

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "hypehouse_app"),
		Password: getEnv("DB_PASSWORD", ""),
		Database: getEnv("DB_NAME", "hypehouse"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		MaxConns: getEnvInt("DB_MAX_CONNS", 25),
		MinConns: getEnvInt("DB_MIN_CONNS", 2),
	}
}

// LoadDatabaseConfig đọc DB_* env; labelctl dùng hàm này mà không cần load cả Config
func LoadDatabaseConfig() (*database.DBConfig, error) {
	return loadDatabase().PoolConfig()
}

// PoolConfig chuyển DatabaseConfig thành cấu hình pgxpool (lifetime, retry, timeout)
func (d DatabaseConfig) PoolConfig() (*database.DBConfig, error) {
	if d.Port <= 0 || d.Port > 65535 {
		return nil, fmt.Errorf("invalid DB_PORT: %d", d.Port)
	}
	if d.MinConns > d.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", d.MinConns, d.MaxConns)
	}

	return &database.DBConfig{
		Host:              d.Host,
		Port:              d.Port,
		Username:          d.User,
		Password:          d.Password,
		DBName:            d.Database,
		SSLMode:           d.SSLMode,
		MaxConns:          int32(d.MaxConns),
		MinConns:          int32(d.MinConns),
		MaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MaxRetries:        getEnvInt("DB_MAX_RETRIES", 5),
		RetryDelay:        getEnvDuration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout:    getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}, nil
}
