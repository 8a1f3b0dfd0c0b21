package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// 服务器配置
	Port string

	// 数据库配置
	DatabaseURL string

	// AMQP配置 (为空时使用内存 broker)
	AMQPURL       string
	EventExchange string

	// 球队管理服务 (外部协作方)
	TeamsAPIBaseURL string

	// 比赛引擎配置
	BenchSize    int           // 替补席容量 (5 或 6)
	TickInterval time.Duration // 比赛时钟节拍

	// 其他配置
	Environment string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/matchday?sslmode=disable"),

		AMQPURL:       getEnv("AMQP_URL", ""),
		EventExchange: getEnv("EVENT_EXCHANGE", "matchday.events"),

		TeamsAPIBaseURL: getEnv("TEAMS_API_BASE_URL", "http://localhost:8081/api/v1"),

		BenchSize:    getEnvInt("BENCH_SIZE", 5),
		TickInterval: time.Duration(getEnvInt("TICK_INTERVAL_MS", 1000)) * time.Millisecond,

		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var result int
	fmt.Sscanf(value, "%d", &result)
	if result == 0 {
		return defaultValue
	}
	return result
}
