package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	DBDSN         string
	SessionStore  string // "memory" or "redis"
	SessionTTLMin int
	RedisAddr     string
	RedisPass     string
	RedisDB       int
	CORSOrigins   string
	IsProd        bool
}

func Load() Config {
	_ = godotenv.Load()

	ttl, _ := strconv.Atoi(get("SESSION_TTL_MIN", "10080")) // 7 days
	redisDB, _ := strconv.Atoi(get("REDIS_DB", "0"))

	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DBDSN:         must("DB_DSN"),
		SessionStore:  get("SESSION_STORE", "memory"),
		SessionTTLMin: ttl,
		RedisAddr:     get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPass:     get("REDIS_PASS", ""),
		RedisDB:       redisDB,
		CORSOrigins:   get("CORS_ORIGINS", "http://127.0.0.1:3000, http://localhost:3000"),
		IsProd:        get("IS_PROD", "") == "true",
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
