package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/app"
	"github.com/pawrest/pawrest-server/internal/auth"
	"github.com/pawrest/pawrest-server/internal/config"
	"github.com/pawrest/pawrest-server/internal/db"
	"github.com/pawrest/pawrest-server/internal/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	var sessionStore auth.SessionStore
	switch cfg.SessionStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		sessionStore = auth.NewRedisStore(rdb)
		logrus.Info("using redis session store")
	default:
		sessionStore = auth.NewMemoryStore()
		logrus.Info("using in-memory session store")
	}

	sessions := auth.NewSessionManager(sessionStore, time.Duration(cfg.SessionTTLMin)*time.Minute)

	a := app.New(app.Options{
		Store:       store.NewGormStore(gdb),
		Sessions:    sessions,
		CORSOrigins: cfg.CORSOrigins,
		IsProd:      cfg.IsProd,
	})

	logrus.Infof("server listening on :%s", cfg.AppPort)
	logrus.Fatal(a.Listen(":" + cfg.AppPort))
}
