package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/config"
	"github.com/pawrest/pawrest-server/internal/db"
	"github.com/pawrest/pawrest-server/internal/store"
)

// Applies the schema and the run-once maintenance tasks. Kept separate from
// the server binary so deploys can migrate before rolling instances.
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

	tasks := db.DefaultTasks(db.AdminSeed{
		Username: os.Getenv("ADMIN_USERNAME"),
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	})
	if err := db.RunTasks(context.Background(), gdb, store.NewGormStore(gdb), tasks); err != nil {
		logrus.Fatalf("maintenance tasks failed: %v", err)
	}

	logrus.Info("migration completed")
}
