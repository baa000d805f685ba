package db

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pawrest/pawrest-server/internal/auth"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

// SchemaTask records a maintenance task that has already run, so each task
// applies exactly once per database.
type SchemaTask struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// Task is a named, run-once maintenance step. Tasks go through the storage
// adapter so they cannot sidestep its invariants.
type Task struct {
	Name string
	Run  func(ctx context.Context, st store.Store) error
}

// AdminSeed configures the seed-admin task.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// DefaultTasks is the ordered task list applied by the migrate binary.
func DefaultTasks(admin AdminSeed) []Task {
	return []Task{
		{Name: "seed-admin", Run: seedAdmin(admin)},
		{Name: "rehash-plaintext-passwords", Run: rehashPlaintextPasswords},
	}
}

// RunTasks applies every not-yet-applied task in order and records it in the
// schema_tasks ledger.
func RunTasks(ctx context.Context, gdb *gorm.DB, st store.Store, tasks []Task) error {
	for _, task := range tasks {
		var applied SchemaTask
		err := gdb.WithContext(ctx).First(&applied, "name = ?", task.Name).Error
		if err == nil {
			logrus.Infof("task %s already applied, skipping", task.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		logrus.Infof("applying task %s", task.Name)
		if err := task.Run(ctx, st); err != nil {
			return err
		}
		if err := gdb.WithContext(ctx).Create(&SchemaTask{Name: task.Name, AppliedAt: time.Now()}).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin creates the back-office account if it does not exist yet. Admin
// accounts cannot be created through public registration.
func seedAdmin(admin AdminSeed) func(ctx context.Context, st store.Store) error {
	return func(ctx context.Context, st store.Store) error {
		if admin.Username == "" || admin.Email == "" || admin.Password == "" {
			logrus.Warn("ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
			return nil
		}

		_, err := st.GetUserByUsername(ctx, admin.Username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		hashed, err := auth.HashPassword(admin.Password)
		if err != nil {
			return err
		}
		_, err = st.CreateUser(ctx, store.InsertUser{
			Username:      admin.Username,
			Password:      hashed,
			Email:         admin.Email,
			FirstName:     "System",
			LastName:      "Administrator",
			Role:          models.RoleAdmin,
			TermsAccepted: true,
		})
		return err
	}
}

// rehashPlaintextPasswords upgrades legacy rows whose credential was stored
// as plaintext to a proper scrypt credential derived from that plaintext.
// Affected users keep their old password. Rows are skipped only when they
// already carry the full hash.salt shape, so a plaintext value that happens
// to contain a dot still gets rehashed.
func rehashPlaintextPasswords(ctx context.Context, st store.Store) error {
	users, err := st.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if auth.IsHashedPassword(u.Password) {
			continue
		}
		hashed, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if err := st.UpdateUserPassword(ctx, u.ID, hashed); err != nil {
			return err
		}
		logrus.WithField("user", u.Username).Info("rehashed legacy plaintext credential")
	}
	return nil
}
