package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/admin"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped silently when the env vars are unset or the email
// already exists.
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin" }

func (AdminSeeder) Run(_ context.Context, doc *database.Snapshot) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	for _, a := range doc.Admins {
		if strings.EqualFold(a.Email, email) {
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	doc.Admins = append(doc.Admins, admin.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	return nil
}

func Defaults() []Seeder {
	return []Seeder{
		ScalesSeeder{},
		CatalogSeeder{},
		AdminSeeder{},
	}
}
