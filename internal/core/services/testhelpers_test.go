package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/adapters/persistence/repositories"
	"estatehub/internal/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		AppMode:     "dev",
		FrontendURL: "http://localhost:5173",
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
			RefreshDays:     7,
			ResetTokenHours: 24,
		},
	}
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records outbound mail instead of delivering it.
type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// racingUserRepo models a concurrent registration slipping past the
// uniqueness pre-checks: the first ExistsByEmail/ExistsByPhone call
// answers false, as if the competing row had not committed yet, and
// every later call tells the truth. The insert then has to trip the
// unique constraint itself.
type racingUserRepo struct {
	repositories.UserRepository
	emailChecks int
	phoneChecks int
}

func (r *racingUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.emailChecks++
	if r.emailChecks == 1 {
		return false, nil
	}
	return r.UserRepository.ExistsByEmail(ctx, email)
}

func (r *racingUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	r.phoneChecks++
	if r.phoneChecks == 1 {
		return false, nil
	}
	return r.UserRepository.ExistsByPhone(ctx, phone)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
