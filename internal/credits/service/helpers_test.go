package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway file-backed database. A file (not :memory:)
// so every pooled connection sees the same data during concurrency tests.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "credits.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, id string, dailyLimit int64) domain.User {
	t.Helper()

	users := &UserService{Store: st}
	user, err := users.RegisterUser(context.Background(), id, "user "+id, dailyLimit, false)
	require.NoError(t, err)
	return user
}

func seedAdmin(t *testing.T, st store.Store, id string) domain.User {
	t.Helper()

	users := &UserService{Store: st}
	admin, err := users.RegisterUser(context.Background(), id, "admin "+id, 0, true)
	require.NoError(t, err)
	return admin
}

func ptrTime(t time.Time) *time.Time { return &t }

// redeemRetrying retries on lock-timeout, which the caller contract marks
// as safely retryable. Concurrency tests care about business outcomes, not
// scheduler luck.
func redeemRetrying(ctx context.Context, s *InviteService, code, userID string) (RedemptionResult, error) {
	for {
		res, err := s.Redeem(ctx, code, userID, "203.0.113.7", "go-test")
		if errors.Is(err, store.ErrBusy) {
			continue
		}
		return res, err
	}
}
