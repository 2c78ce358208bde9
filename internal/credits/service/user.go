package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/slogx"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already registered")
	ErrInvalidUserRequest = errors.New("invalid user request")
)

type UserService struct {
	Store store.Store
}

// RegisterUser records a platform account with the engine. The id comes from
// the auth provider; the engine only carries the fields it enforces.
func (s *UserService) RegisterUser(
	ctx context.Context,
	id string,
	displayName string,
	dailyLimit int64,
	isAdmin bool,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if id == "" || dailyLimit < 0 {
		log.Warn("user registration with missing id or negative daily limit")
		return domain.User{}, ErrInvalidUserRequest
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:          id,
		DisplayName: displayName,
		DailyLimit:  dailyLimit,
		IsAdmin:     isAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUserAlreadyExists
			}
			log.Error("failed to create user", slog.Any("error", err))
			return err
		}

		recordAudit(ctx, tx, domain.AuditEntry{
			UserID:     &user.ID,
			Action:     domain.AuditUserCreated,
			EntityType: "user",
			EntityID:   user.ID,
		})
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.Int64("daily_limit", user.DailyLimit),
		slog.Bool("is_admin", user.IsAdmin),
	)

	return user, nil
}

// GetUser returns the engine's view of one account.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
