package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/cryptox"
	"github.com/lumenart/credits/pkg/idx"
	"github.com/lumenart/credits/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrCodeNotFound         = errors.New("invite code not found")
	ErrCodeDeactivated      = errors.New("invite code has been deactivated")
	ErrCodeExpired          = errors.New("invite code has expired")
	ErrCodeExhausted        = errors.New("invite code has no uses remaining")
	ErrAlreadyRedeemed      = errors.New("invite code already redeemed by this user")
)

// InviteService owns the invite registry and the redemption coordinator.
// Redemption issues credits through the ledger inside its own transaction,
// so the grant and the use-count increment commit or roll back together.
type InviteService struct {
	Store  store.Store
	Ledger *LedgerService
}

// RedemptionResult pairs a committed redemption with the credits it issued.
type RedemptionResult struct {
	Redemption     domain.InviteRedemption
	CreditsGranted int64
}

// CodeAnalytics summarizes one code's redemption history.
type CodeAnalytics struct {
	Code             domain.InviteCode
	Redemptions      []domain.InviteRedemption
	TotalRedemptions int64
	CreditsIssued    int64
	RemainingUses    int64
}

// CreateCode mints a new invite code on behalf of an admin.
func (s *InviteService) CreateCode(
	ctx context.Context,
	adminID string,
	creditsValue int64,
	creditsExpiresAt *time.Time,
	maxUses int64,
	expiresAt *time.Time,
	metadata string,
) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	if adminID == "" || creditsValue <= 0 || maxUses < 1 {
		log.Warn("invite creation with invalid parameters",
			slog.Int64("credits_value", creditsValue),
			slog.Int64("max_uses", maxUses),
		)
		return domain.InviteCode{}, ErrInvalidInviteRequest
	}
	now := time.Now().UTC()
	if expiresAt != nil && !expiresAt.After(now) {
		log.Warn("invite creation with past expiry", slog.Time("expires_at", *expiresAt))
		return domain.InviteCode{}, ErrInvalidInviteRequest
	}

	if _, err := s.Store.Users().GetUserByID(ctx, adminID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InviteCode{}, ErrUserNotFound
		}
		log.Error("failed to fetch admin user", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	raw, err := cryptox.GenerateCode(cryptox.DefaultCodeLength)
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return domain.InviteCode{}, err
	}

	code := domain.InviteCode{
		Code:             cryptox.NormalizeCode(raw),
		CreatedByAdminID: adminID,
		CreditsValue:     creditsValue,
		CreditsExpiresAt: creditsExpiresAt,
		MaxUses:          maxUses,
		CurrentUses:      0,
		IsActive:         true,
		Metadata:         metadata,
		ExpiresAt:        expiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.InviteCodes().CreateCode(ctx, code); err != nil {
			log.Error("failed to create invite code", slog.Any("error", err))
			return err
		}

		snapshot, _ := json.Marshal(map[string]any{
			"credits_value": code.CreditsValue,
			"max_uses":      code.MaxUses,
		})
		recordAudit(ctx, tx, domain.AuditEntry{
			UserID:     &adminID,
			Action:     domain.AuditCodeCreated,
			EntityType: "invite_code",
			EntityID:   code.Code,
			NewValue:   string(snapshot),
		})
		return nil
	})
	if err != nil {
		return domain.InviteCode{}, err
	}

	log.Info("invite code created",
		slog.String("code", code.Code),
		slog.String("created_by", adminID),
		slog.Int64("credits_value", creditsValue),
		slog.Int64("max_uses", maxUses),
	)

	return code, nil
}

// Validate checks a code's state without mutating anything. When userID is
// non-empty the check also covers whether that user already redeemed it.
// States apply in fixed precedence: missing, deactivated, expired, exhausted,
// already redeemed.
func (s *InviteService) Validate(ctx context.Context, rawCode, userID string) (domain.InviteCode, error) {
	code := cryptox.NormalizeCode(rawCode)
	if code == "" {
		return domain.InviteCode{}, ErrCodeNotFound
	}

	inv, err := s.Store.InviteCodes().GetCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InviteCode{}, ErrCodeNotFound
		}
		return domain.InviteCode{}, err
	}

	if err := checkCodeState(inv, time.Now().UTC()); err != nil {
		return inv, err
	}

	if userID != "" {
		redeemed, err := s.userRedeemed(ctx, s.Store, code, userID)
		if err != nil {
			return inv, err
		}
		if redeemed {
			return inv, ErrAlreadyRedeemed
		}
	}

	return inv, nil
}

// Redeem exchanges a code for its credit grant. The conditional use-count
// increment is the authoritative exhaustion guard and the unique
// (code, user) index is the double-submit guard; both live inside one
// transaction with the issuance so a loss on either rolls everything back.
func (s *InviteService) Redeem(
	ctx context.Context,
	rawCode string,
	userID string,
	ipAddress string,
	userAgent string,
) (RedemptionResult, error) {
	log := slogx.FromContext(ctx)

	code := cryptox.NormalizeCode(rawCode)
	if code == "" || userID == "" {
		return RedemptionResult{}, ErrInvalidInviteRequest
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RedemptionResult{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return RedemptionResult{}, err
	}

	now := time.Now().UTC()
	redemption := domain.InviteRedemption{
		ID:         idx.New().String(),
		CodeID:     code,
		UserID:     userID,
		RedeemedAt: now,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}

	var creditsGranted int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Fresh read inside the transaction; a pre-fetched copy could be
		// stale by the time we get here.
		inv, err := tx.InviteCodes().GetCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCodeNotFound
			}
			return err
		}
		if err := checkCodeState(inv, now); err != nil {
			return err
		}

		// The conditional increment decides races between concurrent
		// redeemers; zero rows affected means someone else took the last use.
		bumped, err := tx.InviteCodes().IncrementUses(ctx, code, now)
		if err != nil {
			return err
		}
		if !bumped {
			return ErrCodeExhausted
		}

		if err := tx.Redemptions().CreateRedemption(ctx, redemption); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyRedeemed
			}
			return err
		}

		grant := domain.CreditTransaction{
			ID:          idx.New().String(),
			UserID:      userID,
			Amount:      inv.CreditsValue,
			Type:        domain.TransactionInvite,
			Description: "invite code " + code,
			ExpiresAt:   inv.CreditsExpiresAt,
			CreatedAt:   now,
		}
		if err := s.Ledger.addCreditsInTx(ctx, tx, grant); err != nil {
			return err
		}
		creditsGranted = inv.CreditsValue

		// This redemption took the last use; stamp the convenience columns.
		if inv.CurrentUses+1 >= inv.MaxUses {
			if err := tx.InviteCodes().MarkExhausted(ctx, code, userID, now); err != nil {
				return err
			}
		}

		snapshot, _ := json.Marshal(map[string]any{
			"credits_value": inv.CreditsValue,
			"redemption_id": redemption.ID,
		})
		recordAudit(ctx, tx, domain.AuditEntry{
			UserID:     &userID,
			Action:     domain.AuditCodeRedeemed,
			EntityType: "invite_code",
			EntityID:   code,
			NewValue:   string(snapshot),
		})
		return nil
	})
	if err != nil {
		return RedemptionResult{}, err
	}

	log.Info("invite code redeemed",
		slog.String("code", code),
		slog.String("user_id", userID),
		slog.String("redemption_id", redemption.ID),
		slog.Int64("credits_granted", creditsGranted),
	)

	return RedemptionResult{Redemption: redemption, CreditsGranted: creditsGranted}, nil
}

// Deactivate turns a code off. Safe to call repeatedly.
func (s *InviteService) Deactivate(ctx context.Context, rawCode, adminID string) error {
	log := slogx.FromContext(ctx)

	code := cryptox.NormalizeCode(rawCode)
	inv, err := s.Store.InviteCodes().GetCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCodeNotFound
		}
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.InviteCodes().Deactivate(ctx, code, time.Now().UTC()); err != nil {
			return err
		}

		old, _ := json.Marshal(map[string]any{"is_active": inv.IsActive})
		recordAudit(ctx, tx, domain.AuditEntry{
			UserID:     &adminID,
			Action:     domain.AuditCodeDeactivated,
			EntityType: "invite_code",
			EntityID:   code,
			OldValue:   string(old),
			NewValue:   `{"is_active":false}`,
		})
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("invite code deactivated",
		slog.String("code", code),
		slog.String("deactivated_by", adminID),
	)
	return nil
}

// ListCodes returns every invite code, newest first.
func (s *InviteService) ListCodes(ctx context.Context) ([]domain.InviteCode, error) {
	return s.Store.InviteCodes().ListCodes(ctx)
}

// Analytics reports a code's redemption history and issued-credit total.
func (s *InviteService) Analytics(ctx context.Context, rawCode string) (CodeAnalytics, error) {
	code := cryptox.NormalizeCode(rawCode)

	inv, err := s.Store.InviteCodes().GetCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CodeAnalytics{}, ErrCodeNotFound
		}
		return CodeAnalytics{}, err
	}

	redemptions, err := s.Store.Redemptions().ListByCode(ctx, code)
	if err != nil {
		return CodeAnalytics{}, err
	}

	total := int64(len(redemptions))
	return CodeAnalytics{
		Code:             inv,
		Redemptions:      redemptions,
		TotalRedemptions: total,
		CreditsIssued:    total * inv.CreditsValue,
		RemainingUses:    inv.RemainingUses(),
	}, nil
}

// checkCodeState applies the fixed validation precedence to a loaded code.
func checkCodeState(inv domain.InviteCode, now time.Time) error {
	if !inv.IsActive {
		return ErrCodeDeactivated
	}
	if inv.Expired(now) {
		return ErrCodeExpired
	}
	if inv.CurrentUses >= inv.MaxUses {
		return ErrCodeExhausted
	}
	return nil
}

// userRedeemed reports whether userID already redeemed the code.
func (s *InviteService) userRedeemed(ctx context.Context, st store.Store, code, userID string) (bool, error) {
	redemptions, err := st.Redemptions().ListByCode(ctx, code)
	if err != nil {
		return false, err
	}
	for _, r := range redemptions {
		if r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
