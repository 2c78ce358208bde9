package domain

import "time"

// InviteCode is a shareable code exchanging for a credit grant. The code
// string itself is the primary key. CurrentUses only ever moves up, via a
// conditional increment guarded by MaxUses.
type InviteCode struct {
	Code             string
	CreatedByAdminID string
	CreditsValue     int64
	CreditsExpiresAt *time.Time // expiry applied to issued credits, nil = never
	MaxUses          int64
	CurrentUses      int64
	IsActive         bool
	Metadata         string // free-form JSON blob from the admin UI

	// Single-use convenience columns, set by the redemption that exhausts
	// the code. Multi-use history lives in InviteRedemption rows.
	UsedByUserID *string
	UsedAt       *time.Time

	ExpiresAt *time.Time // nil = code never expires
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingUses returns how many redemptions the code has left.
func (c InviteCode) RemainingUses() int64 {
	if c.CurrentUses >= c.MaxUses {
		return 0
	}
	return c.MaxUses - c.CurrentUses
}

// Expired reports whether the code itself (not its credits) has lapsed.
func (c InviteCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// InviteRedemption records one user redeeming one code. Unique per
// (CodeID, UserID); the constraint is the authoritative double-submit guard.
type InviteRedemption struct {
	ID         string
	CodeID     string
	UserID     string
	RedeemedAt time.Time
	IPAddress  string
	UserAgent  string
	Metadata   string
}
