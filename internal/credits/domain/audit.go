package domain

import "time"

// AuditEntry is an append-only operational record. Business logic writes
// these best-effort and never reads them back.
type AuditEntry struct {
	ID         string
	UserID     *string // nil for system-initiated actions
	Action     string
	EntityType string
	EntityID   string
	OldValue   string // JSON snapshot, may be empty
	NewValue   string // JSON snapshot, may be empty
	CreatedAt  time.Time
}

// Audit actions recorded by the engine.
const (
	AuditCreditsAdded    = "credits.added"
	AuditCreditsConsumed = "credits.consumed"
	AuditCodeCreated     = "invite_code.created"
	AuditCodeRedeemed    = "invite_code.redeemed"
	AuditCodeDeactivated = "invite_code.deactivated"
	AuditUserCreated     = "user.created"
)
